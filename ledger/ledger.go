// Package ledger defines the account-fetch boundary the resolution
// core depends on, without committing to any transport or storage.
package ledger

import (
	"context"

	"nomen.so/nomen/nsid"
)

// Commitment is the consistency level requested for a fetch. It is
// passed through to the backend unmodified; backends that have no
// notion of commitment ignore it.
type Commitment string

const (
	CommitmentProcessed Commitment = "processed"
	CommitmentConfirmed Commitment = "confirmed"
	CommitmentFinalized Commitment = "finalized"
)

// Account is a raw account snapshot.
//
// The resolution core reads only Data; Owner, Lamports and RentEpoch
// pass through for the caller's convenience.
type Account struct {
	Data      []byte
	Owner     nsid.Identifier
	Lamports  uint64
	RentEpoch uint64
}

// Fetcher retrieves raw account state.
//
// Contract:
// - Fetch MUST return ErrNotFound when no account exists at addr.
// - Returned accounts MUST NOT be mutated by the fetcher afterwards.
// - An empty Commitment means CommitmentFinalized.
type Fetcher interface {
	Fetch(ctx context.Context, addr nsid.Identifier, c Commitment) (*Account, error)
}

// Store is the write side used to seed backends (daemons, tests).
// Puts overwrite: account state is mutable, unlike content-addressed
// blobs.
type Store interface {
	Put(addr nsid.Identifier, acct *Account) error
	Has(addr nsid.Identifier) bool
}

// Normalize returns c with the empty value folded to finalized.
func (c Commitment) Normalize() Commitment {
	if c == "" {
		return CommitmentFinalized
	}
	return c
}

// Valid reports whether c (after Normalize) is a known level.
func (c Commitment) Valid() bool {
	switch c.Normalize() {
	case CommitmentProcessed, CommitmentConfirmed, CommitmentFinalized:
		return true
	}
	return false
}
