// Package record decodes the fixed-layout account blobs stored at
// derived name addresses.
package record

import (
	"errors"
	"fmt"

	"nomen.so/nomen/nsid"
)

// HeaderLen is the fixed header size: parent, owner and class, 32
// bytes each. The offsets below are a versioned binary contract; a
// future layout change must introduce a tagged variant, not shift
// these.
const HeaderLen = 96

const (
	parentOff = 0
	ownerOff  = 32
	classOff  = 64
)

var (
	// ErrAccountMissing is returned when no account data exists at the
	// queried address.
	ErrAccountMissing = errors.New("record: account not found")

	// ErrTruncated is returned when account data is shorter than the
	// fixed header.
	ErrTruncated = errors.New("record: invalid record data")
)

// Record is the decoded view of a name account.
//
// Self is supplied by the caller (it is the queried address, not
// stored on chain). Parent is a logical reference: following it means
// re-deriving the parent label's address, not dereferencing a pointer.
type Record struct {
	Self    nsid.Identifier
	Parent  nsid.Identifier
	Owner   nsid.Identifier
	Class   nsid.Identifier
	Payload []byte
}

// Decode parses raw account bytes fetched for self.
//
// A nil raw means the account does not exist (ErrAccountMissing); raw
// shorter than HeaderLen is ErrTruncated. The payload is everything
// past the header and may be empty.
func Decode(self nsid.Identifier, raw []byte) (*Record, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountMissing, self)
	}
	if len(raw) < HeaderLen {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrTruncated, len(raw), HeaderLen)
	}

	rec := &Record{Self: self}
	copy(rec.Parent[:], raw[parentOff:parentOff+nsid.Size])
	copy(rec.Owner[:], raw[ownerOff:ownerOff+nsid.Size])
	copy(rec.Class[:], raw[classOff:classOff+nsid.Size])
	rec.Payload = append([]byte(nil), raw[HeaderLen:]...)
	return rec, nil
}

// Encode renders the record back into its on-chain byte layout.
// Self is not serialized.
func Encode(rec *Record) []byte {
	out := make([]byte, 0, HeaderLen+len(rec.Payload))
	out = append(out, rec.Parent[:]...)
	out = append(out, rec.Owner[:]...)
	out = append(out, rec.Class[:]...)
	out = append(out, rec.Payload...)
	return out
}
