// Package fsledger is a filesystem-backed ledger backend.
//
// One file per account, named by the base58 address and sharded by the
// first two characters. The file holds a fixed envelope:
//
//	owner (32) || lamports (8, little-endian) || rent epoch (8, little-endian) || data
//
// Unlike content-addressed stores, account state is mutable: Put
// replaces the file atomically via a rename.
package fsledger

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"

	"nomen.so/nomen/ledger"
	"nomen.so/nomen/nsid"
)

const envelopeLen = nsid.Size + 8 + 8

// Ledger stores accounts under a root directory. It implements both
// ledger.Fetcher and ledger.Store.
type Ledger struct {
	root string
}

var (
	_ ledger.Fetcher = (*Ledger)(nil)
	_ ledger.Store   = (*Ledger)(nil)
)

// New constructs a filesystem ledger rooted at root. The directory
// will be created if needed.
func New(root string) (*Ledger, error) {
	if root == "" {
		return nil, errors.New("fsledger: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Ledger{root: root}, nil
}

func (l *Ledger) Fetch(ctx context.Context, addr nsid.Identifier, c ledger.Commitment) (*ledger.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !c.Valid() {
		return nil, ledger.ErrBadCommitment
	}

	b, err := os.ReadFile(l.pathFor(addr))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ledger.ErrNotFound
		}
		return nil, err
	}
	return decodeEnvelope(b)
}

func (l *Ledger) Put(addr nsid.Identifier, acct *ledger.Account) error {
	if acct == nil {
		return errors.New("fsledger: nil account")
	}

	path := l.pathFor(addr)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".put-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(encodeEnvelope(acct)); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (l *Ledger) Has(addr nsid.Identifier) bool {
	_, err := os.Stat(l.pathFor(addr))
	return err == nil
}

func (l *Ledger) pathFor(addr nsid.Identifier) string {
	s := addr.String()
	if len(s) < 2 {
		return filepath.Join(l.root, s)
	}
	return filepath.Join(l.root, s[:2], s)
}

func encodeEnvelope(acct *ledger.Account) []byte {
	out := make([]byte, envelopeLen, envelopeLen+len(acct.Data))
	copy(out[:nsid.Size], acct.Owner[:])
	binary.LittleEndian.PutUint64(out[nsid.Size:], acct.Lamports)
	binary.LittleEndian.PutUint64(out[nsid.Size+8:], acct.RentEpoch)
	return append(out, acct.Data...)
}

func decodeEnvelope(b []byte) (*ledger.Account, error) {
	if len(b) < envelopeLen {
		return nil, errors.New("fsledger: truncated account envelope")
	}
	acct := &ledger.Account{
		Lamports:  binary.LittleEndian.Uint64(b[nsid.Size:]),
		RentEpoch: binary.LittleEndian.Uint64(b[nsid.Size+8:]),
		Data:      append([]byte{}, b[envelopeLen:]...),
	}
	copy(acct.Owner[:], b[:nsid.Size])
	return acct, nil
}
