// Package memledger is an in-memory ledger backend for tests and the
// daemon's volatile mode.
package memledger

import (
	"context"
	"errors"
	"sync"

	"nomen.so/nomen/ledger"
	"nomen.so/nomen/nsid"
)

// Ledger is a mutex-guarded in-memory account map. It implements both
// ledger.Fetcher and ledger.Store.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[nsid.Identifier]ledger.Account
}

var (
	_ ledger.Fetcher = (*Ledger)(nil)
	_ ledger.Store   = (*Ledger)(nil)
)

func New() *Ledger {
	return &Ledger{accounts: make(map[nsid.Identifier]ledger.Account)}
}

func (l *Ledger) Fetch(ctx context.Context, addr nsid.Identifier, c ledger.Commitment) (*ledger.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !c.Valid() {
		return nil, ledger.ErrBadCommitment
	}

	l.mu.RLock()
	acct, ok := l.accounts[addr]
	l.mu.RUnlock()
	if !ok {
		return nil, ledger.ErrNotFound
	}

	// Copy out so callers can never observe later Puts. Data stays
	// non-nil for existing accounts: nil means "no account" upstream.
	out := acct
	out.Data = append([]byte{}, acct.Data...)
	return &out, nil
}

func (l *Ledger) Put(addr nsid.Identifier, acct *ledger.Account) error {
	if acct == nil {
		return errors.New("memledger: nil account")
	}
	stored := *acct
	stored.Data = append([]byte(nil), acct.Data...)

	l.mu.Lock()
	l.accounts[addr] = stored
	l.mu.Unlock()
	return nil
}

func (l *Ledger) Has(addr nsid.Identifier) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.accounts[addr]
	return ok
}
