// Package lookup ties the derivation core to a ledger backend: it
// resolves a dotted name, fetches the leaf account and decodes its
// record in one call.
package lookup

import (
	"context"
	"errors"

	"nomen.so/nomen/derive"
	"nomen.so/nomen/ledger"
	"nomen.so/nomen/nsid"
	"nomen.so/nomen/record"
	"nomen.so/nomen/resolve"
)

// Options tunes a lookup. The zero value asks for finalized state.
type Options struct {
	Commitment ledger.Commitment
}

// Result is the complete outcome of a name lookup.
//
// Addresses holds the full derived chain in label order (leaf first),
// Record the decoded leaf account, and Account the raw snapshot the
// record was decoded from (owner program, lamports and rent epoch pass
// through untouched).
type Result struct {
	Addresses []nsid.Identifier
	Record    *record.Record
	Account   *ledger.Account
}

// Lookup resolves name, fetches its leaf account through f and decodes
// the stored record.
//
// Failures are reported as *CodedError; any failure aborts the whole
// call with no partial result.
func Lookup(ctx context.Context, f ledger.Fetcher, name string, opts Options) (*Result, error) {
	if f == nil {
		return nil, NewError(ErrInvalidRequest, "missing ledger fetcher")
	}

	keys, err := resolve.Domain(name)
	if err != nil {
		return nil, mapErr(err)
	}

	acct, err := f.Fetch(ctx, keys[0], opts.Commitment)
	if err != nil {
		return nil, mapErr(err)
	}

	data := acct.Data
	if data == nil {
		// A fetched account is present even when its data is empty;
		// nil is reserved for "no account".
		data = []byte{}
	}
	rec, err := record.Decode(keys[0], data)
	if err != nil {
		return nil, mapErr(err)
	}

	return &Result{Addresses: keys, Record: rec, Account: acct}, nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce
	}
	switch {
	case errors.Is(err, resolve.ErrEmptyPath):
		return NewError(ErrEmptyPath, err.Error())
	case errors.Is(err, derive.ErrBumpExhausted):
		return NewError(ErrBumpExhausted, err.Error())
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, record.ErrAccountMissing):
		return NewError(ErrNotFound, err.Error())
	case errors.Is(err, record.ErrTruncated):
		return NewError(ErrInvalidRecord, err.Error())
	case errors.Is(err, ledger.ErrBadCommitment), errors.Is(err, ledger.ErrInvalidAddress):
		return NewError(ErrInvalidRequest, err.Error())
	default:
		return NewError(ErrInternal, err.Error())
	}
}
