package ledger

import (
	"context"
	"errors"

	"nomen.so/nomen/nsid"
)

// MultiFetcher provides deterministic, ordered fallback across
// multiple fetchers.
//
// Fetch order is the slice order in Fetchers; callers MUST supply a
// fixed order. This avoids map-iteration nondeterminism and makes the
// retrieval strategy explicit.
type MultiFetcher struct {
	Fetchers []Fetcher
}

var _ Fetcher = MultiFetcher{}

func (m MultiFetcher) Fetch(ctx context.Context, addr nsid.Identifier, c Commitment) (*Account, error) {
	if len(m.Fetchers) == 0 {
		return nil, errors.New("ledger: MultiFetcher has no fetchers")
	}
	for _, f := range m.Fetchers {
		acct, err := f.Fetch(ctx, addr, c)
		if err == nil {
			return acct, nil
		}
		if IsNotFound(err) {
			continue
		}
		return nil, err
	}
	return nil, ErrNotFound
}
