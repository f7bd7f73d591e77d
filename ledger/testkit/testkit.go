// Package testkit provides a reusable conformance suite for ledger
// backends.
package testkit

import (
	"bytes"
	"context"
	"testing"

	"nomen.so/nomen/ledger"
	"nomen.so/nomen/nsid"
)

// Backend is the surface a conformance candidate must provide.
type Backend interface {
	ledger.Fetcher
	ledger.Store
}

// NewBackend constructs a fresh, empty backend for a test. The
// returned backend MUST be isolated from other tests.
type NewBackend func(t *testing.T) Backend

func testAddr(t *testing.T, fill byte) nsid.Identifier {
	t.Helper()
	raw := make([]byte, nsid.Size)
	for i := range raw {
		raw[i] = fill
	}
	id, err := nsid.FromBytes(raw)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	return id
}

// RunFetcherConformance exercises the ledger contract against a
// backend constructor.
func RunFetcherConformance(t *testing.T, newBackend NewBackend) {
	t.Helper()
	ctx := context.Background()

	t.Run("PutFetchRoundTrip", func(t *testing.T) {
		b := newBackend(t)
		addr := testAddr(t, 0x01)
		want := &ledger.Account{
			Data:      []byte("account payload"),
			Owner:     testAddr(t, 0x02),
			Lamports:  1_234_567,
			RentEpoch: 361,
		}

		if err := b.Put(addr, want); err != nil {
			t.Fatalf("Put: %v", err)
		}
		got, err := b.Fetch(ctx, addr, ledger.CommitmentFinalized)
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if !bytes.Equal(got.Data, want.Data) {
			t.Fatalf("data mismatch: %q vs %q", got.Data, want.Data)
		}
		if got.Owner != want.Owner || got.Lamports != want.Lamports || got.RentEpoch != want.RentEpoch {
			t.Fatalf("account metadata mismatch: %+v vs %+v", got, want)
		}
	})

	t.Run("MissingAccountIsNotFound", func(t *testing.T) {
		b := newBackend(t)
		addr := testAddr(t, 0x03)

		if b.Has(addr) {
			t.Fatalf("Has returned true for missing account")
		}
		_, err := b.Fetch(ctx, addr, ledger.CommitmentFinalized)
		if !ledger.IsNotFound(err) {
			t.Fatalf("Fetch missing: got err=%v want ErrNotFound", err)
		}
	})

	t.Run("EmptyCommitmentMeansFinalized", func(t *testing.T) {
		b := newBackend(t)
		addr := testAddr(t, 0x04)
		if err := b.Put(addr, &ledger.Account{Data: []byte("x")}); err != nil {
			t.Fatalf("Put: %v", err)
		}
		if _, err := b.Fetch(ctx, addr, ""); err != nil {
			t.Fatalf("Fetch with empty commitment: %v", err)
		}
	})

	t.Run("UnknownCommitmentRejected", func(t *testing.T) {
		b := newBackend(t)
		addr := testAddr(t, 0x05)
		if _, err := b.Fetch(ctx, addr, ledger.Commitment("sideways")); err == nil {
			t.Fatalf("expected error for unknown commitment")
		}
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		b := newBackend(t)
		addr := testAddr(t, 0x06)

		if err := b.Put(addr, &ledger.Account{Data: []byte("old")}); err != nil {
			t.Fatalf("Put(old): %v", err)
		}
		if err := b.Put(addr, &ledger.Account{Data: []byte("new"), Lamports: 9}); err != nil {
			t.Fatalf("Put(new): %v", err)
		}
		got, err := b.Fetch(ctx, addr, ledger.CommitmentConfirmed)
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if string(got.Data) != "new" || got.Lamports != 9 {
			t.Fatalf("overwrite not observed: %+v", got)
		}
	})

	t.Run("FetchedAccountIsDetached", func(t *testing.T) {
		b := newBackend(t)
		addr := testAddr(t, 0x07)
		if err := b.Put(addr, &ledger.Account{Data: []byte("stable")}); err != nil {
			t.Fatalf("Put: %v", err)
		}
		got, err := b.Fetch(ctx, addr, ledger.CommitmentFinalized)
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		got.Data[0] = '!'

		again, err := b.Fetch(ctx, addr, ledger.CommitmentFinalized)
		if err != nil {
			t.Fatalf("Fetch(again): %v", err)
		}
		if string(again.Data) != "stable" {
			t.Fatalf("fetched account aliases backend state: %q", again.Data)
		}
	})

	t.Run("EmptyDataStaysPresent", func(t *testing.T) {
		b := newBackend(t)
		addr := testAddr(t, 0x08)
		if err := b.Put(addr, &ledger.Account{Data: []byte{}}); err != nil {
			t.Fatalf("Put: %v", err)
		}
		got, err := b.Fetch(ctx, addr, ledger.CommitmentFinalized)
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if got.Data == nil {
			t.Fatalf("existing account must not fetch with nil data")
		}
	})
}
