package lookup

import (
	"context"
	"errors"
	"testing"

	"nomen.so/nomen/ledger"
	"nomen.so/nomen/ledger/memledger"
	"nomen.so/nomen/nsid"
	"nomen.so/nomen/record"
	"nomen.so/nomen/resolve"
)

func seed(t *testing.T, l *memledger.Ledger, name string, rec *record.Record, lamports uint64) nsid.Identifier {
	t.Helper()
	addr, err := resolve.LeafAddress(name)
	if err != nil {
		t.Fatalf("LeafAddress(%q): %v", name, err)
	}
	err = l.Put(addr, &ledger.Account{
		Data:     record.Encode(rec),
		Lamports: lamports,
	})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	return addr
}

func fillID(b byte) nsid.Identifier {
	var id nsid.Identifier
	for i := range id {
		id[i] = b
	}
	return id
}

func TestLookupEndToEnd(t *testing.T) {
	l := memledger.New()
	want := &record.Record{
		Owner:   fillID(0x10),
		Class:   fillID(0x20),
		Payload: []byte("payload bytes"),
	}
	// The stored parent must be the derived address of the parent
	// path, mirroring on-chain state.
	parentKeys, err := resolve.Domain("b.c")
	if err != nil {
		t.Fatalf("Domain: %v", err)
	}
	want.Parent = parentKeys[0]
	leaf := seed(t, l, "a.b.c", want, 5000)

	res, err := Lookup(context.Background(), l, "a.b.c", Options{})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(res.Addresses) != 3 {
		t.Fatalf("expected 3 addresses, got %d", len(res.Addresses))
	}
	if res.Addresses[0] != leaf {
		t.Fatalf("leaf address mismatch")
	}
	if res.Addresses[1] != parentKeys[0] || res.Addresses[2] != parentKeys[1] {
		t.Fatalf("ancestor chain mismatch")
	}
	if res.Record.Parent != want.Parent || res.Record.Owner != want.Owner || res.Record.Class != want.Class {
		t.Fatalf("record header mismatch: %+v", res.Record)
	}
	if string(res.Record.Payload) != "payload bytes" {
		t.Fatalf("payload mismatch: %q", res.Record.Payload)
	}
	if res.Record.Self != leaf {
		t.Fatalf("record self must be the queried address")
	}
	if res.Account.Lamports != 5000 {
		t.Fatalf("account passthrough lost lamports: %d", res.Account.Lamports)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	l := memledger.New()
	seed(t, l, "name.tld", &record.Record{Payload: []byte("x")}, 1)

	res, err := Lookup(context.Background(), l, "  Name.TLD ", Options{})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if string(res.Record.Payload) != "x" {
		t.Fatalf("case-folded lookup failed")
	}
}

func codeOf(t *testing.T, err error) ErrorCode {
	t.Helper()
	var ce *CodedError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CodedError, got %v", err)
	}
	return ce.Code
}

func TestLookupEmptyName(t *testing.T) {
	_, err := Lookup(context.Background(), memledger.New(), "   ", Options{})
	if codeOf(t, err) != ErrEmptyPath {
		t.Fatalf("got %v want EMPTY_PATH", err)
	}
}

func TestLookupMissingAccount(t *testing.T) {
	_, err := Lookup(context.Background(), memledger.New(), "ghost.tld", Options{})
	if codeOf(t, err) != ErrNotFound {
		t.Fatalf("got %v want NOT_FOUND", err)
	}
}

func TestLookupTruncatedRecord(t *testing.T) {
	l := memledger.New()
	addr, err := resolve.LeafAddress("short.tld")
	if err != nil {
		t.Fatalf("LeafAddress: %v", err)
	}
	if err := l.Put(addr, &ledger.Account{Data: make([]byte, record.HeaderLen-1)}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	_, err = Lookup(context.Background(), l, "short.tld", Options{})
	if codeOf(t, err) != ErrInvalidRecord {
		t.Fatalf("got %v want INVALID_RECORD", err)
	}
}

func TestLookupEmptyDataIsInvalidNotMissing(t *testing.T) {
	l := memledger.New()
	addr, err := resolve.LeafAddress("empty.tld")
	if err != nil {
		t.Fatalf("LeafAddress: %v", err)
	}
	if err := l.Put(addr, &ledger.Account{Data: []byte{}}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	_, err = Lookup(context.Background(), l, "empty.tld", Options{})
	if codeOf(t, err) != ErrInvalidRecord {
		t.Fatalf("existing account with empty data must be INVALID_RECORD, got %v", err)
	}
}

func TestLookupBadCommitment(t *testing.T) {
	l := memledger.New()
	seed(t, l, "x.y", &record.Record{}, 1)

	_, err := Lookup(context.Background(), l, "x.y", Options{Commitment: "sideways"})
	if codeOf(t, err) != ErrInvalidRequest {
		t.Fatalf("got %v want INVALID_REQUEST", err)
	}
}

func TestLookupNilFetcher(t *testing.T) {
	_, err := Lookup(context.Background(), nil, "a.b", Options{})
	if codeOf(t, err) != ErrInvalidRequest {
		t.Fatalf("got %v want INVALID_REQUEST", err)
	}
}
