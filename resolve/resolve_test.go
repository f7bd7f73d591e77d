package resolve

import (
	"errors"
	"testing"

	"nomen.so/nomen/derive"
	"nomen.so/nomen/nsid"
)

func TestPathEmptyIsAnError(t *testing.T) {
	if _, err := Path(nil, nsid.Zero); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("Path(nil): got err=%v want ErrEmptyPath", err)
	}
	if _, err := Path([]string{}, nsid.Zero); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("Path([]): got err=%v want ErrEmptyPath", err)
	}
	if _, err := Domain("   "); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("Domain(blank): got err=%v want ErrEmptyPath", err)
	}
}

func TestPathLengthAndOrder(t *testing.T) {
	labels := []string{"a", "b", "c"}
	keys, err := Path(labels, nsid.Zero)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if len(keys) != len(labels) {
		t.Fatalf("got %d keys for %d labels", len(keys), len(labels))
	}
	seen := map[nsid.Identifier]bool{}
	for i, k := range keys {
		if k.IsZero() {
			t.Fatalf("keys[%d] is zero", i)
		}
		if seen[k] {
			t.Fatalf("duplicate key at index %d", i)
		}
		seen[k] = true
	}
}

// Resolving a suffix path independently must reproduce the tail of the
// full-path result, and chaining its head key as unknownParent must
// reproduce the remaining prefix.
func TestPathCompositionality(t *testing.T) {
	full, err := Path([]string{"a", "b", "c"}, nsid.Zero)
	if err != nil {
		t.Fatalf("Path(full): %v", err)
	}
	suffix, err := Path([]string{"b", "c"}, nsid.Zero)
	if err != nil {
		t.Fatalf("Path(suffix): %v", err)
	}
	if full[1] != suffix[0] || full[2] != suffix[1] {
		t.Fatalf("suffix resolution mismatch: full=%v suffix=%v", full[1:], suffix)
	}

	head, err := Path([]string{"a"}, suffix[0])
	if err != nil {
		t.Fatalf("Path(head): %v", err)
	}
	if head[0] != full[0] {
		t.Fatalf("chained head mismatch: %s vs %s", head[0], full[0])
	}
}

// The leaf label is derived against unknownParent directly, so a
// single-label path must match a bare derivation with the same parent.
func TestPathLeafMatchesDirectDerivation(t *testing.T) {
	parent, err := derive.AddressClassParent(derive.HashLabel("fixture"), nsid.Zero, nsid.Zero)
	if err != nil {
		t.Fatalf("AddressClassParent: %v", err)
	}
	keys, err := Path([]string{"leaf"}, parent)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	direct, err := derive.AddressClassParent(derive.HashLabel("leaf"), nsid.Zero, parent)
	if err != nil {
		t.Fatalf("AddressClassParent: %v", err)
	}
	if keys[0] != direct {
		t.Fatalf("path leaf %s != direct derivation %s", keys[0], direct)
	}
}

func TestDomainNormalizesCaseAndWhitespace(t *testing.T) {
	a, err := Domain("  A.B.C ")
	if err != nil {
		t.Fatalf("Domain: %v", err)
	}
	b, err := Domain("a.b.c")
	if err != nil {
		t.Fatalf("Domain: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("case folding broke at index %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestDomainMatchesExplicitPath(t *testing.T) {
	viaDomain, err := Domain("one.two")
	if err != nil {
		t.Fatalf("Domain: %v", err)
	}
	viaPath, err := Path([]string{"one", "two"}, nsid.Zero)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if len(viaDomain) != len(viaPath) {
		t.Fatalf("length mismatch")
	}
	for i := range viaDomain {
		if viaDomain[i] != viaPath[i] {
			t.Fatalf("mismatch at %d", i)
		}
	}
}

func TestLeafAddress(t *testing.T) {
	keys, err := Domain("a.b.c")
	if err != nil {
		t.Fatalf("Domain: %v", err)
	}
	leaf, err := LeafAddress("a.b.c")
	if err != nil {
		t.Fatalf("LeafAddress: %v", err)
	}
	if leaf != keys[0] {
		t.Fatalf("LeafAddress %s != Domain[0] %s", leaf, keys[0])
	}
}

// Different unknownParent values must shift the whole chain.
func TestUnknownParentShiftsChain(t *testing.T) {
	p, err := derive.AddressClassParent(derive.HashLabel("root"), nsid.Zero, nsid.Zero)
	if err != nil {
		t.Fatalf("AddressClassParent: %v", err)
	}
	withZero, err := Path([]string{"a", "b"}, nsid.Zero)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	withParent, err := Path([]string{"a", "b"}, p)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	for i := range withZero {
		if withZero[i] == withParent[i] {
			t.Fatalf("unknownParent had no effect at index %d", i)
		}
	}
}
