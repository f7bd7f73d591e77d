package derive

import (
	"testing"

	"nomen.so/nomen/nsid"
)

func ident(t *testing.T, fill byte) nsid.Identifier {
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

func TestAddressDeterministic(t *testing.T) {
	digest := HashLabel("alpha")
	class := ident(t, 0x11)
	parent := ident(t, 0x22)

	a, err := AddressClassParent(digest, class, parent)
	if err != nil {
		t.Fatalf("AddressClassParent: %v", err)
	}
	b, err := AddressClassParent(digest, class, parent)
	if err != nil {
		t.Fatalf("AddressClassParent: %v", err)
	}
	if a != b {
		t.Fatalf("expected deterministic derivation: %s vs %s", a, b)
	}
}

func TestAddressVariesWithEachInput(t *testing.T) {
	digest := HashLabel("alpha")
	class := ident(t, 0x11)
	parent := ident(t, 0x22)

	base, err := AddressClassParent(digest, class, parent)
	if err != nil {
		t.Fatalf("AddressClassParent: %v", err)
	}

	cases := []struct {
		name   string
		digest [32]byte
		class  nsid.Identifier
		parent nsid.Identifier
	}{
		{"digest", HashLabel("beta"), class, parent},
		{"class", digest, ident(t, 0x12), parent},
		{"parent", digest, class, ident(t, 0x23)},
	}
	for _, c := range cases {
		got, err := AddressClassParent(c.digest, c.class, c.parent)
		if err != nil {
			t.Fatalf("%s: AddressClassParent: %v", c.name, err)
		}
		if got == base {
			t.Fatalf("varying %s did not change the derived address", c.name)
		}
	}
}

func TestBothParameterOrdersAgree(t *testing.T) {
	digest := HashLabel("gamma")
	class := ident(t, 0x33)
	parent := ident(t, 0x44)

	a, err := AddressClassParent(digest, class, parent)
	if err != nil {
		t.Fatalf("AddressClassParent: %v", err)
	}
	b, err := AddressParentClass(digest, parent, class)
	if err != nil {
		t.Fatalf("AddressParentClass: %v", err)
	}
	if a != b {
		t.Fatalf("parameter-order variants disagree: %s vs %s", a, b)
	}
}

func TestZeroSentinelsAreDistinctFromEachOther(t *testing.T) {
	digest := HashLabel("delta")
	withParent, err := AddressClassParent(digest, nsid.Zero, ident(t, 0x55))
	if err != nil {
		t.Fatalf("AddressClassParent: %v", err)
	}
	withClass, err := AddressClassParent(digest, ident(t, 0x55), nsid.Zero)
	if err != nil {
		t.Fatalf("AddressClassParent: %v", err)
	}
	if withParent == withClass {
		t.Fatalf("class and parent seed positions must not be interchangeable")
	}
}

func TestDerivedAddressIsOffCurve(t *testing.T) {
	for _, label := range []string{"a", "b", "name", "deep.label"} {
		addr, err := AddressClassParent(HashLabel(label), nsid.Zero, nsid.Zero)
		if err != nil {
			t.Fatalf("AddressClassParent(%q): %v", label, err)
		}
		if onCurve(addr) {
			t.Fatalf("derived address for %q decodes to a curve point", label)
		}
		if addr.IsZero() {
			t.Fatalf("derived address for %q is the zero identifier", label)
		}
	}
}

func TestProgramIDRoundTrip(t *testing.T) {
	if ProgramID.String() != "namesLPneVptA9Z5rqUDD9tMTWEJwofgaYwp8cawRkX" {
		t.Fatalf("program id drifted: %s", ProgramID)
	}
}
