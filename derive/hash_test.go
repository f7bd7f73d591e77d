package derive

import (
	"math/bits"
	"testing"
)

func TestHashLabelDeterministic(t *testing.T) {
	a := HashLabel("example")
	b := HashLabel("example")
	if a != b {
		t.Fatalf("expected deterministic hashing")
	}
}

func TestHashLabelDistinguishesLabels(t *testing.T) {
	pairs := [][2]string{
		{"example", "examplf"},
		{"a", "A"},
		{"", "x"},
		{"ab", "a b"},
	}
	for _, p := range pairs {
		if HashLabel(p[0]) == HashLabel(p[1]) {
			t.Fatalf("hash collision between %q and %q", p[0], p[1])
		}
	}
}

// A one-character change should flip a large fraction of digest bits.
// This is a statistical check, not a bit-exact one: anything clearly
// away from zero demonstrates avalanche.
func TestHashLabelAvalanche(t *testing.T) {
	a := HashLabel("domain")
	b := HashLabel("domaim")
	diff := 0
	for i := range a {
		diff += bits.OnesCount8(a[i] ^ b[i])
	}
	if diff < 64 {
		t.Fatalf("expected substantial bit diffusion, got %d differing bits", diff)
	}
}

func TestHashLabelTotalOverEmptyAndUnicode(t *testing.T) {
	// No error paths exist; just exercise unusual inputs.
	_ = HashLabel("")
	_ = HashLabel("héllo.wörld")
	_ = HashLabel(string([]byte{0x00, 0xFF}))
}
