package derive

import "crypto/sha256"

// HashPrefix is the domain-separation prefix bound into every label
// digest. It is part of the derivation contract: changing a single byte
// changes every derived address on the network.
const HashPrefix = "SPL Name Service"

// HashLabel returns sha256(HashPrefix || label).
//
// No normalization is applied; callers that want case-insensitive
// domain semantics must fold case before hashing (package resolve does
// this in its dotted-name entry point).
func HashLabel(label string) [32]byte {
	h := sha256.New()
	_, _ = h.Write([]byte(HashPrefix))
	_, _ = h.Write([]byte(label))
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
