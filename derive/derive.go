package derive

import (
	"crypto/sha256"
	"errors"

	"filippo.io/edwards25519"

	"nomen.so/nomen/nsid"
)

// ProgramID is the on-chain name-service program that owns every
// derived account. All three seed components are scoped to it; a
// different program id yields entirely different (and unresolvable)
// addresses.
var ProgramID = nsid.MustParse("namesLPneVptA9Z5rqUDD9tMTWEJwofgaYwp8cawRkX")

// pdaMarker is the fixed trailing domain marker of the program-derived
// address construction.
const pdaMarker = "ProgramDerivedAddress"

// ErrBumpExhausted is returned when no bump in 255..1 produces an
// off-curve candidate. With sha256 output this is astronomically
// unlikely, but it is a reported failure, never a silent wrong result.
var ErrBumpExhausted = errors.New("derive: bump seed space exhausted")

// AddressClassParent derives the account address for a hashed label
// with an optional class and an optional parent, in that parameter
// order. The zero identifier stands for "absent" for both.
//
// AddressClassParent and AddressParentClass compute the same function
// over the same seed order (digest, class, parent); two entry points
// exist only so that call sites name the argument order explicitly.
func AddressClassParent(digest [32]byte, class, parent nsid.Identifier) (nsid.Identifier, error) {
	return search(digest, class, parent)
}

// AddressParentClass is AddressClassParent with the optional arguments
// swapped. See AddressClassParent.
func AddressParentClass(digest [32]byte, parent, class nsid.Identifier) (nsid.Identifier, error) {
	return search(digest, class, parent)
}

// search runs the canonical bump search: for bump 255 down to 1, hash
// seeds || bump || program id || marker and return the first candidate
// that is not a valid curve point.
func search(digest [32]byte, class, parent nsid.Identifier) (nsid.Identifier, error) {
	for bump := 255; bump > 0; bump-- {
		h := sha256.New()
		_, _ = h.Write(digest[:])
		_, _ = h.Write(class[:])
		_, _ = h.Write(parent[:])
		_, _ = h.Write([]byte{byte(bump)})
		_, _ = h.Write(ProgramID[:])
		_, _ = h.Write([]byte(pdaMarker))

		var candidate nsid.Identifier
		copy(candidate[:], h.Sum(nil))
		if !onCurve(candidate) {
			return candidate, nil
		}
	}
	return nsid.Zero, ErrBumpExhausted
}

// onCurve reports whether the 32 bytes decode to a valid edwards25519
// point. Derived addresses must be off-curve so that no keypair can
// ever sign for them.
func onCurve(id nsid.Identifier) bool {
	_, err := new(edwards25519.Point).SetBytes(id[:])
	return err == nil
}
