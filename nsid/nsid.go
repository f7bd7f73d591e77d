// Package nsid provides the 32-byte identifier value type used for
// on-chain addresses, owners, classes and parent references.
package nsid

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// Size is the byte length of every identifier.
const Size = 32

// Identifier is an opaque 32-byte address/key value.
//
// Identifiers are plain values: equality is byte equality (==) and the
// zero value is the 32-zero-byte sentinel used for absent class/parent
// references.
type Identifier [Size]byte

// Zero is the all-zero identifier.
var Zero Identifier

var ErrBadLength = errors.New("nsid: identifier must be 32 bytes")

// Parse decodes a base58 (Bitcoin alphabet) identifier string.
func Parse(s string) (Identifier, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return Zero, fmt.Errorf("nsid: decode %q: %w", s, err)
	}
	return FromBytes(b)
}

// MustParse is Parse for trusted, compile-time constants. It panics on error.
func MustParse(s string) Identifier {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromBytes copies a 32-byte slice into an Identifier.
func FromBytes(b []byte) (Identifier, error) {
	if len(b) != Size {
		return Zero, fmt.Errorf("%w: got %d", ErrBadLength, len(b))
	}
	var id Identifier
	copy(id[:], b)
	return id, nil
}

// String returns the base58 form.
func (id Identifier) String() string {
	return base58.Encode(id[:])
}

// Bytes returns a fresh copy of the raw 32 bytes.
func (id Identifier) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, id[:])
	return out
}

// IsZero reports whether id is the all-zero sentinel.
func (id Identifier) IsZero() bool {
	return id == Zero
}
