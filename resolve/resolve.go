// Package resolve walks dotted domain names to their chain of derived
// account addresses.
package resolve

import (
	"errors"
	"strings"

	"nomen.so/nomen/derive"
	"nomen.so/nomen/nsid"
)

// ErrEmptyPath is returned for a path with zero labels.
var ErrEmptyPath = errors.New("resolve: empty name path")

// Path derives one address per label, returned in input order.
//
// Labels are processed in reverse: the last label is derived first
// against unknownParent (nsid.Zero for a top-level name), and each
// derived address becomes the parent seed of the label before it. A
// label's address therefore depends on every label to its right; the
// result is reproducible only when the full ancestor chain is known
// and unchanged.
//
// Hierarchical resolution never uses a class seed; classes are
// reserved for non-hierarchical lookups via package derive.
func Path(labels []string, unknownParent nsid.Identifier) ([]nsid.Identifier, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyPath
	}

	out := make([]nsid.Identifier, len(labels))
	parent := unknownParent
	for i := len(labels) - 1; i >= 0; i-- {
		digest := derive.HashLabel(labels[i])
		key, err := derive.AddressClassParent(digest, nsid.Zero, parent)
		if err != nil {
			// Discard everything: partial address lists would let a
			// caller act on an unverifiable prefix of the chain.
			return nil, err
		}
		out[i] = key
		parent = key
	}
	return out, nil
}

// Domain resolves a dotted name such as "a.b.c".
//
// The name is trimmed of surrounding whitespace, lower-cased and split
// on ".". That case fold is the only normalization performed; no
// character-set or length checks are applied to the labels.
func Domain(name string) ([]nsid.Identifier, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return nil, ErrEmptyPath
	}
	return Path(strings.Split(trimmed, "."), nsid.Zero)
}

// LeafAddress resolves name and returns the address of its leftmost
// label, which is the account holding the name's record.
func LeafAddress(name string) (nsid.Identifier, error) {
	keys, err := Domain(name)
	if err != nil {
		return nsid.Zero, err
	}
	return keys[0], nil
}
