// Package derive implements the deterministic derivation core: label
// hashing with the fixed domain-separation prefix, and the bump search
// that turns hashed seeds into a program-owned, off-curve address.
//
// Everything here is pure and allocation-local; the same inputs always
// produce the same identifier. Callers that need the chained,
// whole-path form should use package resolve instead.
package derive
