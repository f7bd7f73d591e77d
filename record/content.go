package record

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Content-record payloads point a name at immutable content: the
// payload is a CID string, optionally NUL-padded out to the account's
// allocated size.

var (
	ErrNotContent      = errors.New("record: payload is not a content id")
	ErrContentMismatch = errors.New("record: content does not match declared cid")
)

// ContentID interprets a record payload as a CID.
//
// Trailing NUL padding is stripped first; anything that then fails to
// parse as a CID is ErrNotContent.
func ContentID(payload []byte) (cid.Cid, error) {
	trimmed := bytes.TrimRight(payload, "\x00")
	if len(trimmed) == 0 {
		return cid.Undef, fmt.Errorf("%w: empty payload", ErrNotContent)
	}
	id, err := cid.Decode(string(trimmed))
	if err != nil {
		return cid.Undef, fmt.Errorf("%w: %v", ErrNotContent, err)
	}
	return id, nil
}

// VerifyContent checks content bytes against the CID declared in a
// record payload by recomputing the multihash the CID carries.
func VerifyContent(payload, content []byte) error {
	id, err := ContentID(payload)
	if err != nil {
		return err
	}
	decoded, err := multihash.Decode(id.Hash())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotContent, err)
	}
	sum, err := multihash.Sum(content, decoded.Code, decoded.Length)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotContent, err)
	}
	if !bytes.Equal(sum, id.Hash()) {
		return ErrContentMismatch
	}
	return nil
}
