package ledger

import "errors"

var (
	ErrNotFound       = errors.New("ledger: account not found")
	ErrInvalidAddress = errors.New("ledger: invalid address")
	ErrBadCommitment  = errors.New("ledger: unknown commitment level")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
