package lookup

import "fmt"

type ErrorCode string

const (
	ErrEmptyPath      ErrorCode = "EMPTY_PATH"
	ErrBumpExhausted  ErrorCode = "BUMP_EXHAUSTED"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrInvalidRecord  ErrorCode = "INVALID_RECORD"
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrInternal       ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a
// human message. Callers branch on Code, never on Message.
type CodedError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}
