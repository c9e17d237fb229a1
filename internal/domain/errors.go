package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies projection failures so callers can map them to
// user-facing messages or status codes.
type ErrorKind string

const (
	KindConfiguration     ErrorKind = "configuration"
	KindNotFound          ErrorKind = "not_found"
	KindInconsistentState ErrorKind = "inconsistent_state"
)

// Sentinels for errors.Is matching on the kind.
var (
	ErrConfiguration     = &Error{Kind: KindConfiguration, Message: "configuration error"}
	ErrNotFound          = &Error{Kind: KindNotFound, Message: "not found"}
	ErrInconsistentState = &Error{Kind: KindInconsistentState, Message: "inconsistent state"}
)

// Error is a projection failure of a given kind. It aborts the whole call.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error for use with errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// ConfigurationError reports malformed input such as a financing without installments.
func ConfigurationError(format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced record with no backing data.
func NotFoundError(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InconsistentStateError reports stored values outside their domain range.
func InconsistentStateError(format string, args ...any) *Error {
	return &Error{Kind: KindInconsistentState, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in the chain, or "".
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
