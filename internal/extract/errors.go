package extract

import (
	"errors"
	"fmt"
)

// ErrorKind classifies terminal extraction failures. A classified failure
// marks the receipt failed and is never retried; anything unclassified is
// treated as transient and propagates for redelivery.
type ErrorKind string

const (
	KindInvalidJSON     ErrorKind = "invalid_json"
	KindSchemaViolation ErrorKind = "schema_violation"
	KindEmptyResponse   ErrorKind = "empty_response"
)

// Error is a classified, non-retryable extraction failure.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

// Classified reports whether err is a classified extraction failure.
func Classified(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
