package core

import (
	"errors"
	"fmt"
)

// QueryError wraps any read or write failure against the store. Query keeps
// the statement that failed so adapters can log it; the user-facing message
// comes from the underlying driver error.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// ValidationError reports missing or out-of-set user input. It is raised
// before any SQL is assembled, so a ValidationError guarantees no statement
// reached the store.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
