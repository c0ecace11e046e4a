package cerr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error wraps a core layer error together with the HTTP status code
// which should be reported by the restful adapters.
type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

// ValidationError describes the first precondition which was violated
// by a use case input. Its value is the human-readable message.
type ValidationError string

func (ve ValidationError) Error() string {
	return string(ve)
}

// Validation returns a bad request Error wrapping msg as a
// ValidationError instance.
func Validation(msg string) *Error {
	return BadRequest(ValidationError(msg))
}

// Validationf formats its arguments and calls Validation.
func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}
