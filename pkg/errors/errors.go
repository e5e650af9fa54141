package errors

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
)

// HttpError carries the status code and user-facing message up to the
// controller layer, keeping the original cause for logging.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

// ValidationError: the caller supplied a value inconsistent with the domain
// rules (unknown unit state, daily values not matching the employee type).
// Rejected before any computation, never coerced.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PreconditionFailedError: the requested mutation conflicts with current
// state (deleting a unit that is committed to an event or lease). The caller
// surfaces it to the user and performs no mutation.
type PreconditionFailedError struct {
	Message string
}

func (e *PreconditionFailedError) Error() string { return e.Message }

func NewPreconditionFailed(format string, args ...interface{}) error {
	return &PreconditionFailedError{Message: fmt.Sprintf(format, args...)}
}

// StatusCode maps the domain error taxonomy to HTTP statuses for the
// response helpers.
func StatusCode(err error) int {
	switch err.(type) {
	case *ValidationError:
		return http.StatusBadRequest
	case *PreconditionFailedError:
		return http.StatusConflict
	}
	if err == ErrNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
