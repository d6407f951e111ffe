package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the assessment pipeline. Consistency errors are
// internal contract violations (reference-data gaps, scores outside the
// classifier domain) and must never be defaulted away.
const (
	CodeValidation  = "validation_error"
	CodeNotFound    = "not_found"
	CodeConsistency = "consistency_error"
	CodeStorage     = "storage_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(err error) *Error {
	return New(http.StatusBadRequest, CodeValidation, err)
}

func NotFound(err error) *Error {
	return New(http.StatusNotFound, CodeNotFound, err)
}

func Consistency(err error) *Error {
	return New(http.StatusInternalServerError, CodeConsistency, err)
}

func Storage(err error) *Error {
	return New(http.StatusInternalServerError, CodeStorage, err)
}

// From resolves any error to an *Error, wrapping unknown errors as storage
// errors so callers always get a status and code.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Storage(err)
}
