package web

import (
	"net/http"

	"github.com/pkg/errors"
)

// Error is used to pass an error during the request through the
// application with web specific context.
type Error struct {
	Err    error
	Status int
	Fields map[string][]string
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

// NewFieldError is a request error attributed to form fields.
func NewFieldError(err error, status int, fields map[string][]string) error {
	return &Error{Err: err, Status: status, Fields: fields}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return http.StatusText(e.Status)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// statusOf returns the status carried by err, or 500 for anything that was
// not produced with NewRequestError.
func statusOf(err error) (int, *Error) {
	var webErr *Error
	if errors.As(err, &webErr) {
		if webErr.Status == 0 {
			return http.StatusInternalServerError, webErr
		}
		return webErr.Status, webErr
	}
	return http.StatusInternalServerError, nil
}
