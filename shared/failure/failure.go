// Package failure carries an HTTP status code alongside an error message so that services
// can report outcomes once and both the console and the HTTP layer can interpret them.
package failure

import (
	"errors"
	"net/http"
)

// Failure is an error with a standard HTTP status code.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	cause error
}

var (
	ForbiddenError     = New(http.StatusForbidden, "You don't have the required permissions")
	InvalidCredentials = New(http.StatusUnauthorized, "invalid username or password")
)

func New(code int, msg string) *Failure {
	return &Failure{Code: code, Message: msg}
}

func wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error(), cause: err}
}

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap returns the error the failure was built from, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest wraps err as a 400. A nil err stays nil.
func BadRequest(err error) error {
	return wrap(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

// InvalidInterval reports a time interval whose end is not after its start.
func InvalidInterval() error {
	return New(http.StatusBadRequest, "end time must be after start time")
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

// InternalError wraps err as a 500. A nil err stays nil.
func InternalError(err error) error {
	return wrap(http.StatusInternalServerError, err)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

// Conflict reports a clash with the ledger's current state, such as a taken slot or a duplicate name.
func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

// GetCode returns the status code carried by err, or 500 for any other error.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code int) bool {
	return err != nil && GetCode(err) == code
}
