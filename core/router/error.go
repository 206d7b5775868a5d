package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/WebeWizard/flashcard-server/core/handler"
)

// Registration errors, reported when a route is added.
var (
	ErrInvalidPattern   = errors.New("invalid route path pattern")
	ErrWildcardPosition = errors.New("wildcard must be the final segment")
	ErrDuplicateParam   = errors.New("duplicate parameter name")
	ErrNilHandler       = errors.New("nil handler")
	ErrNoContextFactory = errors.New("no context factory provided")
)

// Dispatch errors carry the HTTP status they map to via StatusCode, so any
// error handler wired into the router resolves them without special cases.
var (
	ErrNotFound      = &routeError{msg: "not found", status: http.StatusNotFound}
	ErrMalformedPath = &routeError{msg: "malformed request path", status: http.StatusBadRequest}
	ErrNilResponse   = &routeError{msg: "nil response", status: http.StatusInternalServerError}
)

// routeError is a dispatch failure with a fixed HTTP status.
type routeError struct {
	msg    string
	status int
}

func (e *routeError) Error() string { return e.msg }

// StatusCode returns the HTTP status code for the error.
func (e *routeError) StatusCode() int { return e.status }

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler provides default error handling.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	// Prevent double-writing responses which causes HTTP protocol errors
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}

	http.Error(w, err.Error(), status)
}

// PanicError interface allows external error handlers to detect and handle panics.
// When a panic is recovered by the router, it's wrapped in an error that implements
// this interface, providing access to the original panic value and stack trace.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

// panicError is the private implementation of PanicError interface.
type panicError struct {
	value any
	stack []byte
}

// Error implements the error interface.
func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the original panic value.
func (e *panicError) Value() any {
	return e.value
}

// Stack returns the stack trace.
func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
