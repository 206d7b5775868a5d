package response

import (
	"errors"
	"net/http"

	"github.com/WebeWizard/flashcard-server/core/handler"
)

// statusCode matches errors that know their own HTTP status, like the
// router's dispatch errors and HTTPError itself.
type statusCode interface {
	StatusCode() int
}

// toHTTPError folds any error into an HTTPError. An HTTPError anywhere in
// the chain wins as-is; otherwise a StatusCode in the chain picks the
// catalog entry and the original error rides along as the cause. Everything
// else is a 500.
func toHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := byStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}
	return baseErr.WithError(err)
}

// ErrorHandler renders request failures as text/plain. It is the simple
// counterpart of JSONErrorHandler for surfaces with no JSON client.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := toHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler renders request failures in the API's JSON error shape.
// Wired into the router as its error handler, it covers everything from a
// 404 on no route through a recovered panic.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := toHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
