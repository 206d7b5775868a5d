package router

import (
	"log/slog"
	"net/http"

	"github.com/WebeWizard/flashcard-server/core/handler"
)

// Option configures a Router during creation.
type Option[C handler.Context] func(*Router[C])

// WithErrorHandler sets a custom error handler for the router.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(r *Router[C]) {
		if h != nil {
			r.errorHandler = h
		}
	}
}

// WithMiddleware adds router-level middleware wrapping every route.
func WithMiddleware[C handler.Context](middlewares ...handler.Middleware[C]) Option[C] {
	return func(r *Router[C]) {
		r.middlewares = append(r.middlewares, middlewares...)
	}
}

// WithContextFactory sets a custom context factory for the router.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request, map[string]string) C) Option[C] {
	return func(r *Router[C]) {
		r.newContext = f
	}
}

// WithLogger sets a custom logger for the router.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(r *Router[C]) {
		if logger != nil {
			r.logger = logger
		}
	}
}
