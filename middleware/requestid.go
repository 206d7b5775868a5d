package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/WebeWizard/flashcard-server/core/handler"
)

// requestIDContextKey keys the generated ID in the request context.
type requestIDContextKey struct{}

// RequestIDHeader is the response header carrying the request ID.
const RequestIDHeader = "X-Request-ID"

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip allows bypassing the middleware for specific requests
	Skip func(ctx handler.Context) bool

	// Generator creates IDs (default: uuid v4), overridable in tests
	Generator func() string
}

// RequestID tags every request with a fresh UUID so log lines from one
// request can be correlated. The ID lands in the context (GetRequestID) and
// on the response as X-Request-ID. Incoming X-Request-ID headers are
// ignored: nothing upstream of this server is trusted to pick IDs.
func RequestID[C handler.Context]() handler.Middleware[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom configuration.
func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.Middleware[C] {
	if cfg.Generator == nil {
		cfg.Generator = func() string { return uuid.New().String() }
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			requestID := cfg.Generator()
			ctx.SetValue(requestIDContextKey{}, requestID)

			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set(RequestIDHeader, requestID)
				return response(w, r)
			}
		}
	}
}

// GetRequestID returns the ID assigned to this request, if any.
func GetRequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
