package middleware

import (
	"net/http"

	"github.com/WebeWizard/flashcard-server/core/handler"
	"github.com/WebeWizard/flashcard-server/core/response"
)

// DefaultBodyLimit caps request bodies at 1MB. The largest legitimate body
// this API sees is a card's question and answer text, so the cap is generous
// while still keeping a hostile client from making the binder buffer
// arbitrary input.
const DefaultBodyLimit int64 = 1 << 20

// BodyLimitConfig configures the request body cap.
type BodyLimitConfig struct {
	// Skip allows bypassing the cap for specific requests
	Skip func(ctx handler.Context) bool

	// MaxBytes is the cap in bytes (default: DefaultBodyLimit)
	MaxBytes int64
}

// BodyLimit caps request bodies at DefaultBodyLimit.
func BodyLimit[C handler.Context]() handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{})
}

// BodyLimitWithConfig creates a body-cap middleware with custom configuration.
// A declared Content-Length over the cap is rejected with 413 before the
// handler runs. Chunked or lying requests are caught while the handler reads:
// the body is wrapped so reads past the cap fail, which surfaces through the
// binder as a regular per-request error.
func BodyLimitWithConfig[C handler.Context](cfg BodyLimitConfig) handler.Middleware[C] {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultBodyLimit
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			if req.ContentLength > cfg.MaxBytes {
				return response.Error(response.ErrRequestEntityTooLarge.WithDetails(map[string]any{
					"limit": cfg.MaxBytes,
					"size":  req.ContentLength,
				}))
			}

			if req.Body != nil {
				req.Body = http.MaxBytesReader(ctx.ResponseWriter(), req.Body, cfg.MaxBytes)
			}

			return next(ctx)
		}
	}
}
