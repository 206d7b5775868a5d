package middleware

import (
	"context"
	"errors"

	"github.com/WebeWizard/flashcard-server/core/handler"
	"github.com/WebeWizard/flashcard-server/core/response"
)

// sessionContextKey is used as a key for storing the authenticated session in request context.
type sessionContextKey struct{}

// ErrMissingSessionToken is passed to the error handler when the request
// carries no session token at all.
var ErrMissingSessionToken = errors.New("middleware: missing session token")

// SessionTokenHeader is the header the web client sends its session token in.
const SessionTokenHeader = "x-webe-token"

// SessionValidator checks a raw session token and returns the session bound
// to it. The auth manager implements this.
type SessionValidator[S any] interface {
	ValidateSession(ctx context.Context, token string) (S, error)
}

// AuthConfig configures the session authentication middleware.
type AuthConfig[S any] struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Validator resolves tokens to sessions (required)
	Validator SessionValidator[S]
	// HeaderName specifies the header carrying the token (default: "x-webe-token")
	HeaderName string
	// ErrorHandler defines how to handle authentication failures (default: returns 401 Unauthorized)
	ErrorHandler func(ctx handler.Context, err error) handler.Response
}

// Auth creates a session authentication middleware with default configuration.
// It reads the token from the x-webe-token header, validates it, and stores
// the session in the request context. Requests without a valid session are
// rejected with 401 before the wrapped handler runs.
//
// Usage:
//
//	gate := middleware.Auth[*router.Context, auth.Session](authManager)
//	r.Get("/decks", listDecks, gate)
//
//	func listDecks(ctx *router.Context) handler.Response {
//		session, ok := middleware.GetSession[auth.Session](ctx)
//		if !ok {
//			return response.Error(response.ErrUnauthorized)
//		}
//		// session.AccountID identifies the caller
//	}
func Auth[C handler.Context, S any](validator SessionValidator[S]) handler.Middleware[C] {
	return AuthWithConfig[C](AuthConfig[S]{Validator: validator})
}

// AuthWithConfig creates a session authentication middleware with custom configuration.
// Panics if the validator is not provided.
func AuthWithConfig[C handler.Context, S any](cfg AuthConfig[S]) handler.Middleware[C] {
	if cfg.Validator == nil {
		panic("auth middleware: validator is required")
	}

	if cfg.HeaderName == "" {
		cfg.HeaderName = SessionTokenHeader
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(ctx handler.Context, err error) handler.Response {
			httpErr := response.ErrUnauthorized
			if err != nil {
				httpErr = httpErr.WithMessage(err.Error())
			}
			return response.Error(httpErr)
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			token := ctx.Request().Header.Get(cfg.HeaderName)
			if token == "" {
				return cfg.ErrorHandler(ctx, ErrMissingSessionToken)
			}

			session, err := cfg.Validator.ValidateSession(ctx, token)
			if err != nil {
				return cfg.ErrorHandler(ctx, err)
			}

			ctx.SetValue(sessionContextKey{}, session)

			return next(ctx)
		}
	}
}

// GetSession retrieves the authenticated session of the specified type from
// the request context. Returns the session and a boolean indicating whether
// it was found and of the correct type.
func GetSession[S any](ctx handler.Context) (S, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(S)
	return session, ok
}
