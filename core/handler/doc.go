// Package handler provides types and interfaces for HTTP request processing
// with type-safe context handling and middleware support. It defines the core
// abstractions for building HTTP handlers with custom context types and
// composable middleware chains.
//
// # Core Types
//
// The package defines the capability objects the router dispatches:
//
//	// Response function renders HTTP responses
//	type Response func(w http.ResponseWriter, r *http.Request) error
//
//	// Type-safe handler with custom context
//	type HandlerFunc[C Context] func(ctx C) Response
//
//	// Error handling function
//	type ErrorHandler[C Context] func(ctx C, err error)
//
//	// Middleware function for handler composition
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// A handler computes a Response; the Response performs the actual write.
// That split keeps business logic separate from rendering and lets
// middleware decorate either side:
//
//	func getDeck(ctx *router.Context) handler.Response {
//		deck, err := decks.Get(ctx, ctx.Param("id"))
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.JSON(deck)
//	}
//
// # Context Interface
//
// The Context interface extends Go's standard context.Context with
// HTTP-specific methods:
//
//	type Context interface {
//		context.Context
//		Request() *http.Request
//		ResponseWriter() http.ResponseWriter
//		Param(key string) string
//		SetValue(key, val any)
//	}
//
// SetValue stores request-scoped values, which is how decorating middleware
// such as an authentication gate hands validated data to inner handlers.
//
// # Middleware
//
// Middleware wraps a HandlerFunc and returns a new one. Composition order is
// outermost first:
//
//	func Logging[C handler.Context](log *slog.Logger) handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) handler.Response {
//				log.InfoContext(ctx, "request",
//					"method", ctx.Request().Method,
//					"path", ctx.Request().URL.Path,
//				)
//				return next(ctx)
//			}
//		}
//	}
package handler
