// Package middleware provides the HTTP decorators the flashcard service
// composes around its handlers: session token authentication, CORS with a
// fixed policy, request ID generation, request body limits, and structured
// request logging.
//
// All middleware functions follow a consistent pattern:
//   - Generic functions that accept a handler.Context type parameter
//   - Configuration structs for customization
//   - Default constructors for common use cases
//   - WithConfig constructors for advanced configuration
//   - Context helpers for retrieving stored values
//
// Middleware applies router-wide through Use or per route as trailing
// arguments to the route registrars:
//
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//		middleware.CORS[*router.Context](corsCfg),
//	)
//
//	gate := middleware.Auth[*router.Context, auth.Session](authManager)
//	r.Get("/decks", listDecks, gate)
package middleware
