// Package router dispatches HTTP requests against an ordered route table
// with type-safe handlers and middleware support.
//
// Routes are registered as method + pattern pairs and tried strictly in
// registration order; the first route whose method and path structure match
// wins. There is no specificity ranking, so the registration order IS the
// precedence order. A request that matches no route is answered through the
// error handler with a 404.
//
// # Pattern Syntax
//
// Patterns are slash-separated segments:
//
//	/decks                 literal segments match exactly
//	/deck/<id>             <name> binds exactly one non-empty segment
//	/app/<path...>         <name...> binds the rest of the path (final only)
//
// A param never matches an empty segment, so "/deck/<id>" does not match
// "/deck/" or "/deck/scores/1". A wildcard may bind the empty suffix, which
// lets "/<path...>" catch "/".
//
// # Usage
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
//	)
//
//	r.Get("/deck/<id>", getDeck, authGate)
//	r.Get("/<path...>", spaHandler)
//
//	http.ListenAndServe(":8080", r)
//
// Registration must finish before the router starts serving: the table is
// read without locking on the hot path. Pattern parse failures are reported
// at registration time (Handle returns them, the method helpers panic),
// never during matching.
//
// # Failure Containment
//
// Each request is dispatched with panic recovery. A handler panic becomes a
// 500 through the error handler, wrapped in an error implementing
// PanicError with the original value and stack. A panic after the response
// has started is logged instead, since the status line is already on the
// wire. No request failure can terminate the accept loop or affect another
// in-flight request.
package router
