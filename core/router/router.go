package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/WebeWizard/flashcard-server/core/handler"
)

// Route describes a single registered route for introspection.
type Route struct {
	Method  string
	Pattern string
}

// route is one entry in the ordered route table. The handler is already
// wrapped in its route-local middlewares at registration time.
type route[C handler.Context] struct {
	method   string
	pattern  string
	segments []segment
	handler  handler.HandlerFunc[C]
}

// Router dispatches HTTP requests against an ordered route table.
//
// Routes are tried in registration order and the first route whose method
// and path segments match wins; there is no specificity ranking. The table
// is meant to be built during startup and is read without locking, so all
// registration must complete before the router starts serving.
type Router[C handler.Context] struct {
	routes       []*route[C]
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger
}

// New creates a router with the given options.
func New[C handler.Context](opts ...Option[C]) *Router[C] {
	r := &Router[C]{
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(r)
	}

	// If no context factory provided, require it for non-default contexts
	if r.newContext == nil {
		r.newContext = func(w http.ResponseWriter, req *http.Request, params map[string]string) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, req, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return r
}

// Handle appends a route to the table. The pattern is parsed immediately and
// parse failures are returned here; matching never errors. Route-local
// middlewares wrap the handler before any router-level middleware runs.
func (r *Router[C]) Handle(method, pattern string, fn handler.HandlerFunc[C], middlewares ...handler.Middleware[C]) error {
	if fn == nil {
		return fmt.Errorf("%w: %s %q", ErrNilHandler, method, pattern)
	}

	segments, err := parsePattern(pattern)
	if err != nil {
		return err
	}

	if len(middlewares) > 0 {
		fn = chain(middlewares, fn)
	}

	r.routes = append(r.routes, &route[C]{
		method:   strings.ToUpper(method),
		pattern:  pattern,
		segments: segments,
		handler:  fn,
	})

	return nil
}

// Get registers a handler for GET requests. It panics on a pattern parse
// failure, which makes it suitable for startup wiring.
func (r *Router[C]) Get(pattern string, fn handler.HandlerFunc[C], middlewares ...handler.Middleware[C]) {
	r.MustHandle(http.MethodGet, pattern, fn, middlewares...)
}

// Post registers a handler for POST requests. It panics on a pattern parse
// failure, which makes it suitable for startup wiring.
func (r *Router[C]) Post(pattern string, fn handler.HandlerFunc[C], middlewares ...handler.Middleware[C]) {
	r.MustHandle(http.MethodPost, pattern, fn, middlewares...)
}

// Options registers a handler for OPTIONS requests. It panics on a pattern
// parse failure, which makes it suitable for startup wiring.
func (r *Router[C]) Options(pattern string, fn handler.HandlerFunc[C], middlewares ...handler.Middleware[C]) {
	r.MustHandle(http.MethodOptions, pattern, fn, middlewares...)
}

// MustHandle is Handle for startup wiring: it panics instead of returning a
// registration error.
func (r *Router[C]) MustHandle(method, pattern string, fn handler.HandlerFunc[C], middlewares ...handler.Middleware[C]) {
	if err := r.Handle(method, pattern, fn, middlewares...); err != nil {
		panic(err)
	}
}

// Use appends router-level middleware that wraps every route.
func (r *Router[C]) Use(middlewares ...handler.Middleware[C]) {
	if len(r.routes) > 0 {
		panic("router: all middlewares must be registered before routes")
	}
	r.middlewares = append(r.middlewares, middlewares...)
}

// Routes returns all registered routes in registration order.
func (r *Router[C]) Routes() []Route {
	routes := make([]Route, len(r.routes))
	for i, rt := range r.routes {
		routes[i] = Route{Method: rt.method, Pattern: rt.pattern}
	}
	return routes
}

// lookup scans the table in registration order and returns the first route
// whose method and segments match. No locking: the table is read-only once
// the server is serving.
func (r *Router[C]) lookup(method, path string) (*route[C], map[string]string) {
	parts := strings.Split(path[1:], "/")
	for _, rt := range r.routes {
		if rt.method != method {
			continue
		}
		if params, ok := matchSegments(rt.segments, parts); ok {
			return rt, params
		}
	}
	return nil, nil
}

// chain builds a single handler from a middleware stack and endpoint.
// Middlewares wrap in reverse order so the first one registered runs first.
func chain[C handler.Context](middlewares []handler.Middleware[C], endpoint handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
