package middleware

import (
	"net/http"
	"strings"

	"github.com/WebeWizard/flashcard-server/core/handler"
)

// CORSConfig defines the cross-origin policy stamped on responses.
// The flashcard API serves a single known web client, so the policy is a
// fixed origin plus fixed method and header lists rather than a
// negotiated one.
type CORSConfig struct {
	// Skip allows bypassing CORS handling for specific requests
	Skip func(ctx handler.Context) bool

	// AllowOrigin is the value of Access-Control-Allow-Origin.
	// Defaults to "*" which is only suitable for development.
	AllowOrigin string

	// AllowMethods lists the methods advertised on preflight responses.
	// Defaults to POST, GET, OPTIONS.
	AllowMethods []string

	// AllowHeaders lists the request headers advertised on preflight
	// responses. Defaults to content-type and x-webe-token.
	AllowHeaders []string
}

func (cfg CORSConfig) withDefaults() CORSConfig {
	if cfg.AllowOrigin == "" {
		cfg.AllowOrigin = "*"
	}
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{http.MethodPost, http.MethodGet, http.MethodOptions}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{"content-type", "x-webe-token"}
	}
	return cfg
}

// CORS returns a middleware that stamps Access-Control-Allow-Origin on every
// response passing through it. Preflight OPTIONS requests are answered by a
// dedicated route built with Preflight, not by this middleware.
//
// Usage:
//
//	r.Use(middleware.CORS[*router.Context](middleware.CORSConfig{
//		AllowOrigin: "http://localhost:1234",
//	}))
func CORS[C handler.Context](cfg CORSConfig) handler.Middleware[C] {
	cfg = cfg.withDefaults()

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				headers := w.Header()
				headers.Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
				headers.Add("Vary", "Origin")
				return response(w, r)
			}
		}
	}
}

// Preflight returns the handler for a catch-all OPTIONS route. It answers
// every preflight with the full fixed policy and an empty 200 body, so the
// browser learns the allowed methods and headers regardless of which path it
// asked about.
func Preflight[C handler.Context](cfg CORSConfig) handler.HandlerFunc[C] {
	cfg = cfg.withDefaults()

	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			headers := w.Header()
			headers.Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
			headers.Set("Access-Control-Allow-Methods", allowMethods)
			headers.Set("Access-Control-Allow-Headers", allowHeaders)
			w.WriteHeader(http.StatusOK)
			return nil
		}
	}
}
