package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebeWizard/flashcard-server/core/handler"
	"github.com/WebeWizard/flashcard-server/core/response"
	"github.com/WebeWizard/flashcard-server/core/router"
)

// customStatusError is a test error that implements StatusCode() int
type customStatusError struct {
	message string
	status  int
}

func (e customStatusError) Error() string {
	return e.message
}

func (e customStatusError) StatusCode() int {
	return e.status
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		error          error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "regular error returns 500",
			error:          errors.New("internal error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
		{
			name:           "HTTPError with 401",
			error:          response.ErrUnauthorized.WithMessage("invalid credentials"),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "invalid credentials",
		},
		{
			name:           "HTTPError with 404",
			error:          response.ErrNotFound.WithMessage("resource not found"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   "resource not found",
		},
		{
			name:           "custom error with StatusCode interface",
			error:          customStatusError{message: "already exists", status: http.StatusConflict},
			expectedStatus: http.StatusConflict,
			expectedBody:   "Conflict",
		},
		{
			name:           "status outside catalog falls back to 500",
			error:          customStatusError{message: "odd status", status: http.StatusTeapot},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
		{
			name:           "wrapped StatusCode error keeps its status",
			error:          errors.Join(errors.New("context"), customStatusError{message: "gone", status: http.StatusNotFound}),
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			testCtx := router.NewContext(w, req, nil)

			response.ErrorHandler(testCtx, tt.error)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestJSONErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		error          error
		expectedStatus int
		expectedJSON   map[string]any
		checkDetails   bool
	}{
		{
			name:           "regular error returns 500",
			error:          errors.New("internal error"),
			expectedStatus: http.StatusInternalServerError,
			expectedJSON: map[string]any{
				"code":    "internal_server_error",
				"message": "Internal Server Error",
				"details": map[string]any{
					"cause": "internal error",
				},
			},
			checkDetails: true,
		},
		{
			name:           "HTTPError with structure",
			error:          response.ErrUnauthorized.WithMessage("invalid token"),
			expectedStatus: http.StatusUnauthorized,
			expectedJSON: map[string]any{
				"code":    "unauthorized",
				"message": "invalid token",
			},
		},
		{
			name: "HTTPError with details",
			error: response.ErrUnprocessableEntity.WithMessage("validation failed").WithDetails(map[string]any{
				"field":  "email",
				"reason": "invalid format",
			}),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedJSON: map[string]any{
				"code":    "unprocessable_entity",
				"message": "validation failed",
				"details": map[string]any{
					"field":  "email",
					"reason": "invalid format",
				},
			},
			checkDetails: true,
		},
		{
			name:           "HTTPError with error cause in details",
			error:          response.ErrBadRequest.WithMessage("request failed").WithError(errors.New("underlying cause")),
			expectedStatus: http.StatusBadRequest,
			expectedJSON: map[string]any{
				"code":    "bad_request",
				"message": "request failed",
				"details": map[string]any{
					"cause": "underlying cause",
				},
			},
			checkDetails: true,
		},
		{
			name:           "custom error with StatusCode interface",
			error:          customStatusError{message: "duplicate email", status: http.StatusConflict},
			expectedStatus: http.StatusConflict,
			expectedJSON: map[string]any{
				"code":    "conflict",
				"message": "Conflict",
				"details": map[string]any{
					"cause": "duplicate email",
				},
			},
			checkDetails: true,
		},
		{
			name:           "HTTPError without custom message uses default",
			error:          response.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedJSON: map[string]any{
				"code":    "not_found",
				"message": "Not Found",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			testCtx := router.NewContext(w, req, nil)

			response.JSONErrorHandler(testCtx, tt.error)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var result map[string]any
			err := json.NewDecoder(w.Body).Decode(&result)
			require.NoError(t, err)

			if tt.checkDetails {
				assert.Equal(t, tt.expectedJSON, result)
			} else {
				for key, expectedValue := range tt.expectedJSON {
					if key != "details" {
						assert.Equal(t, expectedValue, result[key], "field %s mismatch", key)
					}
				}
			}
		})
	}
}

func TestErrorHandlersWithRouter(t *testing.T) {
	t.Parallel()

	t.Run("ErrorHandler with router", func(t *testing.T) {
		r := router.New[*router.Context](
			router.WithErrorHandler(response.ErrorHandler[*router.Context]),
		)

		r.Get("/error", func(ctx *router.Context) handler.Response {
			return response.Error(response.ErrUnauthorized.WithMessage("need auth"))
		})

		req := httptest.NewRequest(http.MethodGet, "/error", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "need auth", w.Body.String())
	})

	t.Run("JSONErrorHandler with router", func(t *testing.T) {
		r := router.New[*router.Context](
			router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
		)

		r.Get("/error", func(ctx *router.Context) handler.Response {
			return response.Error(
				response.ErrBadRequest.WithMessage("invalid input").WithDetails(map[string]any{
					"field":      "username",
					"min_length": 3,
				}),
			)
		})

		req := httptest.NewRequest(http.MethodGet, "/error", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

		var result map[string]any
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)

		assert.Equal(t, "bad_request", result["code"])
		assert.Equal(t, "invalid input", result["message"])
		assert.NotNil(t, result["details"])

		details := result["details"].(map[string]any)
		assert.Equal(t, "username", details["field"])
		assert.Equal(t, float64(3), details["min_length"]) // JSON numbers decode as float64
	})

	t.Run("router dispatch errors map to their status", func(t *testing.T) {
		r := router.New[*router.Context](
			router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
		)

		r.Get("/known", func(ctx *router.Context) handler.Response {
			return response.String("ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var result map[string]any
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, "not_found", result["code"])
	})
}
