package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WebeWizard/flashcard-server/core/response"
)

func TestString(t *testing.T) {
	t.Parallel()

	resp := response.String("deck deleted")
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	err := resp(w, req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "deck deleted", w.Body.String())
}

func TestStringWithStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		content        string
		status         int
		expectedStatus int
	}{
		{"created", "account created", http.StatusCreated, http.StatusCreated},
		{"zero_status_defaults_to_ok", "ok", 0, http.StatusOK},
		{"empty_body", "", http.StatusAccepted, http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := response.StringWithStatus(tt.content, tt.status)
			w := httptest.NewRecorder()

			err := resp(w, httptest.NewRequest("GET", "/", nil))

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.content, w.Body.String())
		})
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	resp := response.Status(http.StatusAccepted)
	w := httptest.NewRecorder()

	err := resp(w, httptest.NewRequest("GET", "/", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, w.Header().Get("Content-Type"))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	resp := response.JSON(map[string]any{"id": 42, "name": "spanish verbs"})
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	err := resp(w, req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":42,"name":"spanish verbs"}`, w.Body.String())
}

func TestJSONWithStatus(t *testing.T) {
	t.Parallel()

	t.Run("custom_status", func(t *testing.T) {
		t.Parallel()

		resp := response.JSONWithStatus(map[string]string{"error": "nope"}, http.StatusConflict)
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		err := resp(w, req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"nope"}`, w.Body.String())
	})

	t.Run("no_content_has_no_body", func(t *testing.T) {
		t.Parallel()

		resp := response.JSONWithStatus(map[string]string{"ignored": "yes"}, http.StatusNoContent)
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		err := resp(w, req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("zero_status_with_nil_data", func(t *testing.T) {
		t.Parallel()

		resp := response.JSONWithStatus(nil, 0)
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		err := resp(w, req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
