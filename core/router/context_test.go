package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebeWizard/flashcard-server/core/router"
)

type ctxKey struct{}

func TestContextDelegatesToRequestContext(t *testing.T) {
	t.Parallel()

	deadline := time.Now().Add(time.Minute)
	base, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()
	base = context.WithValue(base, ctxKey{}, "from-request")

	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(base)
	ctx := router.NewContext(httptest.NewRecorder(), req, nil)

	gotDeadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.Equal(t, deadline, gotDeadline)
	assert.Equal(t, "from-request", ctx.Value(ctxKey{}))
	assert.NoError(t, ctx.Err())

	cancel()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	select {
	case <-ctx.Done():
	default:
		t.Fatal("done channel should be closed after cancel")
	}
}

func TestContextSetValueShadowsRequestContext(t *testing.T) {
	t.Parallel()

	base := context.WithValue(context.Background(), ctxKey{}, "underneath")
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(base)
	ctx := router.NewContext(httptest.NewRecorder(), req, nil)

	ctx.SetValue(ctxKey{}, "on-top")
	assert.Equal(t, "on-top", ctx.Value(ctxKey{}))
}

func TestContextParams(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/deck/42", nil)
	ctx := router.NewContext(httptest.NewRecorder(), req, map[string]string{"id": "42"})

	assert.Equal(t, "42", ctx.Param("id"))
	assert.Equal(t, "", ctx.Param("missing"))

	empty := router.NewContext(httptest.NewRecorder(), req, nil)
	assert.Equal(t, "", empty.Param("id"))
}

func TestContextAccessors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/account/login", nil)
	w := httptest.NewRecorder()
	ctx := router.NewContext(w, req, nil)

	assert.Same(t, req, ctx.Request())
	assert.Equal(t, w, ctx.ResponseWriter())
}
