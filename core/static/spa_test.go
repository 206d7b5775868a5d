package static_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebeWizard/flashcard-server/core/handler"
	"github.com/WebeWizard/flashcard-server/core/router"
	"github.com/WebeWizard/flashcard-server/core/static"
)

func newShellDir(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>app shell</html>"), 0o644))
	return root
}

func TestSPAServesShellForAnyPath(t *testing.T) {
	t.Parallel()

	root := newShellDir(t)

	r := router.New[*router.Context]()
	r.Get("/<path...>", static.SPA[*router.Context](root, "index.html"))

	for _, target := range []string{"/", "/decks", "/deck/12345", "/settings/profile"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "path %s", target)
		assert.Equal(t, "<html>app shell</html>", w.Body.String(), "path %s", target)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html", "path %s", target)
	}
}

func TestSPANoCacheByDefault(t *testing.T) {
	t.Parallel()

	root := newShellDir(t)

	r := router.New[*router.Context]()
	r.Get("/<path...>", static.SPA[*router.Context](root, "index.html"))

	req := httptest.NewRequest(http.MethodGet, "/decks", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
	assert.Equal(t, "0", w.Header().Get("Expires"))
}

func TestSPAWithCacheOption(t *testing.T) {
	t.Parallel()

	root := newShellDir(t)

	r := router.New[*router.Context]()
	r.Get("/<path...>", static.SPA[*router.Context](root, "index.html", static.WithSPACache(5*time.Minute)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))
	assert.Empty(t, w.Header().Get("Pragma"))
}

func TestSPADoesNotShadowEarlierRoutes(t *testing.T) {
	t.Parallel()

	root := newShellDir(t)

	r := router.New[*router.Context]()
	r.Get("/decks", func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, req *http.Request) error {
			w.WriteHeader(http.StatusOK)
			_, err := w.Write([]byte("deck list"))
			return err
		}
	})
	r.Get("/<path...>", static.SPA[*router.Context](root, "index.html"))

	req := httptest.NewRequest(http.MethodGet, "/decks", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, "deck list", w.Body.String())
}

func TestSPAPicksUpRedeployedShell(t *testing.T) {
	t.Parallel()

	root := newShellDir(t)

	r := router.New[*router.Context]()
	r.Get("/<path...>", static.SPA[*router.Context](root, "index.html"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "<html>app shell</html>", w.Body.String())

	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>v2</html>"), 0o644))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "<html>v2</html>", w.Body.String())
}

func TestSPAPanicsOnBadConfiguration(t *testing.T) {
	t.Parallel()

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			static.SPA[*router.Context]("/nonexistent/dist", "index.html")
		})
	})

	t.Run("missing index", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			static.SPA[*router.Context](t.TempDir(), "index.html")
		})
	})

	t.Run("index is a directory", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "index.html"), 0o755))

		assert.Panics(t, func() {
			static.SPA[*router.Context](root, "index.html")
		})
	})
}
