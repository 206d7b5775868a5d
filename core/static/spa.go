package static

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/WebeWizard/flashcard-server/core/handler"
)

// spaConfig holds configuration for SPA shell serving
type spaConfig struct {
	cacheMaxAge time.Duration
}

// SPAOption configures SPA serving behavior
type SPAOption func(*spaConfig)

// WithSPACache serves the shell with a public max-age instead of the
// default no-cache headers.
func WithSPACache(maxAge time.Duration) SPAOption {
	return func(c *spaConfig) {
		c.cacheMaxAge = maxAge
	}
}

// SPA creates a handler that always serves one fixed file, the application
// shell of a client-routed single page app. Register it on the catch-all
// route after every API and asset route so unknown GET paths land on the
// shell and the client router takes over:
//
//	r.Get("/<path...>", static.SPA[*router.Context]("./web/dist", "index.html"))
//
// Panics at startup if root or the index file does not exist. The shell is
// served with no-cache headers by default so deploys take effect on the
// next page load.
func SPA[C handler.Context](root, indexFile string, opts ...SPAOption) handler.HandlerFunc[C] {
	config := &spaConfig{}
	for _, opt := range opts {
		opt(config)
	}

	cleanRoot := filepath.Clean(root)

	rootInfo, err := os.Stat(cleanRoot)
	if err != nil {
		if os.IsNotExist(err) {
			panic("static.SPA: root directory does not exist: " + cleanRoot)
		}
		panic("static.SPA: error accessing root directory: " + err.Error())
	}
	if !rootInfo.IsDir() {
		panic("static.SPA: root path is not a directory: " + cleanRoot)
	}

	indexPath := filepath.Join(cleanRoot, indexFile)
	indexInfo, err := os.Stat(indexPath)
	if err != nil {
		if os.IsNotExist(err) {
			panic("static.SPA: index file does not exist: " + indexPath)
		}
		panic("static.SPA: error accessing index file: " + err.Error())
	}
	if indexInfo.IsDir() {
		panic("static.SPA: index path is a directory, not a file: " + indexPath)
	}

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			f, err := os.Open(indexPath)
			if err != nil {
				http.NotFound(w, r)
				return nil
			}
			defer f.Close()

			stat, err := f.Stat()
			if err != nil {
				http.NotFound(w, r)
				return nil
			}

			headers := w.Header()
			if config.cacheMaxAge > 0 {
				headers.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(config.cacheMaxAge.Seconds())))
			} else {
				headers.Set("Cache-Control", "no-cache, no-store, must-revalidate")
				headers.Set("Pragma", "no-cache")
				headers.Set("Expires", "0")
			}

			http.ServeContent(w, r, stat.Name(), stat.ModTime(), f)
			return nil
		}
	}
}
