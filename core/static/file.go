package static

import (
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/WebeWizard/flashcard-server/core/handler"
)

// fileConfig holds configuration for param-based file serving
type fileConfig struct {
	allowDotfiles bool
}

// FileOption configures file serving behavior
type FileOption func(*fileConfig)

// WithDotfiles allows serving files whose name starts with a dot.
// Dotfiles are hidden (404) by default.
func WithDotfiles() FileOption {
	return func(c *fileConfig) {
		c.allowDotfiles = true
	}
}

// File creates a handler that serves files from root, named by the bound
// route parameter. Register it behind a wildcard pattern so the parameter
// carries the remaining path:
//
//	r.Get("/app/<path...>", static.File[*router.Context]("./web/dist", "path"))
//
// Panics at startup if root does not exist or is not a directory. Requests
// that escape root, name a directory, or name a dotfile are answered 404.
// Content type, range requests, and conditional requests are handled by
// http.ServeContent.
func File[C handler.Context](root, paramName string, opts ...FileOption) handler.HandlerFunc[C] {
	config := &fileConfig{}
	for _, opt := range opts {
		opt(config)
	}

	cleanRoot := filepath.Clean(root)

	info, err := os.Stat(cleanRoot)
	if err != nil {
		if os.IsNotExist(err) {
			panic("static.File: root directory does not exist: " + cleanRoot)
		}
		panic("static.File: error accessing root directory: " + err.Error())
	}
	if !info.IsDir() {
		panic("static.File: root path is not a directory: " + cleanRoot)
	}

	return func(ctx C) handler.Response {
		raw := ctx.Param(paramName)

		return func(w http.ResponseWriter, r *http.Request) error {
			relPath, err := url.PathUnescape(raw)
			if err != nil {
				http.NotFound(w, r)
				return nil
			}

			// Rooting before Clean collapses any ".." the client smuggled
			// in, so the resolved path cannot climb out of root.
			relPath = path.Clean("/" + relPath)

			if !config.allowDotfiles && containsDotfile(relPath) {
				http.NotFound(w, r)
				return nil
			}

			fullPath := filepath.Join(cleanRoot, filepath.FromSlash(relPath))
			if fullPath != cleanRoot && !strings.HasPrefix(fullPath, cleanRoot+string(filepath.Separator)) {
				http.NotFound(w, r)
				return nil
			}

			f, err := os.Open(fullPath)
			if err != nil {
				http.NotFound(w, r)
				return nil
			}
			defer f.Close()

			stat, err := f.Stat()
			if err != nil || stat.IsDir() {
				http.NotFound(w, r)
				return nil
			}

			http.ServeContent(w, r, stat.Name(), stat.ModTime(), f)
			return nil
		}
	}
}

func containsDotfile(p string) bool {
	for _, segment := range strings.Split(p, "/") {
		if len(segment) > 1 && segment[0] == '.' {
			return true
		}
	}
	return false
}
