package handlers

import (
	"log/slog"
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// SPA serves files from a client build directory. Paths that do not name a
// file fall back to the build's index.html, or to fallback when the build
// has no index.
type SPA struct {
	dir      string
	fallback nethttp.Handler
	files    nethttp.Handler
	logger   *slog.Logger
}

// NewSPA returns a handler rooted at dir.
func NewSPA(dir string, fallback nethttp.Handler, logger *slog.Logger) *SPA {
	return &SPA{
		dir:      dir,
		fallback: fallback,
		files:    nethttp.FileServer(nethttp.Dir(dir)),
		logger:   logger,
	}
}

func (s *SPA) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet && r.Method != nethttp.MethodHead {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", s.logger)
		return
	}
	clean := path.Clean("/" + r.URL.Path)
	if clean != "/" && s.isFile(clean) {
		s.files.ServeHTTP(w, r)
		return
	}
	index := filepath.Join(s.dir, "index.html")
	if fileExists(index) {
		nethttp.ServeFile(w, r, index)
		return
	}
	if s.fallback == nil {
		writeError(w, r, nethttp.StatusNotFound, "not found", s.logger)
		return
	}
	s.fallback.ServeHTTP(w, r)
}

func (s *SPA) isFile(urlPath string) bool {
	if s.dir == "" || strings.Contains(urlPath, "..") {
		return false
	}
	return fileExists(filepath.Join(s.dir, filepath.FromSlash(urlPath)))
}

func fileExists(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}

// NotFound answers unmatched routes with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}
