package http

import (
	"log/slog"
	nethttp "net/http"

	"football-matches-service/internal/http/handlers"
	"football-matches-service/internal/http/middleware"
	"football-matches-service/internal/view"
)

// RouterConfig selects the production surface and the CORS policy for /api.
type RouterConfig struct {
	Production     bool
	StaticDir      string
	AllowedOrigins []string
}

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, cfg RouterConfig, logger *slog.Logger) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.Handle("/api/matches", middleware.CORS(cfg.AllowedOrigins, nethttp.HandlerFunc(handler.Matches)))
	mux.Handle("/assets/", nethttp.StripPrefix("/assets/", nethttp.FileServer(nethttp.FS(view.Assets()))))

	if cfg.Production {
		mux.Handle("/", handlers.NewSPA(cfg.StaticDir, nethttp.HandlerFunc(handler.Page), logger))
		return mux
	}
	mux.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != "/" {
			handler.NotFound(w, r)
			return
		}
		handler.Page(w, r)
	})
	return mux
}
