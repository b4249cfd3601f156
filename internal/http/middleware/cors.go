package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"football-matches-service/internal/http/requestutil"
)

// CORS lets browser clients on other origins call the wrapped read-only API.
// An empty origin list allows any origin.
func CORS(origins []string, next http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
	})
	return c.Handler(next)
}
