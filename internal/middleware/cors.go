package middleware

import (
	"net/http"

	"mumanager-backend/internal/config"

	"github.com/rs/cors"
)

// NewCORS builds the CORS wrapper from the server config. Origins, methods,
// headers and the preflight cache age all come from configuration.
func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CorsAllowedOrigins,
		AllowedMethods:   cfg.Server.CorsAllowedMethods,
		AllowedHeaders:   cfg.Server.CorsAllowedHeaders,
		AllowCredentials: true,
		MaxAge:           cfg.Server.CorsMaxAge,
	})

	return c.Handler
}
