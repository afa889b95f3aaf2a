package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors lets browsers on the given origins drive the game API. With no origins
// every origin is allowed.
func Cors(origins ...string) Middleware {
	options := cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders: []string{"*"},
	}
	return cors.New(options).Handler
}
