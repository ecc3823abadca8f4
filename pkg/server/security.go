package server

import (
	"net/http"
)

func (s *Server) securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Prevent MIME-sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// decisions are only valid for the interval they were asked for
		w.Header().Set("Cache-Control", "no-store")

		next.ServeHTTP(w, r)
	})
}
