package middleware

import (
	"net/http"

	"github.com/snypenet/rate-my-music/logcolors"

	log "github.com/sirupsen/logrus"
)

// AdminAuthMiddleware guards admin routes with a shared access token.
// Requests must present the token in the Authorization header. If no token
// is configured, admin routes are disabled and every request is rejected.
func AdminAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				log.Warnf("%s Admin access not configured, rejecting %s from %s", logcolors.LogAdmin, r.URL.Path, r.RemoteAddr)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"Admin access is not configured"}`))
				return
			}

			if r.Header.Get("Authorization") != token {
				log.Warnf("%s Invalid admin token from %s for %s", logcolors.LogAdmin, r.RemoteAddr, r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"Invalid admin token"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
