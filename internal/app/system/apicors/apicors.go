// Package apicors provides CORS middleware for the content API endpoints.
//
// The public content read is served to any origin: the portfolio document is
// public data and carries no credentials, so Access-Control-Allow-Origin can
// be "*". Mutating endpoints authenticate via session cookie or Bearer API
// key, and the permissive policy stays safe because cookies are never shared
// cross-origin under it (AllowCredentials is never set).
package apicors

import (
	"net/http"
)

// Middleware returns permissive CORS middleware for the API routes.
//
//   - Allows any origin (Access-Control-Allow-Origin: *)
//   - Does not allow credentials
//   - Allows the API methods and headers, and handles preflight OPTIONS
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept")
			w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
