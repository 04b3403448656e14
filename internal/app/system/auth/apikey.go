package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// APIKeyOrOperator returns middleware for the content API endpoints that
// mutate state. A request is allowed through when it carries either an
// authenticated operator session (browser callers) or, when an API key is
// configured, a matching "Authorization: Bearer <api-key>" header (headless
// callers). Anything else gets 401.
func APIKeyOrOperator(validKey string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := CurrentOperator(r); ok {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if validKey != "" && authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] == validKey {
					next.ServeHTTP(w, r)
					return
				}
				logger.Warn("API request rejected: invalid API key",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				http.Error(w, "Invalid API key", http.StatusUnauthorized)
				return
			}

			logger.Debug("API request rejected: no session and no usable Authorization header",
				zap.String("path", r.URL.Path),
			)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		})
	}
}
