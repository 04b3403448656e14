// Package network resolves the originating client address of a request.
//
// The site runs behind a reverse proxy in production, so the forwarded
// headers are consulted before RemoteAddr. The resolved address keys the
// login rate limiter; it is never used for authorization decisions.
package network

import (
	"net"
	"net/http"
	"strings"
)

// GetClientIP returns the client address for a request: the first hop of
// X-Forwarded-For when present, then X-Real-IP, then RemoteAddr with the
// port stripped.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
