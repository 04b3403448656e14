package testutil

import (
	"context"
	"net/http"
)

// csrfTokenKey matches the key used by gorilla/csrf internally.
// This allows us to inject a mock token for testing.
const csrfTokenKey = "gorilla.csrf.Token"

// WithCSRFToken adds a mock CSRF token to the request context.
// This prevents panics or empty tokens when handlers call csrf.Token(r)
// or build a view model that calls csrf.Token internally.
func WithCSRFToken(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), csrfTokenKey, "test-csrf-token-12345")
	return r.WithContext(ctx)
}

// NewOperatorRequestWithCSRF creates an HTTP request with both an operator
// and a CSRF token in context. This is the recommended way to create
// requests for testing handlers that render forms.
func NewOperatorRequestWithCSRF(method, target string) *http.Request {
	return WithCSRFToken(NewOperatorRequest(method, target))
}
