package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/motadesign/folio/internal/app/system/auth"
)

// TestSessionToken is the session token used for the injected operator.
const TestSessionToken = "test-session-token"

// WithOperator adds a logged-in operator to the request context for testing
// authenticated handlers. This bypasses the session middleware and injects
// the operator directly.
func WithOperator(r *http.Request) *http.Request {
	return auth.WithTestOperator(r, &auth.Operator{Token: TestSessionToken})
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewOperatorRequest creates an HTTP request with an operator in context.
func NewOperatorRequest(method, target string) *http.Request {
	return WithOperator(httptest.NewRequest(method, target, nil))
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	body := r.Body.String()
	if !strings.Contains(body, expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}
