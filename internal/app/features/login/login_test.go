package login

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	errorsfeature "github.com/motadesign/folio/internal/app/features/errors"
	"github.com/motadesign/folio/internal/app/store/ratelimit"
	"github.com/motadesign/folio/internal/app/system/auth"
	"github.com/motadesign/folio/internal/app/system/authutil"
	"github.com/motadesign/folio/internal/testutil"
	"go.uber.org/zap"
)

const testPassword = "senha-super-secreta"

func newTestHandler(t *testing.T, rl *ratelimit.Store) *Handler {
	t.Helper()
	testutil.MustBootTemplates(t)

	hash, err := authutil.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	logger := zap.NewNop()
	sessionMgr, err := auth.NewSessionManager(
		"test-session-key-with-enough-length-0123456789", "folio-session", "",
		24*time.Hour, false, logger)
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}

	return NewHandler(hash, sessionMgr, rl, errorsfeature.NewErrorLogger(logger), logger)
}

func postLogin(t *testing.T, h *Handler, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "203.0.113.7:51234"
	rec := httptest.NewRecorder()
	h.handleLogin(rec, req)
	return rec
}

func TestShowLogin(t *testing.T) {
	h := newTestHandler(t, nil)

	t.Run("renders password form", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
		rec := httptest.NewRecorder()

		h.showLogin(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200. Body: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), `name="password"`) {
			t.Error("expected password field in login form")
		}
	})

	t.Run("authenticated operator redirected to dashboard", func(t *testing.T) {
		req := testutil.WithOperator(httptest.NewRequest(http.MethodGet, "/admin/login", nil))
		rec := httptest.NewRecorder()

		h.showLogin(rec, req)

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("status = %d, want 303", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/admin" {
			t.Errorf("Location = %q, want /admin", loc)
		}
	})
}

func TestHandleLogin(t *testing.T) {
	h := newTestHandler(t, nil)

	t.Run("correct password creates session and redirects", func(t *testing.T) {
		rec := postLogin(t, h, testPassword)

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("status = %d, want 303. Body: %s", rec.Code, rec.Body.String())
		}
		if loc := rec.Header().Get("Location"); loc != "/admin" {
			t.Errorf("Location = %q, want /admin", loc)
		}

		var sessionCookie *http.Cookie
		for _, c := range rec.Result().Cookies() {
			if c.Name == "folio-session" {
				sessionCookie = c
			}
		}
		if sessionCookie == nil {
			t.Fatal("expected folio-session cookie to be set")
		}
		if sessionCookie.Value == "" {
			t.Error("session cookie has empty value")
		}
	})

	t.Run("wrong password gets generic message", func(t *testing.T) {
		rec := postLogin(t, h, "senha-errada")

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200. Body: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "Senha incorreta") {
			t.Error("expected generic wrong-password message")
		}
		for _, c := range rec.Result().Cookies() {
			if c.Name == "folio-session" && c.MaxAge >= 0 && c.Value != "" {
				t.Error("failed login must not set a session cookie")
			}
		}
	})

	t.Run("empty password prompts for input", func(t *testing.T) {
		rec := postLogin(t, h, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200. Body: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "Digite a senha") {
			t.Error("expected empty-password message")
		}
	})
}

func TestHandleLogin_RateLimiting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	rl := ratelimit.New(db, 3, 15*time.Minute, 15*time.Minute)
	h := newTestHandler(t, rl)

	for i := 0; i < 3; i++ {
		rec := postLogin(t, h, "senha-errada")
		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d. Body: %s", i+1, rec.Code, rec.Body.String())
		}
	}

	t.Run("locked out after repeated failures", func(t *testing.T) {
		rec := postLogin(t, h, "senha-errada")
		if !strings.Contains(rec.Body.String(), "Muitas tentativas") {
			t.Errorf("expected lockout message, got: %s", rec.Body.String())
		}
	})

	t.Run("correct password rejected while locked", func(t *testing.T) {
		rec := postLogin(t, h, testPassword)
		if rec.Code == http.StatusSeeOther {
			t.Fatal("locked out client must not be able to log in")
		}
		if !strings.Contains(rec.Body.String(), "Muitas tentativas") {
			t.Errorf("expected lockout message, got: %s", rec.Body.String())
		}
	})
}

func TestLockoutMessage(t *testing.T) {
	if msg := lockoutMessage(nil); !strings.Contains(msg, "mais tarde") {
		t.Errorf("nil deadline message = %q", msg)
	}

	in5m := time.Now().Add(5 * time.Minute)
	if msg := lockoutMessage(&in5m); !strings.Contains(msg, "minuto") {
		t.Errorf("minutes message = %q", msg)
	}

	in30s := time.Now().Add(30 * time.Second)
	if msg := lockoutMessage(&in30s); !strings.Contains(msg, "segundo") {
		t.Errorf("seconds message = %q", msg)
	}
}
