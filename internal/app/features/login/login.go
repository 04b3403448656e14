// internal/app/features/login/login.go
package login

import (
	"fmt"
	"net/http"
	"time"

	errorsfeature "github.com/motadesign/folio/internal/app/features/errors"
	"github.com/motadesign/folio/internal/app/store/ratelimit"
	"github.com/motadesign/folio/internal/app/system/auth"
	"github.com/motadesign/folio/internal/app/system/authutil"
	"github.com/motadesign/folio/internal/app/system/network"
	"github.com/motadesign/folio/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler provides the operator login surface. There is one password and one
// operator; a successful check is the only place in the application that
// produces a session token.
type Handler struct {
	passwordHash   string
	sessionMgr     *auth.SessionManager
	rateLimitStore *ratelimit.Store // nil if rate limiting disabled
	errLog         *errorsfeature.ErrorLogger
	logger         *zap.Logger
}

// NewHandler creates a new login Handler.
// rateLimitStore can be nil to disable rate limiting.
func NewHandler(
	passwordHash string,
	sessionMgr *auth.SessionManager,
	rateLimitStore *ratelimit.Store,
	errLog *errorsfeature.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		passwordHash:   passwordHash,
		sessionMgr:     sessionMgr,
		rateLimitStore: rateLimitStore,
		errLog:         errLog,
		logger:         logger,
	}
}

// LoginVM is the view model for the login page.
type LoginVM struct {
	viewdata.BaseVM
	Error string
}

// Routes returns a chi.Router with login routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.showLogin)
	r.Post("/", h.handleLogin)

	return r
}

// showLogin displays the password form. An already authenticated operator is
// sent straight to the dashboard.
func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentOperator(r); ok {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	vm := LoginVM{
		BaseVM: viewdata.New(r),
	}
	vm.Title = "Entrar"

	templates.Render(w, r, "login/index", vm)
}

// handleLogin checks the password and creates the operator session.
// A wrong password gets the same generic message regardless of how it was
// wrong; no detail about the configured credential leaks out.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	password := r.FormValue("password")
	clientIP := network.GetClientIP(r)

	// Check rate limit before touching bcrypt
	if h.rateLimitStore != nil {
		allowed, _, lockedUntil := h.rateLimitStore.CheckAllowed(r.Context(), clientIP)
		if !allowed {
			h.logger.Warn("login rate limited",
				zap.String("client_ip", clientIP))
			h.renderError(w, r, lockoutMessage(lockedUntil))
			return
		}
	}

	if password == "" {
		vm := LoginVM{
			BaseVM: viewdata.New(r),
			Error:  "Digite a senha",
		}
		vm.Title = "Entrar"
		templates.Render(w, r, "login/index", vm)
		return
	}

	if h.passwordHash == "" || !authutil.CheckPassword(password, h.passwordHash) {
		if h.rateLimitStore != nil {
			lockedOut, lockedUntil := h.rateLimitStore.RecordFailure(r.Context(), clientIP)
			if lockedOut {
				h.logger.Warn("login locked out",
					zap.String("client_ip", clientIP))
				h.renderError(w, r, lockoutMessage(lockedUntil))
				return
			}
		}
		h.logger.Info("login failed",
			zap.String("client_ip", clientIP))

		h.renderError(w, r, "Senha incorreta")
		return
	}

	// Clear rate limit on successful login
	if h.rateLimitStore != nil {
		h.rateLimitStore.ClearOnSuccess(r.Context(), clientIP)
	}

	token, err := h.sessionMgr.CreateSession(w, r)
	if err != nil {
		h.errLog.Log(r, "failed to create session", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("operator logged in",
		zap.String("client_ip", clientIP),
		zap.Int("token_len", len(token)))

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, msg string) {
	vm := LoginVM{
		BaseVM: viewdata.New(r),
		Error:  msg,
	}
	vm.Title = "Entrar"
	templates.Render(w, r, "login/index", vm)
}

func lockoutMessage(lockedUntil *time.Time) string {
	if lockedUntil == nil {
		return "Muitas tentativas de login. Tente novamente mais tarde."
	}
	remaining := time.Until(*lockedUntil)
	if remaining > time.Minute {
		return fmt.Sprintf("Muitas tentativas de login. Tente novamente em %d minuto(s).", int(remaining.Minutes())+1)
	}
	return fmt.Sprintf("Muitas tentativas de login. Tente novamente em %d segundo(s).", int(remaining.Seconds())+1)
}
