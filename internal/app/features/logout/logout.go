// internal/app/features/logout/logout.go
package logout

import (
	"net/http"

	draftstore "github.com/motadesign/folio/internal/app/store/drafts"
	"github.com/motadesign/folio/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler provides logout handlers.
type Handler struct {
	sessionMgr *auth.SessionManager
	draftStore *draftstore.Store
	logger     *zap.Logger
}

// NewHandler creates a new logout Handler.
func NewHandler(
	sessionMgr *auth.SessionManager,
	draftStore *draftstore.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		sessionMgr: sessionMgr,
		draftStore: draftStore,
		logger:     logger,
	}
}

// Routes returns a chi.Router with logout routes mounted.
func Routes(h *Handler, sessionMgr *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireOperator)
	r.Post("/", h.handleLogout)
	r.Get("/", h.handleLogout) // Allow GET for simple logout links
	return r
}

// handleLogout terminates the session. The published document is untouched;
// only the session and its working draft go away. Unsaved draft edits are
// discarded, which is the documented consequence of logging out mid-edit.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if op, ok := auth.CurrentOperator(r); ok {
		if token := op.SessionToken(); token != "" {
			if err := h.draftStore.Delete(r.Context(), token); err != nil {
				h.logger.Warn("failed to delete draft on logout", zap.Error(err))
			}
		}
	}

	h.sessionMgr.DestroySession(w, r)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
