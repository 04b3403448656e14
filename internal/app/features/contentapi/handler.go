// Package contentapi provides the JSON interface over the content document.
//
// Endpoints:
//   - GET  /api/content       - Resolved content document (public)
//   - POST /api/content       - Whole-document save (operator session or API key)
//   - POST /api/content/reset - Overwrite with the compiled-in default
//
// Reads never fail from the caller's point of view: a backend problem is
// logged and the compiled-in default is served with a 200. Writes surface a
// structured {error, details} body on failure so the caller can show a
// dismissable message.
package contentapi

import (
	"net/http"

	portfoliostore "github.com/motadesign/folio/internal/app/store/portfolio"
	"github.com/motadesign/folio/internal/app/system/htmlsanitize"
	"github.com/motadesign/folio/internal/app/system/jsonutil"
	"github.com/motadesign/folio/internal/app/system/resolve"
	"github.com/motadesign/folio/internal/domain/models"
	"go.uber.org/zap"
)

// Handler handles content read/save API requests.
type Handler struct {
	contentStore *portfoliostore.Store
	logger       *zap.Logger
}

// NewHandler creates a new contentapi handler.
func NewHandler(contentStore *portfoliostore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		contentStore: contentStore,
		logger:       logger,
	}
}

// GetHandler handles GET /api/content.
// The response is always 200 with a fully resolved document; a load failure
// is masked with the default so public rendering never breaks on a backend
// hiccup. Cache-Control: no-store keeps every read current.
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := h.contentStore.Get(r.Context())
	if err != nil {
		h.logger.Error("content load failed, serving defaults", zap.Error(err))
	}

	jsonutil.NoStore(w)
	jsonutil.OK(w, resolve.WithDefaults(doc))
}

// SaveHandler handles POST /api/content.
// The request body is the whole content document; there is no partial
// update. The last completed save wins.
func (h *Handler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	var doc models.ContentDocument
	if err := jsonutil.Decode(r, &doc); err != nil {
		jsonutil.ErrorWithDetails(w, http.StatusBadRequest, "invalid JSON payload", err.Error())
		return
	}

	sanitizeDocument(&doc)

	if err := h.contentStore.Save(r.Context(), doc); err != nil {
		h.logger.Error("content save failed", zap.Error(err))
		jsonutil.ErrorWithDetails(w, http.StatusInternalServerError, "failed to save content", err.Error())
		return
	}

	h.logger.Info("content document saved",
		zap.Int("skills", len(doc.Skills)),
		zap.Int("projects", len(doc.Projects)))

	jsonutil.OK(w, map[string]bool{"success": true})
}

// ResetHandler handles POST /api/content/reset.
// The persisted document is overwritten with the default, so independent
// readers observe the reset on their next fetch.
func (h *Handler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.contentStore.Reset(r.Context()); err != nil {
		h.logger.Error("content reset failed", zap.Error(err))
		jsonutil.ErrorWithDetails(w, http.StatusInternalServerError, "failed to reset content", err.Error())
		return
	}

	h.logger.Info("content document reset to defaults")

	jsonutil.OK(w, map[string]bool{"success": true})
}

// sanitizeDocument cleans the free-form rich text fields of an incoming
// document in place. Plain fields are left alone.
func sanitizeDocument(doc *models.ContentDocument) {
	doc.Personal.Bio = htmlsanitize.Sanitize(doc.Personal.Bio)
	doc.Footer.Tagline = htmlsanitize.Sanitize(doc.Footer.Tagline)
	for i := range doc.Experiences {
		doc.Experiences[i].Description = htmlsanitize.Sanitize(doc.Experiences[i].Description)
	}
	for i := range doc.Projects {
		doc.Projects[i].Description = htmlsanitize.Sanitize(doc.Projects[i].Description)
	}
}
