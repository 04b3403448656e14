package contentapi

import (
	"net/http"

	"github.com/motadesign/folio/internal/app/system/apicors"
	"github.com/motadesign/folio/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes returns a router with the content API endpoints.
//
// When mounted at /api/content:
//   - GET  /api/content       - Resolved document (public, no auth)
//   - POST /api/content       - Save (operator session or Bearer API key)
//   - POST /api/content/reset - Reset to defaults (same auth)
//
// CORS is permissive: the read path is public and the write path carries its
// own authentication.
func Routes(h *Handler, apiKey string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())

	r.Get("/", h.GetHandler)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.APIKeyOrOperator(apiKey, logger))
		pr.Post("/", h.SaveHandler)
		pr.Post("/reset", h.ResetHandler)
	})

	return r
}
