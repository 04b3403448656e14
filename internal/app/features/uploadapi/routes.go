package uploadapi

import (
	"net/http"

	"github.com/motadesign/folio/internal/app/system/apicors"
	"github.com/motadesign/folio/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes returns a router with the upload API endpoint.
//
// When mounted at /api/upload:
//   - POST /api/upload - Upload an image (operator session or Bearer API key)
func Routes(h *Handler, apiKey string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())
	r.Use(auth.APIKeyOrOperator(apiKey, logger))

	r.Post("/", h.UploadHandler)

	return r
}
