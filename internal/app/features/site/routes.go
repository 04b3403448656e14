package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a chi.Router with the public page routes mounted.
//
// When mounted at /:
//   - GET /                    - Page shell
//   - GET /sections/hero       - Hero partial
//   - GET /sections/about      - About + stats partial
//   - GET /sections/skills     - Skills partial
//   - GET /sections/expertise  - Expertise areas partial
//   - GET /sections/experience - Experience timeline partial
//   - GET /sections/projects   - Project grid partial
//   - GET /sections/contact    - Contact partial
//   - GET /sections/footer     - Footer partial
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Index)

	r.Route("/sections", func(sr chi.Router) {
		sr.Get("/hero", h.Hero)
		sr.Get("/about", h.About)
		sr.Get("/skills", h.Skills)
		sr.Get("/expertise", h.Expertise)
		sr.Get("/experience", h.Experience)
		sr.Get("/projects", h.Projects)
		sr.Get("/contact", h.Contact)
		sr.Get("/footer", h.Footer)
	})

	return r
}
