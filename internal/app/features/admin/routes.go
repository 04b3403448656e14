package admin

import (
	"net/http"

	"github.com/motadesign/folio/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a chi.Router with the dashboard routes mounted.
//
// When mounted at /admin, everything here requires an operator session;
// /admin/login and /admin/logout are mounted separately by the bootstrap.
func Routes(h *Handler, sessionMgr *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireOperator)

	r.Get("/", h.Dashboard)

	r.Post("/save", h.Save)
	r.Post("/reset", h.Reset)

	r.Post("/personal", h.UpdatePersonal)
	r.Post("/footer", h.UpdateFooter)

	r.Route("/stats", func(sr chi.Router) {
		sr.Post("/add", h.AddStat)
		sr.Post("/update", h.UpdateStat)
		sr.Post("/remove", h.RemoveStat)
	})

	r.Route("/skills", func(sr chi.Router) {
		sr.Post("/add", h.AddSkill)
		sr.Post("/update", h.UpdateSkill)
		sr.Post("/remove", h.RemoveSkill)
	})

	r.Route("/expertise", func(sr chi.Router) {
		sr.Post("/headings", h.UpdateExpertiseHeadings)
		sr.Post("/add", h.AddExpertiseArea)
		sr.Post("/update", h.UpdateExpertiseArea)
		sr.Post("/remove", h.RemoveExpertiseArea)
		sr.Post("/items/add", h.AddExpertiseItem)
		sr.Post("/items/update", h.UpdateExpertiseItem)
		sr.Post("/items/remove", h.RemoveExpertiseItem)
	})

	r.Route("/experiences", func(sr chi.Router) {
		sr.Post("/headings", h.UpdateExperienceHeadings)
		sr.Post("/add", h.AddExperience)
		sr.Post("/update", h.UpdateExperience)
		sr.Post("/remove", h.RemoveExperience)
	})

	r.Route("/projects", func(sr chi.Router) {
		sr.Post("/add", h.AddProject)
		sr.Post("/update", h.UpdateProject)
		sr.Post("/remove", h.RemoveProject)
		sr.Post("/reorder", h.ReorderProject)
		sr.Post("/images/add", h.AddProjectImage)
		sr.Post("/images/remove", h.RemoveProjectImage)
	})

	r.Route("/social", func(sr chi.Router) {
		sr.Post("/add", h.AddSocial)
		sr.Post("/update", h.UpdateSocial)
		sr.Post("/remove", h.RemoveSocial)
	})

	return r
}
