// Package site renders the public portfolio page.
//
// The page is a shell of sections, each loaded by its own request. Every
// section handler performs its own fetch and resolve against the compiled-in
// defaults; there is no shared cache between sections. A section that hits a
// backend error renders from defaults, so a database outage degrades the
// page content without ever breaking it.
package site

import (
	"html/template"
	"net/http"
	"sort"

	portfoliostore "github.com/motadesign/folio/internal/app/store/portfolio"
	"github.com/motadesign/folio/internal/app/system/htmlsanitize"
	"github.com/motadesign/folio/internal/app/system/resolve"
	"github.com/motadesign/folio/internal/app/system/viewdata"
	"github.com/motadesign/folio/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler provides the public page handlers.
type Handler struct {
	contentStore *portfoliostore.Store
	logger       *zap.Logger
}

// NewHandler creates a new site Handler.
func NewHandler(contentStore *portfoliostore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		contentStore: contentStore,
		logger:       logger,
	}
}

// load fetches and resolves the content document for one section render.
func (h *Handler) load(r *http.Request) models.ContentDocument {
	doc, err := h.contentStore.Get(r.Context())
	if err != nil {
		h.logger.Warn("content load failed, rendering defaults",
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	return resolve.WithDefaults(doc)
}

// IndexVM is the view model for the page shell.
type IndexVM struct {
	viewdata.BaseVM
	Name string
}

// Index renders the page shell. The sections inside it each load through
// their own endpoint.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	doc := h.load(r)

	vm := IndexVM{
		BaseVM: viewdata.New(r),
		Name:   doc.Personal.Name,
	}
	vm.Title = doc.Personal.Name + " | " + doc.Personal.Title

	templates.Render(w, r, "site/index", vm)
}

// HeroVM is the view model for the hero section.
type HeroVM struct {
	viewdata.BaseVM
	Personal models.Personal
}

// Hero renders the hero section partial.
func (h *Handler) Hero(w http.ResponseWriter, r *http.Request) {
	doc := h.load(r)
	templates.Render(w, r, "site/hero", HeroVM{BaseVM: viewdata.New(r), Personal: doc.Personal})
}

// AboutVM is the view model for the about section.
type AboutVM struct {
	viewdata.BaseVM
	Personal models.Personal
	Bio      template.HTML
	Stats    []models.Stat
}

// About renders the about section partial with the stat counters.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	doc := h.load(r)
	templates.Render(w, r, "site/about", AboutVM{
		BaseVM:   viewdata.New(r),
		Personal: doc.Personal,
		Bio:      htmlsanitize.PrepareForDisplay(doc.Personal.Bio),
		Stats:    doc.Stats,
	})
}

// SkillsVM is the view model for the skills section.
type SkillsVM struct {
	viewdata.BaseVM
	Skills []models.Skill
}

// Skills renders the skills section partial.
func (h *Handler) Skills(w http.ResponseWriter, r *http.Request) {
	doc := h.load(r)
	templates.Render(w, r, "site/skills", SkillsVM{BaseVM: viewdata.New(r), Skills: doc.Skills})
}

// ExpertiseVM is the view model for the expertise section.
type ExpertiseVM struct {
	viewdata.BaseVM
	Heading  string
	Subtitle string
	Areas    []models.ExpertiseArea
}

// Expertise renders the expertise section partial. Heading overrides from
// the document win over the defaults.
func (h *Handler) Expertise(w http.ResponseWriter, r *http.Request) {
	doc := h.load(r)

	heading := doc.ExpertiseTitle
	if heading == "" {
		heading = models.DefaultExpertiseTitle
	}
	subtitle := doc.ExpertiseSubtitle
	if subtitle == "" {
		subtitle = models.DefaultExpertiseSubtitle
	}

	templates.Render(w, r, "site/expertise", ExpertiseVM{
		BaseVM:   viewdata.New(r),
		Heading:  heading,
		Subtitle: subtitle,
		Areas:    doc.ExpertiseAreas,
	})
}

// ExperienceVM is the view model for the experience section.
type ExperienceVM struct {
	viewdata.BaseVM
	Heading     string
	Subtitle    string
	Experiences []models.Experience
}

// Experience renders the experience timeline partial.
func (h *Handler) Experience(w http.ResponseWriter, r *http.Request) {
	doc := h.load(r)

	heading := doc.ExperienceTitle
	if heading == "" {
		heading = models.DefaultExperienceTitle
	}
	subtitle := doc.ExperienceSubtitle
	if subtitle == "" {
		subtitle = models.DefaultExperienceSubtitle
	}

	templates.Render(w, r, "site/experience", ExperienceVM{
		BaseVM:      viewdata.New(r),
		Heading:     heading,
		Subtitle:    subtitle,
		Experiences: doc.Experiences,
	})
}

// ProjectsVM is the view model for the projects section.
type ProjectsVM struct {
	viewdata.BaseVM
	Projects []models.Project
}

// Projects renders the project grid partial. Display order follows the
// order field; ties keep storage position (stable sort).
func (h *Handler) Projects(w http.ResponseWriter, r *http.Request) {
	doc := h.load(r)
	templates.Render(w, r, "site/projects", ProjectsVM{
		BaseVM:   viewdata.New(r),
		Projects: SortedProjects(doc.Projects),
	})
}

// ContactVM is the view model for the contact section.
type ContactVM struct {
	viewdata.BaseVM
	Personal models.Personal
	Social   []models.SocialLink
}

// Contact renders the contact section partial.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	doc := h.load(r)
	templates.Render(w, r, "site/contact", ContactVM{
		BaseVM:   viewdata.New(r),
		Personal: doc.Personal,
		Social:   doc.Social,
	})
}

// FooterVM is the view model for the footer section.
type FooterVM struct {
	viewdata.BaseVM
	Footer  models.Footer
	Tagline template.HTML
	Social  []models.SocialLink
}

// Footer renders the footer partial.
func (h *Handler) Footer(w http.ResponseWriter, r *http.Request) {
	doc := h.load(r)
	templates.Render(w, r, "site/site_footer", FooterVM{
		BaseVM:  viewdata.New(r),
		Footer:  doc.Footer,
		Tagline: htmlsanitize.PrepareForDisplay(doc.Footer.Tagline),
		Social:  doc.Social,
	})
}

// SortedProjects returns projects ordered for display: ascending order
// field, storage position breaking ties. The input is not modified.
func SortedProjects(projects []models.Project) []models.Project {
	out := make([]models.Project, len(projects))
	copy(out, projects)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}
