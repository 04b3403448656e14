// Package admin provides the content editing dashboard.
//
// The dashboard edits a working copy, never the published document. The
// working copy is a per-session draft: loaded on first visit by resolving
// the published document against the defaults, mutated by the editor
// operation endpoints, and only copied to the published document on an
// explicit save. Closing the browser or logging out discards unsaved edits.
//
// All editor operations go through the collection package, so a stale index
// from an outdated form is a silent no-op rather than a corrupted list.
package admin

import (
	"context"
	"net/http"
	"sort"
	"strings"

	errorsfeature "github.com/motadesign/folio/internal/app/features/errors"
	draftstore "github.com/motadesign/folio/internal/app/store/drafts"
	portfoliostore "github.com/motadesign/folio/internal/app/store/portfolio"
	"github.com/motadesign/folio/internal/app/system/auth"
	"github.com/motadesign/folio/internal/app/system/collection"
	"github.com/motadesign/folio/internal/app/system/formutil"
	"github.com/motadesign/folio/internal/app/system/htmlsanitize"
	"github.com/motadesign/folio/internal/app/system/resolve"
	"github.com/motadesign/folio/internal/app/system/viewdata"
	"github.com/motadesign/folio/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Tab names, in display order.
var tabs = []string{"personal", "stats", "skills", "expertise", "experiences", "projects", "social", "footer"}

// Handler provides the dashboard handlers.
type Handler struct {
	contentStore *portfoliostore.Store
	draftStore   *draftstore.Store
	errLog       *errorsfeature.ErrorLogger
	logger       *zap.Logger
}

// NewHandler creates a new admin Handler.
func NewHandler(
	contentStore *portfoliostore.Store,
	draftStore *draftstore.Store,
	errLog *errorsfeature.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		contentStore: contentStore,
		draftStore:   draftStore,
		errLog:       errLog,
		logger:       logger,
	}
}

// DashboardVM is the view model for the dashboard page.
type DashboardVM struct {
	viewdata.BaseVM
	Tab      string
	Tabs     []string
	Document models.ContentDocument
	Projects []ProjectRow // display-sorted rows for the projects tab
}

// ProjectRow wraps one project with the positional context the template
// needs for its move-up/move-down forms.
type ProjectRow struct {
	models.Project
	Index      int
	TagsJoined string
	HasPrev    bool
	HasNext    bool
	Prev       int
	Next       int
}

// loadDraft returns the operator's working copy, creating it from the
// published document on first access.
func (h *Handler) loadDraft(ctx context.Context, token string) (models.ContentDocument, error) {
	doc, found, err := h.draftStore.Get(ctx, token)
	if err != nil {
		return models.ContentDocument{}, err
	}
	if found {
		return doc, nil
	}

	remote, err := h.contentStore.Get(ctx)
	if err != nil {
		// Editing proceeds on defaults; the error is logged and the draft
		// still works, mirroring the read path's degradation.
		h.logger.Warn("content load failed, draft starts from defaults", zap.Error(err))
	}
	doc = resolve.WithDefaults(remote)

	// An externally saved document can carry order values that diverge from
	// storage positions. Normalizing here keeps the positional move forms
	// exact: one click, one display step.
	doc = collection.NormalizeProjects(doc)

	if err := h.draftStore.Put(ctx, token, doc); err != nil {
		return models.ContentDocument{}, err
	}
	return doc, nil
}

// mutate applies fn to the operator's draft and stores the result.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, fn func(models.ContentDocument) models.ContentDocument) (models.ContentDocument, bool) {
	op, ok := auth.CurrentOperator(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return models.ContentDocument{}, false
	}

	doc, err := h.loadDraft(r.Context(), op.SessionToken())
	if err != nil {
		h.errLog.Log(r, "failed to load draft", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return models.ContentDocument{}, false
	}

	doc = fn(doc)

	if err := h.draftStore.Put(r.Context(), op.SessionToken(), doc); err != nil {
		h.errLog.Log(r, "failed to store draft", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return models.ContentDocument{}, false
	}
	return doc, true
}

// redirectTab sends the browser back to the dashboard tab it came from.
func redirectTab(w http.ResponseWriter, r *http.Request, tab string) {
	http.Redirect(w, r, "/admin?tab="+tab, http.StatusSeeOther)
}

// Dashboard renders the editing dashboard for the requested tab.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	op, ok := auth.CurrentOperator(r)
	if !ok {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	doc, err := h.loadDraft(r.Context(), op.SessionToken())
	if err != nil {
		h.errLog.Log(r, "failed to load draft", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	tab := r.URL.Query().Get("tab")
	if !validTab(tab) {
		tab = "personal"
	}

	vm := DashboardVM{
		BaseVM:   viewdata.New(r),
		Tab:      tab,
		Tabs:     tabs,
		Document: doc,
		Projects: projectRows(doc.Projects),
	}
	vm.Title = "Painel Admin"

	switch r.URL.Query().Get("status") {
	case "saved":
		vm.Flash = "Alterações salvas"
	case "reset":
		vm.Flash = "Conteúdo restaurado para o padrão"
	case "save_failed":
		vm.FlashError = "Não foi possível salvar. Tente novamente."
	case "reset_failed":
		vm.FlashError = "Não foi possível restaurar. Tente novamente."
	}

	templates.Render(w, r, "admin/dashboard", vm)
}

func validTab(tab string) bool {
	for _, t := range tabs {
		if t == tab {
			return true
		}
	}
	return false
}

/* ------------------------------ save / reset ------------------------------ */

// Save copies the working draft to the published document. Whole-document
// replace; the last completed save wins.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	op, _ := auth.CurrentOperator(r)

	doc, err := h.loadDraft(r.Context(), op.SessionToken())
	if err != nil {
		h.errLog.Log(r, "failed to load draft for save", err)
		http.Redirect(w, r, "/admin?status=save_failed", http.StatusSeeOther)
		return
	}

	if err := h.contentStore.Save(r.Context(), doc); err != nil {
		h.errLog.Log(r, "failed to save content", err)
		http.Redirect(w, r, "/admin?status=save_failed", http.StatusSeeOther)
		return
	}

	h.logger.Info("content published from draft")
	http.Redirect(w, r, "/admin?status=saved", http.StatusSeeOther)
}

// Reset overwrites both the draft and the published document with the
// compiled-in default. Independent readers observe the reset on their next
// fetch.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	op, _ := auth.CurrentOperator(r)

	if err := h.contentStore.Reset(r.Context()); err != nil {
		h.errLog.Log(r, "failed to reset content", err)
		http.Redirect(w, r, "/admin?status=reset_failed", http.StatusSeeOther)
		return
	}

	if err := h.draftStore.Put(r.Context(), op.SessionToken(), models.DefaultContent()); err != nil {
		h.errLog.Log(r, "failed to reset draft", err)
	}

	h.logger.Info("content reset to defaults")
	http.Redirect(w, r, "/admin?status=reset", http.StatusSeeOther)
}

/* ------------------------------ record tabs ------------------------------- */

// UpdatePersonal replaces the personal record from the form.
func (h *Handler) UpdatePersonal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		doc.Personal = models.Personal{
			Name:     r.FormValue("name"),
			Title:    r.FormValue("title"),
			Subtitle: r.FormValue("subtitle"),
			Email:    r.FormValue("email"),
			Location: r.FormValue("location"),
			WhatsApp: r.FormValue("whatsapp"),
			Bio:      htmlsanitize.Sanitize(r.FormValue("bio")),
			Photo:    r.FormValue("photo"),
		}
		return doc
	}); !ok {
		return
	}
	redirectTab(w, r, "personal")
}

// UpdateFooter replaces the footer record from the form.
func (h *Handler) UpdateFooter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		doc.Footer = models.Footer{
			CopyrightText: r.FormValue("copyright_text"),
			TaglineIcon:   r.FormValue("tagline_icon"),
			Tagline:       htmlsanitize.Sanitize(r.FormValue("tagline")),
		}
		return doc
	}); !ok {
		return
	}
	redirectTab(w, r, "footer")
}

/* -------------------------------- stats tab ------------------------------- */

func (h *Handler) AddStat(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		stat := models.Stat{
			ID:    collection.NextID(doc.Stats, func(s models.Stat) int { return s.ID }),
			Label: "Novo marcador",
			Value: "0",
			Icon:  "star",
		}
		return collection.Append(doc, collection.Stats, stat)
	}); !ok {
		return
	}
	redirectTab(w, r, "stats")
}

func (h *Handler) UpdateStat(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.UpdateAt(doc, collection.Stats, index, func(s models.Stat) models.Stat {
			s.Label = r.FormValue("label")
			s.Value = r.FormValue("value")
			s.Icon = r.FormValue("icon")
			return s
		})
	}); !ok {
		return
	}
	redirectTab(w, r, "stats")
}

func (h *Handler) RemoveStat(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.RemoveAt(doc, collection.Stats, index)
	}); !ok {
		return
	}
	redirectTab(w, r, "stats")
}

/* ------------------------------- skills tab ------------------------------- */

func (h *Handler) AddSkill(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		skill := models.Skill{
			Name:      "Nova Skill",
			Level:     50,
			Icon:      "⭐",
			ShowLevel: true,
		}
		return collection.Append(doc, collection.Skills, skill)
	}); !ok {
		return
	}
	redirectTab(w, r, "skills")
}

func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")
	level := formutil.IntDefault(r, "level", 0)
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.UpdateAt(doc, collection.Skills, index, func(s models.Skill) models.Skill {
			s.Name = r.FormValue("name")
			s.Level = level
			s.Icon = r.FormValue("icon")
			s.ShowLevel = formutil.Bool(r, "show_level")
			s.Description = r.FormValue("description")
			return s
		})
	}); !ok {
		return
	}
	redirectTab(w, r, "skills")
}

func (h *Handler) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.RemoveAt(doc, collection.Skills, index)
	}); !ok {
		return
	}
	redirectTab(w, r, "skills")
}

/* ----------------------------- expertise tab ------------------------------ */

// UpdateExpertiseHeadings stores the section heading overrides. Clearing a
// field falls back to the default heading on render.
func (h *Handler) UpdateExpertiseHeadings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		doc.ExpertiseTitle = r.FormValue("expertise_title")
		doc.ExpertiseSubtitle = r.FormValue("expertise_subtitle")
		return doc
	}); !ok {
		return
	}
	redirectTab(w, r, "expertise")
}

func (h *Handler) AddExpertiseArea(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		area := models.ExpertiseArea{
			ID:    collection.NextID(doc.ExpertiseAreas, func(a models.ExpertiseArea) int { return a.ID }),
			Title: "Nova área",
			Items: []string{},
		}
		return collection.Append(doc, collection.ExpertiseAreas, area)
	}); !ok {
		return
	}
	redirectTab(w, r, "expertise")
}

func (h *Handler) UpdateExpertiseArea(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.UpdateAt(doc, collection.ExpertiseAreas, index, func(a models.ExpertiseArea) models.ExpertiseArea {
			a.Title = r.FormValue("title")
			return a
		})
	}); !ok {
		return
	}
	redirectTab(w, r, "expertise")
}

func (h *Handler) RemoveExpertiseArea(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.RemoveAt(doc, collection.ExpertiseAreas, index)
	}); !ok {
		return
	}
	redirectTab(w, r, "expertise")
}

func (h *Handler) AddExpertiseItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	areaIndex := formutil.Int(r, "area_index")
	item := r.FormValue("item")
	if item == "" {
		item = "Novo item"
	}

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.AppendExpertiseItem(doc, areaIndex, item)
	}); !ok {
		return
	}
	redirectTab(w, r, "expertise")
}

func (h *Handler) UpdateExpertiseItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	areaIndex := formutil.Int(r, "area_index")
	itemIndex := formutil.Int(r, "item_index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.UpdateExpertiseItem(doc, areaIndex, itemIndex, r.FormValue("item"))
	}); !ok {
		return
	}
	redirectTab(w, r, "expertise")
}

func (h *Handler) RemoveExpertiseItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	areaIndex := formutil.Int(r, "area_index")
	itemIndex := formutil.Int(r, "item_index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.RemoveExpertiseItem(doc, areaIndex, itemIndex)
	}); !ok {
		return
	}
	redirectTab(w, r, "expertise")
}

/* ---------------------------- experiences tab ----------------------------- */

// UpdateExperienceHeadings stores the section heading overrides.
func (h *Handler) UpdateExperienceHeadings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		doc.ExperienceTitle = r.FormValue("experience_title")
		doc.ExperienceSubtitle = r.FormValue("experience_subtitle")
		return doc
	}); !ok {
		return
	}
	redirectTab(w, r, "experiences")
}

func (h *Handler) AddExperience(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		exp := models.Experience{
			ID:      collection.NextID(doc.Experiences, func(e models.Experience) int { return e.ID }),
			Role:    "Novo cargo",
			Company: "Empresa",
			Period:  "2026",
		}
		return collection.Append(doc, collection.Experiences, exp)
	}); !ok {
		return
	}
	redirectTab(w, r, "experiences")
}

func (h *Handler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.UpdateAt(doc, collection.Experiences, index, func(e models.Experience) models.Experience {
			e.Role = r.FormValue("role")
			e.Company = r.FormValue("company")
			e.Period = r.FormValue("period")
			e.Description = htmlsanitize.Sanitize(r.FormValue("description"))
			return e
		})
	}); !ok {
		return
	}
	redirectTab(w, r, "experiences")
}

func (h *Handler) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.RemoveAt(doc, collection.Experiences, index)
	}); !ok {
		return
	}
	redirectTab(w, r, "experiences")
}

/* ------------------------------ projects tab ------------------------------ */

func (h *Handler) AddProject(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		project := models.Project{
			ID:       collection.NextID(doc.Projects, func(p models.Project) int { return p.ID }),
			Title:    "Novo projeto",
			Category: "Key Visual",
			Tags:     []string{},
			Images:   []string{},
			Order:    len(doc.Projects),
		}
		return collection.Append(doc, collection.Projects, project)
	}); !ok {
		return
	}
	redirectTab(w, r, "projects")
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.UpdateAt(doc, collection.Projects, index, func(p models.Project) models.Project {
			p.Title = r.FormValue("title")
			p.Category = r.FormValue("category")
			p.Description = htmlsanitize.Sanitize(r.FormValue("description"))
			p.Tags = splitTags(r.FormValue("tags"))
			// The image field carries the hosted URL returned by the upload
			// endpoint; the editor never writes raw file data here.
			p.Image = r.FormValue("image")
			return p
		})
	}); !ok {
		return
	}
	redirectTab(w, r, "projects")
}

func (h *Handler) RemoveProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.RemoveAt(doc, collection.Projects, index)
	}); !ok {
		return
	}
	redirectTab(w, r, "projects")
}

// AddProjectImage appends a hosted URL to a project's gallery. Like the
// project cover, the form carries the URL the upload endpoint returned,
// never raw file data.
func (h *Handler) AddProjectImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")
	url := strings.TrimSpace(r.FormValue("image"))
	if url == "" {
		redirectTab(w, r, "projects")
		return
	}

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.AppendProjectImage(doc, index, url)
	}); !ok {
		return
	}
	redirectTab(w, r, "projects")
}

// RemoveProjectImage drops one gallery image from a project.
func (h *Handler) RemoveProjectImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")
	imageIndex := formutil.Int(r, "image_index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.RemoveProjectImage(doc, index, imageIndex)
	}); !ok {
		return
	}
	redirectTab(w, r, "projects")
}

// ReorderProject moves a project from one position to another and rewrites
// the order of every project to its new position.
func (h *Handler) ReorderProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	from := formutil.Int(r, "from")
	to := formutil.Int(r, "to")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.ReorderProjects(doc, from, to)
	}); !ok {
		return
	}
	redirectTab(w, r, "projects")
}

/* ------------------------------- social tab ------------------------------- */

func (h *Handler) AddSocial(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		link := models.SocialLink{
			Name: "Nova rede",
			URL:  "https://",
			Icon: "🔗",
		}
		return collection.Append(doc, collection.Social, link)
	}); !ok {
		return
	}
	redirectTab(w, r, "social")
}

func (h *Handler) UpdateSocial(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.UpdateAt(doc, collection.Social, index, func(s models.SocialLink) models.SocialLink {
			s.Name = r.FormValue("name")
			s.URL = r.FormValue("url")
			s.Icon = r.FormValue("icon")
			return s
		})
	}); !ok {
		return
	}
	redirectTab(w, r, "social")
}

func (h *Handler) RemoveSocial(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	index := formutil.Int(r, "index")

	if _, ok := h.mutate(w, r, func(doc models.ContentDocument) models.ContentDocument {
		return collection.RemoveAt(doc, collection.Social, index)
	}); !ok {
		return
	}
	redirectTab(w, r, "social")
}

/* -------------------------------- helpers --------------------------------- */

func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	if tags == nil {
		return []string{}
	}
	return tags
}

// projectRows returns display-ordered rows for the projects tab: ascending
// order field, storage position breaking ties. Each row carries its storage
// index so the edit forms address the right element regardless of display
// position, plus the storage index of its display neighbors for the
// reorder forms.
func projectRows(projects []models.Project) []ProjectRow {
	order := make([]int, len(projects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return projects[order[i]].Order < projects[order[j]].Order
	})

	rows := make([]ProjectRow, len(order))
	for pos, idx := range order {
		row := ProjectRow{
			Project:    projects[idx],
			Index:      idx,
			TagsJoined: strings.Join(projects[idx].Tags, ", "),
		}
		if pos > 0 {
			row.HasPrev = true
			row.Prev = order[pos-1]
		}
		if pos < len(order)-1 {
			row.HasNext = true
			row.Next = order[pos+1]
		}
		rows[pos] = row
	}
	return rows
}
