package site

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	portfoliostore "github.com/motadesign/folio/internal/app/store/portfolio"
	"github.com/motadesign/folio/internal/domain/models"
	"github.com/motadesign/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *mongo.Database) {
	t.Helper()
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	return NewHandler(portfoliostore.New(db), zap.NewNop()), db
}

func get(t *testing.T, fn http.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func TestIndex_RendersShellFromDefaults(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := get(t, h.Index, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200. Body: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, models.DefaultContent().Personal.Name) {
		t.Error("expected default name in page shell")
	}
	if !strings.Contains(body, "<!DOCTYPE html") && !strings.Contains(body, "<!doctype html") {
		t.Error("expected full HTML document")
	}
}

func TestSectionPartials_RenderDefaults(t *testing.T) {
	h, _ := newTestHandler(t)
	defaults := models.DefaultContent()

	cases := []struct {
		name string
		fn   http.HandlerFunc
		want string
	}{
		{"hero", h.Hero, defaults.Personal.Name},
		{"about", h.About, defaults.Stats[0].Label},
		{"skills", h.Skills, defaults.Skills[0].Name},
		{"expertise", h.Expertise, models.DefaultExpertiseTitle},
		{"experience", h.Experience, defaults.Experiences[0].Company},
		{"projects", h.Projects, defaults.Projects[0].Title},
		{"contact", h.Contact, defaults.Personal.Email},
		{"footer", h.Footer, defaults.Footer.CopyrightText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, tc.fn, "/sections/"+tc.name)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200. Body: %s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tc.want) {
				t.Errorf("body missing %q", tc.want)
			}
		})
	}
}

func TestSections_ReflectSavedContent(t *testing.T) {
	h, db := newTestHandler(t)

	testutil.SeedContent(t, db, func(doc *models.ContentDocument) {
		doc.Personal.Name = "Nome Personalizado"
		doc.ExpertiseTitle = "Título Customizado"
	})

	rec := get(t, h.Hero, "/sections/hero")
	if !strings.Contains(rec.Body.String(), "Nome Personalizado") {
		t.Error("hero does not reflect saved name")
	}

	rec = get(t, h.Expertise, "/sections/expertise")
	if !strings.Contains(rec.Body.String(), "Título Customizado") {
		t.Error("expertise heading override not applied")
	}
}

func TestSortedProjects(t *testing.T) {
	in := []models.Project{
		{ID: 1, Title: "c", Order: 2},
		{ID: 2, Title: "a", Order: 0},
		{ID: 3, Title: "b1", Order: 1},
		{ID: 4, Title: "b2", Order: 1},
	}

	got := SortedProjects(in)

	wantTitles := []string{"a", "b1", "b2", "c"}
	for i, want := range wantTitles {
		if got[i].Title != want {
			t.Errorf("position %d = %q, want %q", i, got[i].Title, want)
		}
	}

	if in[0].Title != "c" {
		t.Error("input slice was reordered")
	}
}
