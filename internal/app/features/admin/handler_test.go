package admin

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	errorsfeature "github.com/motadesign/folio/internal/app/features/errors"
	draftstore "github.com/motadesign/folio/internal/app/store/drafts"
	portfoliostore "github.com/motadesign/folio/internal/app/store/portfolio"
	"github.com/motadesign/folio/internal/domain/models"
	"github.com/motadesign/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type testEnv struct {
	handler      *Handler
	contentStore *portfoliostore.Store
	draftStore   *draftstore.Store
	db           *mongo.Database
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)

	logger := zap.NewNop()
	contentStore := portfoliostore.New(db)
	drafts := draftstore.New(db)

	return &testEnv{
		handler:      NewHandler(contentStore, drafts, errorsfeature.NewErrorLogger(logger), logger),
		contentStore: contentStore,
		draftStore:   drafts,
		db:           db,
	}
}

// postForm invokes fn with an operator form request and returns the recorder.
func postForm(t *testing.T, fn http.HandlerFunc, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithOperator(req)
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

// draft reads the operator's working copy straight from the draft store.
func (e *testEnv) draft(t *testing.T) models.ContentDocument {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	doc, found, err := e.draftStore.Get(ctx, testutil.TestSessionToken)
	if err != nil {
		t.Fatalf("draft read failed: %v", err)
	}
	if !found {
		t.Fatal("expected a draft to exist")
	}
	return doc
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)

	t.Run("renders personal tab by default", func(t *testing.T) {
		req := testutil.NewOperatorRequest(http.MethodGet, "/admin")
		rec := httptest.NewRecorder()

		env.handler.Dashboard(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200. Body: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "Felipe Mota") {
			t.Error("expected draft content on dashboard")
		}
	})

	t.Run("unknown tab falls back to personal", func(t *testing.T) {
		req := testutil.NewOperatorRequest(http.MethodGet, "/admin?tab=nonsense")
		rec := httptest.NewRecorder()

		env.handler.Dashboard(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("without operator redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		rec := httptest.NewRecorder()

		env.handler.Dashboard(rec, req)

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("status = %d, want 303", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/admin/login" {
			t.Errorf("Location = %q, want /admin/login", loc)
		}
	})

	t.Run("saved status shows flash", func(t *testing.T) {
		req := testutil.NewOperatorRequest(http.MethodGet, "/admin?status=saved")
		rec := httptest.NewRecorder()

		env.handler.Dashboard(rec, req)

		if !strings.Contains(rec.Body.String(), "Alterações salvas") {
			t.Error("expected saved flash message")
		}
	})
}

func TestMutationsEditDraftNotPublished(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := postForm(t, env.handler.AddSkill, "/admin/skills/add", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303. Body: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/admin?tab=skills" {
		t.Errorf("Location = %q, want /admin?tab=skills", loc)
	}

	defaultSkills := len(models.DefaultContent().Skills)
	if got := len(env.draft(t).Skills); got != defaultSkills+1 {
		t.Errorf("draft skills = %d, want %d", got, defaultSkills+1)
	}

	exists, err := env.contentStore.Exists(ctx)
	if err != nil {
		t.Fatalf("exists check failed: %v", err)
	}
	if exists {
		t.Error("mutation must not touch the published document")
	}
}

func TestUpdatePersonal(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{
		"name":     {"Novo Nome"},
		"title":    {"Novo Título"},
		"subtitle": {"Subtítulo"},
		"email":    {"novo@example.com"},
		"location": {"Portugal"},
		"whatsapp": {"+351 900 000 000"},
		"bio":      {`<p>bio</p><script>alert(1)</script>`},
		"photo":    {"/files/portfolio/123-foto.png"},
	}
	rec := postForm(t, env.handler.UpdatePersonal, "/admin/personal", form)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d. Body: %s", rec.Code, rec.Body.String())
	}

	got := env.draft(t).Personal
	if got.Name != "Novo Nome" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Email != "novo@example.com" {
		t.Errorf("email = %q", got.Email)
	}
	if strings.Contains(got.Bio, "<script") {
		t.Errorf("bio not sanitized: %q", got.Bio)
	}
}

func TestSkillLifecycle(t *testing.T) {
	env := newTestEnv(t)
	defaultSkills := len(models.DefaultContent().Skills)

	postForm(t, env.handler.AddSkill, "/admin/skills/add", url.Values{})

	t.Run("update clamps level", func(t *testing.T) {
		form := url.Values{
			"index":      {"0"},
			"name":       {"Cinema 4D"},
			"level":      {"250"},
			"icon":       {"🎥"},
			"show_level": {"on"},
		}
		postForm(t, env.handler.UpdateSkill, "/admin/skills/update", form)

		skill := env.draft(t).Skills[0]
		if skill.Name != "Cinema 4D" {
			t.Errorf("name = %q", skill.Name)
		}
		if skill.Level != 100 {
			t.Errorf("level = %d, want clamped to 100", skill.Level)
		}
	})

	t.Run("remove out of range is a no-op", func(t *testing.T) {
		postForm(t, env.handler.RemoveSkill, "/admin/skills/remove", url.Values{"index": {"99"}})
		if got := len(env.draft(t).Skills); got != defaultSkills+1 {
			t.Errorf("skills = %d, want %d", got, defaultSkills+1)
		}
	})

	t.Run("remove drops the entry", func(t *testing.T) {
		postForm(t, env.handler.RemoveSkill, "/admin/skills/remove", url.Values{"index": {"0"}})
		draft := env.draft(t)
		if got := len(draft.Skills); got != defaultSkills {
			t.Errorf("skills = %d, want %d", got, defaultSkills)
		}
		for _, s := range draft.Skills {
			if s.Name == "Cinema 4D" {
				t.Error("removed skill still present")
			}
		}
	})
}

func TestExpertiseItems(t *testing.T) {
	env := newTestEnv(t)

	postForm(t, env.handler.AddExpertiseItem, "/admin/expertise/items/add",
		url.Values{"area_index": {"0"}, "item": {"Novo bullet"}})

	items := env.draft(t).ExpertiseAreas[0].Items
	if items[len(items)-1] != "Novo bullet" {
		t.Errorf("last item = %q, want Novo bullet", items[len(items)-1])
	}

	postForm(t, env.handler.UpdateExpertiseItem, "/admin/expertise/items/update",
		url.Values{"area_index": {"0"}, "item_index": {"0"}, "item": {"Editado"}})
	if got := env.draft(t).ExpertiseAreas[0].Items[0]; got != "Editado" {
		t.Errorf("item = %q, want Editado", got)
	}

	before := len(env.draft(t).ExpertiseAreas[0].Items)
	postForm(t, env.handler.RemoveExpertiseItem, "/admin/expertise/items/remove",
		url.Values{"area_index": {"0"}, "item_index": {"0"}})
	if got := len(env.draft(t).ExpertiseAreas[0].Items); got != before-1 {
		t.Errorf("items = %d, want %d", got, before-1)
	}
}

func TestReorderProject(t *testing.T) {
	env := newTestEnv(t)

	postForm(t, env.handler.ReorderProject, "/admin/projects/reorder",
		url.Values{"from": {"1"}, "to": {"0"}})

	projects := env.draft(t).Projects
	if projects[0].ID != 2 || projects[1].ID != 1 {
		t.Errorf("order after move = [%d %d], want [2 1]", projects[0].ID, projects[1].ID)
	}
	for i, p := range projects {
		if p.Order != i {
			t.Errorf("project %d has order %d, want %d", p.ID, p.Order, i)
		}
	}
}

func TestProjectGallery(t *testing.T) {
	env := newTestEnv(t)

	t.Run("add appends to the gallery", func(t *testing.T) {
		rec := postForm(t, env.handler.AddProjectImage, "/admin/projects/images/add",
			url.Values{"index": {"0"}, "image": {"/files/portfolio/123-tela.png"}})
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("status = %d. Body: %s", rec.Code, rec.Body.String())
		}
		if loc := rec.Header().Get("Location"); loc != "/admin?tab=projects" {
			t.Errorf("Location = %q, want /admin?tab=projects", loc)
		}

		images := env.draft(t).Projects[0].Images
		if len(images) == 0 || images[len(images)-1] != "/files/portfolio/123-tela.png" {
			t.Errorf("gallery = %v, want new image last", images)
		}
	})

	t.Run("empty url is a no-op", func(t *testing.T) {
		before := len(env.draft(t).Projects[0].Images)
		postForm(t, env.handler.AddProjectImage, "/admin/projects/images/add",
			url.Values{"index": {"0"}, "image": {"   "}})
		if got := len(env.draft(t).Projects[0].Images); got != before {
			t.Errorf("gallery length = %d, want %d", got, before)
		}
	})

	t.Run("remove drops the image", func(t *testing.T) {
		before := env.draft(t).Projects[0].Images
		last := len(before) - 1
		postForm(t, env.handler.RemoveProjectImage, "/admin/projects/images/remove",
			url.Values{"index": {"0"}, "image_index": {strconv.Itoa(last)}})
		after := env.draft(t).Projects[0].Images
		if len(after) != len(before)-1 {
			t.Fatalf("gallery length = %d, want %d", len(after), len(before)-1)
		}
		for _, img := range after {
			if img == "/files/portfolio/123-tela.png" {
				t.Error("removed image still present")
			}
		}
	})

	t.Run("remove out of range is a no-op", func(t *testing.T) {
		before := len(env.draft(t).Projects[0].Images)
		postForm(t, env.handler.RemoveProjectImage, "/admin/projects/images/remove",
			url.Values{"index": {"0"}, "image_index": {"99"}})
		if got := len(env.draft(t).Projects[0].Images); got != before {
			t.Errorf("gallery length = %d, want %d", got, before)
		}
	})

	t.Run("sibling projects untouched", func(t *testing.T) {
		sibling := env.draft(t).Projects[1].Images
		postForm(t, env.handler.AddProjectImage, "/admin/projects/images/add",
			url.Values{"index": {"0"}, "image": {"/files/portfolio/outra.png"}})
		after := env.draft(t).Projects[1].Images
		if len(after) != len(sibling) {
			t.Errorf("sibling gallery changed: %v", after)
		}
	})
}

func TestDraftNormalizesPublishedOrder(t *testing.T) {
	env := newTestEnv(t)

	testutil.SeedContent(t, env.db, func(doc *models.ContentDocument) {
		doc.Projects = []models.Project{
			{ID: 1, Title: "terceiro", Order: 9},
			{ID: 2, Title: "primeiro", Order: 0},
			{ID: 3, Title: "segundo", Order: 4},
		}
	})

	// The first dashboard visit materializes the draft from the published
	// document.
	req := testutil.NewOperatorRequest(http.MethodGet, "/admin?tab=projects")
	rec := httptest.NewRecorder()
	env.handler.Dashboard(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d. Body: %s", rec.Code, rec.Body.String())
	}

	projects := env.draft(t).Projects
	wantIDs := []int{2, 3, 1}
	for i, want := range wantIDs {
		if projects[i].ID != want {
			t.Fatalf("storage position %d holds ID %d, want %d", i, projects[i].ID, want)
		}
		if projects[i].Order != i {
			t.Errorf("project %d has order %d, want %d", projects[i].ID, projects[i].Order, i)
		}
	}

	// Storage and display now agree, so a positional move form shifts its
	// project exactly one display step.
	postForm(t, env.handler.ReorderProject, "/admin/projects/reorder",
		url.Values{"from": {"1"}, "to": {"0"}})

	projects = env.draft(t).Projects
	if projects[0].ID != 3 || projects[1].ID != 2 || projects[2].ID != 1 {
		t.Errorf("order after move = [%d %d %d], want [3 2 1]",
			projects[0].ID, projects[1].ID, projects[2].ID)
	}
}

func TestSavePublishesDraft(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	postForm(t, env.handler.UpdatePersonal, "/admin/personal",
		url.Values{"name": {"Publicado"}})

	rec := postForm(t, env.handler.Save, "/admin/save", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d. Body: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/admin?status=saved" {
		t.Errorf("Location = %q, want /admin?status=saved", loc)
	}

	published, err := env.contentStore.Get(ctx)
	if err != nil {
		t.Fatalf("published read failed: %v", err)
	}
	if published.Personal.Name != "Publicado" {
		t.Errorf("published name = %q, want Publicado", published.Personal.Name)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	postForm(t, env.handler.UpdatePersonal, "/admin/personal",
		url.Values{"name": {"Alterado"}})
	postForm(t, env.handler.Save, "/admin/save", url.Values{})

	rec := postForm(t, env.handler.Reset, "/admin/reset", url.Values{})
	if loc := rec.Header().Get("Location"); loc != "/admin?status=reset" {
		t.Errorf("Location = %q, want /admin?status=reset", loc)
	}

	published, err := env.contentStore.Get(ctx)
	if err != nil {
		t.Fatalf("published read failed: %v", err)
	}
	if published.Personal.Name != models.DefaultContent().Personal.Name {
		t.Errorf("published name = %q, want default", published.Personal.Name)
	}
	if got := env.draft(t).Personal.Name; got != models.DefaultContent().Personal.Name {
		t.Errorf("draft name = %q, want default", got)
	}
}

func TestSplitTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"a, b, c", []string{"a", "b", "c"}},
		{" spaced ,, empty,", []string{"spaced", "empty"}},
		{",,,", []string{}},
	}
	for _, tc := range cases {
		got := splitTags(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("splitTags(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("splitTags(%q)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

func TestProjectRows(t *testing.T) {
	projects := []models.Project{
		{ID: 1, Title: "stored-first", Order: 1, Tags: []string{"a", "b"}},
		{ID: 2, Title: "stored-second", Order: 0},
	}

	rows := projectRows(projects)

	if rows[0].ID != 2 || rows[1].ID != 1 {
		t.Fatalf("display order = [%d %d], want [2 1]", rows[0].ID, rows[1].ID)
	}
	if rows[0].Index != 1 || rows[1].Index != 0 {
		t.Errorf("storage indexes = [%d %d], want [1 0]", rows[0].Index, rows[1].Index)
	}
	if rows[0].HasPrev {
		t.Error("first display row must not have a prev")
	}
	if !rows[0].HasNext || rows[0].Next != 0 {
		t.Errorf("first row next = (%v, %d), want (true, 0)", rows[0].HasNext, rows[0].Next)
	}
	if !rows[1].HasPrev || rows[1].Prev != 1 {
		t.Errorf("second row prev = (%v, %d), want (true, 1)", rows[1].HasPrev, rows[1].Prev)
	}
	if rows[1].TagsJoined != "a, b" {
		t.Errorf("tags joined = %q", rows[1].TagsJoined)
	}
}
