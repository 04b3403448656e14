package portfoliostore

import (
	"reflect"
	"testing"

	"github.com/motadesign/folio/internal/domain/models"
	"github.com/motadesign/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_Get_NeverSaved(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	doc, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	want := models.DefaultContent()
	if doc.Personal.Name != want.Personal.Name {
		t.Errorf("name: got %q, want the default %q", doc.Personal.Name, want.Personal.Name)
	}
	if len(doc.Skills) != len(want.Skills) {
		t.Errorf("skills: got %d, want %d defaults", len(doc.Skills), len(want.Skills))
	}
}

func TestStore_SaveAndGet_RoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	doc := models.DefaultContent()
	doc.Personal.Name = "Nome Editado"
	doc.Skills = append(doc.Skills, models.Skill{Name: "Nova Skill", Level: 50, Icon: "⭐", ShowLevel: true})
	doc.ExpertiseTitle = "Título Customizado"

	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got.Personal.Name != "Nome Editado" {
		t.Errorf("name: got %q", got.Personal.Name)
	}
	if len(got.Skills) != len(doc.Skills) {
		t.Errorf("skills: got %d, want %d", len(got.Skills), len(doc.Skills))
	}
	if got.Skills[len(got.Skills)-1].Name != "Nova Skill" {
		t.Errorf("last skill: got %q", got.Skills[len(got.Skills)-1].Name)
	}
	if got.ExpertiseTitle != "Título Customizado" {
		t.Errorf("expertise title: got %q", got.ExpertiseTitle)
	}
	if got.UpdatedAt == nil {
		t.Error("expected updated_at to be set on save")
	}
}

func TestStore_Save_KeepsSingleDocument(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	doc := models.DefaultContent()
	for i := 0; i < 3; i++ {
		doc.Personal.Title = "Versão"
		if err := s.Save(ctx, doc); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	count, err := db.Collection(CollectionName).CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("document count: got %d, want 1", count)
	}
}

func TestStore_Save_LastWriteWins(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := models.DefaultContent()
	first.Personal.Name = "Primeiro"
	first.Stats = []models.Stat{{ID: 1, Label: "A", Value: "1"}}
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("Save first: %v", err)
	}

	second := models.DefaultContent()
	second.Personal.Name = "Segundo"
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	got, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Personal.Name != "Segundo" {
		t.Errorf("name: got %q, want the later save whole", got.Personal.Name)
	}
	if reflect.DeepEqual(got.Stats, first.Stats) {
		t.Error("stats: expected the earlier save to be fully replaced")
	}
}

func TestStore_Reset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	doc := models.DefaultContent()
	doc.Personal.Name = "Editado"
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	got, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := models.DefaultContent()
	if got.Personal.Name != want.Personal.Name {
		t.Errorf("name after reset: got %q, want %q", got.Personal.Name, want.Personal.Name)
	}
}

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	exists, err := s.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Error("expected no document before first save")
	}

	if err := s.Save(ctx, models.DefaultContent()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	exists, err = s.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Error("expected document after save")
	}
}
