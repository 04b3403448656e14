package draftstore

import (
	"testing"

	"github.com/motadesign/folio/internal/domain/models"
	"github.com/motadesign/folio/internal/testutil"
)

func TestStore_GetMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, found, err := s.Get(ctx, "no-such-session")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("expected found=false for a session with no draft")
	}
}

func TestStore_PutAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	doc := models.DefaultContent()
	doc.Personal.Name = "Rascunho"

	if err := s.Put(ctx, "session-a", doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, found, err := s.Get(ctx, "session-a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected draft to be found")
	}
	if got.Personal.Name != "Rascunho" {
		t.Errorf("name: got %q", got.Personal.Name)
	}
}

func TestStore_PutReplacesDraft(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	doc := models.DefaultContent()
	doc.Personal.Name = "Primeira versão"
	if err := s.Put(ctx, "session-b", doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	doc.Personal.Name = "Segunda versão"
	if err := s.Put(ctx, "session-b", doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, found, err := s.Get(ctx, "session-b")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected draft to be found")
	}
	if got.Personal.Name != "Segunda versão" {
		t.Errorf("name: got %q, want the replacing draft", got.Personal.Name)
	}
}

func TestStore_DraftsAreIsolatedBySession(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	docA := models.DefaultContent()
	docA.Personal.Name = "Sessão A"
	docB := models.DefaultContent()
	docB.Personal.Name = "Sessão B"

	if err := s.Put(ctx, "session-a", docA); err != nil {
		t.Fatalf("Put A: %v", err)
	}
	if err := s.Put(ctx, "session-b", docB); err != nil {
		t.Fatalf("Put B: %v", err)
	}

	gotA, _, err := s.Get(ctx, "session-a")
	if err != nil {
		t.Fatalf("Get A: %v", err)
	}
	gotB, _, err := s.Get(ctx, "session-b")
	if err != nil {
		t.Fatalf("Get B: %v", err)
	}

	if gotA.Personal.Name != "Sessão A" || gotB.Personal.Name != "Sessão B" {
		t.Errorf("drafts leaked across sessions: A=%q B=%q", gotA.Personal.Name, gotB.Personal.Name)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := s.Put(ctx, "session-c", models.DefaultContent()); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := s.Delete(ctx, "session-c"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, found, err := s.Get(ctx, "session-c")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("expected draft to be gone after delete")
	}

	// Deleting a missing draft is not an error.
	if err := s.Delete(ctx, "session-c"); err != nil {
		t.Errorf("Delete missing: %v", err)
	}
}
