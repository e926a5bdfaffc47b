package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	apperrors "jobcraft/internal/errors"
	"jobcraft/internal/types"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "jobcraft.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a not-found error")
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrCodeNotFound {
		t.Errorf("expected code %s, got %v", apperrors.ErrCodeNotFound, err)
	}
}

func TestProfileLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateProfile(ctx, "John Smith")
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	if created.ID == "" || created.CreatedAt == "" {
		t.Errorf("incomplete profile record: %+v", created)
	}

	loaded, err := s.GetProfile(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if loaded.Name != "John Smith" {
		t.Errorf("unexpected name %q", loaded.Name)
	}

	profiles, err := s.ListProfiles(ctx)
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	if len(profiles) != 1 || profiles[0].ID != created.ID {
		t.Errorf("unexpected profile list %+v", profiles)
	}

	_, err = s.GetProfile(ctx, "missing")
	assertNotFound(t, err)
}

func TestSaveResponsesUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	profile, err := s.CreateProfile(ctx, "Jane Doe")
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}

	initial := []types.QuestionnaireResponse{
		{Category: "skills", Question: "Primary language?", Answer: "Go", Weight: 1.0},
		{Category: "summary", Question: "About you", Answer: "Engineer", Weight: 0.5},
	}
	if err := s.SaveResponses(ctx, profile.ID, initial); err != nil {
		t.Fatalf("SaveResponses failed: %v", err)
	}

	// Re-answering the same question replaces the earlier answer.
	update := []types.QuestionnaireResponse{
		{Category: "skills", Question: "Primary language?", Answer: "Rust", Weight: 2.0},
	}
	if err := s.SaveResponses(ctx, profile.ID, update); err != nil {
		t.Fatalf("SaveResponses update failed: %v", err)
	}

	responses, err := s.GetResponses(ctx, profile.ID)
	if err != nil {
		t.Fatalf("GetResponses failed: %v", err)
	}
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses after upsert, got %d", len(responses))
	}
	for _, r := range responses {
		if r.Question == "Primary language?" {
			if r.Answer != "Rust" || r.Weight != 2.0 {
				t.Errorf("expected updated answer, got %+v", r)
			}
		}
	}

	err = s.SaveResponses(ctx, "missing", initial)
	assertNotFound(t, err)
}

func TestDocumentLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	docs := []types.GeneratedDocument{
		{ID: "doc-1", Type: types.DocumentTypeResume, Title: "Resume", Content: "body",
			ProfileID: "p1", CreatedAt: "2026-08-01T10:00:00Z"},
		{ID: "doc-2", Type: types.DocumentTypeCoverLetter, Title: "Cover Letter", Content: "body",
			JobTitle: "Backend Engineer", Company: "Acme", ProfileID: "p2", CreatedAt: "2026-08-02T10:00:00Z"},
	}
	for i := range docs {
		if err := s.SaveDocument(ctx, &docs[i]); err != nil {
			t.Fatalf("SaveDocument failed: %v", err)
		}
	}

	doc, err := s.GetDocument(ctx, "doc-2")
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if doc.JobTitle != "Backend Engineer" || doc.Company != "Acme" {
		t.Errorf("unexpected document %+v", doc)
	}

	all, err := s.ListDocuments(ctx, "")
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(all) != 2 || all[0].ID != "doc-2" {
		t.Errorf("expected newest-first list of 2, got %+v", all)
	}

	filtered, err := s.ListDocuments(ctx, "p1")
	if err != nil {
		t.Fatalf("ListDocuments filtered failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != "doc-1" {
		t.Errorf("expected only p1 documents, got %+v", filtered)
	}

	_, err = s.GetDocument(ctx, "missing")
	assertNotFound(t, err)

	if err := s.DeleteDocument(ctx, "doc-1"); err != nil {
		t.Fatalf("DeleteDocument failed: %v", err)
	}
	_, err = s.GetDocument(ctx, "doc-1")
	assertNotFound(t, err)
	assertNotFound(t, s.DeleteDocument(ctx, "doc-1"))
}

func TestDeleteProfileRemovesResponses(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	profile, err := s.CreateProfile(ctx, "Jane Doe")
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	responses := []types.QuestionnaireResponse{
		{Category: "skills", Question: "Primary language?", Answer: "Go", Weight: 1.0},
	}
	if err := s.SaveResponses(ctx, profile.ID, responses); err != nil {
		t.Fatalf("SaveResponses failed: %v", err)
	}

	if err := s.DeleteProfile(ctx, profile.ID); err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}

	_, err = s.GetProfile(ctx, profile.ID)
	assertNotFound(t, err)

	orphaned, err := s.GetResponses(ctx, profile.ID)
	if err != nil {
		t.Fatalf("GetResponses failed: %v", err)
	}
	if len(orphaned) != 0 {
		t.Errorf("expected responses to be deleted with the profile, got %+v", orphaned)
	}

	assertNotFound(t, s.DeleteProfile(ctx, profile.ID))
}
