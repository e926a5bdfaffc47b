package tailor

import (
	"context"
	"strings"
	"testing"

	"jobcraft/internal/config"
	"jobcraft/internal/types"
)

func newTemplateGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(config.OperationAIConfig{}, config.OperationAIConfig{}, nil)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

func TestGenerateResumeDocument(t *testing.T) {
	g := newTemplateGenerator(t)

	input := sampleInput()
	input.ProfileID = "profile-1"
	input.Job = &types.JobPosting{Title: "Backend Engineer", Company: "Initech"}

	doc, err := g.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if doc.ID == "" {
		t.Error("expected a generated document ID")
	}
	if doc.Type != types.DocumentTypeResume {
		t.Errorf("unexpected type %q", doc.Type)
	}
	if doc.Title != "Resume - Backend Engineer" {
		t.Errorf("unexpected title %q", doc.Title)
	}
	if doc.JobTitle != "Backend Engineer" || doc.Company != "Initech" {
		t.Errorf("expected job facts on the record, got %q / %q", doc.JobTitle, doc.Company)
	}
	if doc.ProfileID != "profile-1" {
		t.Errorf("unexpected profile ID %q", doc.ProfileID)
	}
	if doc.CreatedAt == "" {
		t.Error("expected a creation timestamp")
	}
	if !strings.Contains(doc.Content, "PROFESSIONAL EXPERIENCE") {
		t.Error("expected templated resume content")
	}
}

func TestGenerateLetterUsesProvidedBody(t *testing.T) {
	g := newTemplateGenerator(t)

	input := sampleInput()
	input.Type = types.DocumentTypeCoverLetter
	input.Body = "Dear hiring manager, I already wrote this letter."

	doc, err := g.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if doc.Content != input.Body {
		t.Errorf("expected the provided body passed through, got %q", doc.Content)
	}
	if doc.Title != "Cover Letter" {
		t.Errorf("unexpected title %q", doc.Title)
	}
}

func TestGenerateValidation(t *testing.T) {
	g := newTemplateGenerator(t)
	ctx := context.Background()

	if _, err := g.Generate(ctx, nil); err == nil {
		t.Error("expected an error for nil input")
	}

	if _, err := g.Generate(ctx, &types.GenerateDocumentInput{Type: types.DocumentTypeResume}); err == nil {
		t.Error("expected an error when no candidate facts are available")
	}

	input := sampleInput()
	input.Type = "presentation"
	if _, err := g.Generate(ctx, input); err == nil {
		t.Error("expected an error for an unsupported document type")
	}
}
