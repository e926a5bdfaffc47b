package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"jobcraft/internal/types"
)

func TestFormatJSONFallback(t *testing.T) {
	registry := NewFormatterRegistry()

	// Arbitrary types fall back to the generic JSON formatter.
	out, err := registry.Format(map[string]string{"key": "value"}, "json")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	var decoded map[string]string
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["key"] != "value" {
		t.Errorf("unexpected decoded output %v", decoded)
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	registry := NewFormatterRegistry()

	if _, err := registry.Format(types.JobMatchAnalysis{}, "xml"); err == nil {
		t.Error("expected an error for an unregistered format")
	}
}

func TestMatchTextFormatter(t *testing.T) {
	analysis := types.JobMatchAnalysis{
		JobID:            "Backend Engineer",
		MatchScore:       72,
		Strengths:        []string{"go", "sql"},
		Gaps:             []string{"kubernetes"},
		Recommendations:  []string{"Emphasize your matching strengths in the cover letter"},
		PsychologicalFit: "Neutral fit",
		Confidence:       0.9,
	}

	out, err := GlobalRegistry.Format(analysis, "text")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	for _, want := range []string{
		"Match score: 72/100",
		"Confidence: 0.90",
		"Psychological fit: Neutral fit",
		"Strengths:\n- go\n- sql",
		"Gaps:\n- kubernetes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestJobPostingMarkdownFormatter(t *testing.T) {
	analysis := types.JobPostingAnalysis{
		JobPosting: types.JobPosting{
			Title:           "Backend Engineer",
			Company:         "Acme Corp",
			Location:        "Austin, TX",
			Requirements:    []string{"Professional experience required"},
			PreferredSkills: []string{"go"},
		},
		Source: types.AnalysisSourceFallback,
	}

	out, err := GlobalRegistry.Format(analysis, "markdown")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if !strings.HasPrefix(out, "# Backend Engineer\n") {
		t.Errorf("expected title heading, got:\n%s", out)
	}
	for _, want := range []string{
		"**Company:** Acme Corp",
		"**Location:** Austin, TX",
		"## Requirements",
		"- Professional experience required",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestProfileTextFormatterSkipsEmptySections(t *testing.T) {
	data := types.ParsedProfileData{
		PersonalInfo: types.PersonalInfo{Name: "John Smith", Email: "john@example.com"},
		Skills:       types.SkillSet{Technical: []string{"Go"}},
	}

	out, err := GlobalRegistry.Format(data, "text")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if !strings.Contains(out, "Name: John Smith") {
		t.Error("expected name in output")
	}
	if !strings.Contains(out, "=== TECHNICAL SKILLS ===\n- Go") {
		t.Error("expected skills section")
	}
	if strings.Contains(out, "=== EXPERIENCE ===") || strings.Contains(out, "=== EDUCATION ===") {
		t.Error("empty sections must be omitted")
	}
}

func TestDocumentFormatters(t *testing.T) {
	doc := types.GeneratedDocument{
		ID:        "doc-1",
		Type:      types.DocumentTypeResume,
		Title:     "Resume - Backend Engineer",
		Content:   "JOHN SMITH\n\nPROFESSIONAL SUMMARY\nEngineer.",
		JobTitle:  "Backend Engineer",
		Company:   "Acme Corp",
		CreatedAt: "2026-08-28T10:00:00Z",
	}

	// Every format in the default supported set must handle a document.
	for _, format := range []string{"json", "text", "markdown"} {
		t.Run(format, func(t *testing.T) {
			out, err := GlobalRegistry.Format(doc, format)
			if err != nil {
				t.Fatalf("Format(%q) failed: %v", format, err)
			}
			if !strings.Contains(out, "PROFESSIONAL SUMMARY") {
				t.Errorf("expected document content in %s output:\n%s", format, out)
			}
		})
	}

	out, err := GlobalRegistry.Format(doc, "text")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	for _, want := range []string{
		"=== RESUME - BACKEND ENGINEER ===",
		"Job title: Backend Engineer",
		"Company: Acme Corp",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected text output to contain %q, got:\n%s", want, out)
		}
	}

	md, err := GlobalRegistry.Format(doc, "markdown")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.HasPrefix(md, "# Resume - Backend Engineer\n") {
		t.Errorf("expected title heading, got:\n%s", md)
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := NewFormatterRegistry().GetSupportedFormats()

	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		seen[f] = true
	}
	for _, want := range []string{"json", "text", "markdown"} {
		if !seen[want] {
			t.Errorf("expected format %q to be registered, got %v", want, formats)
		}
	}
}
