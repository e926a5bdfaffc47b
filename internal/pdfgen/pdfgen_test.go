package pdfgen

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

const shortResume = `John Smith
john.smith@example.com | +1 555 123 4567 | Austin, TX

PROFESSIONAL SUMMARY
Backend developer with a focus on distributed systems.

TECHNICAL SKILLS
- Go
- PostgreSQL
`

func TestRenderResumeSinglePage(t *testing.T) {
	var buf bytes.Buffer
	pages, err := RenderResume(shortResume, &buf)
	if err != nil {
		t.Fatalf("RenderResume failed: %v", err)
	}
	if pages != 1 {
		t.Errorf("expected 1 page, got %d", pages)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestRenderResumeBreaksLongContent(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("John Smith\n\nPROFESSIONAL EXPERIENCE\n")
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&sb, "Delivered project number %d on schedule.\n", i)
	}

	var buf bytes.Buffer
	pages, err := RenderResume(sb.String(), &buf)
	if err != nil {
		t.Fatalf("RenderResume failed: %v", err)
	}
	if pages < 2 {
		t.Errorf("expected content to flow onto multiple pages, got %d", pages)
	}
}

func TestRenderResumeEmptyContent(t *testing.T) {
	var buf bytes.Buffer
	pages, err := RenderResume("", &buf)
	if err != nil {
		t.Fatalf("RenderResume failed: %v", err)
	}
	if pages != 1 {
		t.Errorf("expected a single blank page, got %d", pages)
	}
}

func TestRenderCoverLetter(t *testing.T) {
	letter := Letter{
		Name:     "John Smith",
		Contact:  []string{"john.smith@example.com", "+1 555 123 4567"},
		Company:  "Acme Corp",
		Location: "Austin, TX",
		JobTitle: "Backend Engineer",
		Date:     "August 28, 2026",
		Body:     "I am excited to apply for this position.\n\nMy experience with Go makes me a strong fit.",
	}

	var buf bytes.Buffer
	pages, err := RenderCoverLetter(letter, &buf)
	if err != nil {
		t.Fatalf("RenderCoverLetter failed: %v", err)
	}
	if pages != 1 {
		t.Errorf("expected 1 page, got %d", pages)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestRenderCoverLetterLocationTakesALine(t *testing.T) {
	// 21 one-line paragraphs land the last line exactly on the break
	// threshold when no employer location is rendered. The location line
	// shifts everything down by one line height, so rendering it must push
	// the final paragraph onto a second page.
	var paragraphs []string
	for i := 0; i < 21; i++ {
		paragraphs = append(paragraphs, fmt.Sprintf("Paragraph number %d.", i))
	}
	letter := Letter{
		Name:     "John Smith",
		Contact:  []string{"john.smith@example.com"},
		Company:  "Acme Corp",
		JobTitle: "Backend Engineer",
		Date:     "August 28, 2026",
		Body:     strings.Join(paragraphs, "\n\n"),
	}

	var buf bytes.Buffer
	pages, err := RenderCoverLetter(letter, &buf)
	if err != nil {
		t.Fatalf("RenderCoverLetter failed: %v", err)
	}
	if pages != 1 {
		t.Fatalf("expected the letter without a location to fit one page, got %d", pages)
	}

	letter.Location = "Austin, TX"
	buf.Reset()
	pages, err = RenderCoverLetter(letter, &buf)
	if err != nil {
		t.Fatalf("RenderCoverLetter failed: %v", err)
	}
	if pages != 2 {
		t.Errorf("expected the location line to push the letter onto a second page, got %d pages", pages)
	}
}

func TestWrapKeepsWordsIntact(t *testing.T) {
	p := NewPaginator()

	lines := p.wrap("one two three", contentWidth)
	if len(lines) != 1 || lines[0] != "one two three" {
		t.Errorf("short text should stay on one line, got %v", lines)
	}

	long := strings.Repeat("word ", 80)
	wrapped := p.wrap(long, contentWidth)
	if len(wrapped) < 2 {
		t.Errorf("expected long text to wrap, got %d lines", len(wrapped))
	}
	for _, line := range wrapped {
		for _, w := range strings.Fields(line) {
			if w != "word" {
				t.Errorf("wrapping altered a word: %q", w)
			}
		}
	}

	if lines := p.wrap("", contentWidth); len(lines) != 1 || lines[0] != "" {
		t.Errorf("empty text should yield one empty line, got %v", lines)
	}
}
