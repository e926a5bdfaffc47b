package pdfgen

import (
	"io"
	"strings"
	"unicode"
)

// RenderResume lays out plain resume text as a PDF. The text convention is
// the one the generators produce: the first non-blank line is the candidate
// name, an optional following contact line uses " | " separators, section
// headings are short all-caps lines, and lines starting with "-" or the
// bullet rune are list items. Returns the number of pages rendered.
func RenderResume(content string, w io.Writer) (int, error) {
	p := NewPaginator()

	lines := strings.Split(content, "\n")
	idx := 0

	// Header: name plus optional contact line.
	for idx < len(lines) && strings.TrimSpace(lines[idx]) == "" {
		idx++
	}
	if idx < len(lines) && !isSectionHeading(lines[idx]) {
		name := strings.TrimSpace(lines[idx])
		idx++
		var contact []string
		if idx < len(lines) && looksLikeContactLine(lines[idx]) {
			contact = splitContactLine(lines[idx])
			idx++
		}
		p.WriteHeader(name, contact)
	}

	inSection := false
	for ; idx < len(lines); idx++ {
		line := strings.TrimSpace(lines[idx])
		switch {
		case line == "":
			// Paragraph separator inside a section; section gaps come
			// from the headings themselves.
		case isSectionHeading(line):
			if inSection {
				p.EndSection()
			}
			p.WriteSectionTitle(line)
			inSection = true
		case isBulletLine(line):
			p.WriteBullet(stripBulletPrefix(line))
		default:
			p.WriteParagraph(line)
		}
	}

	pages := p.PageCount()
	return pages, p.Output(w)
}

// isSectionHeading reports whether a line is a short all-caps heading.
func isSectionHeading(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || len(line) > 50 {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") ||
		strings.HasPrefix(line, "• ") ||
		strings.HasPrefix(line, "* ")
}

func stripBulletPrefix(line string) string {
	for _, prefix := range []string{"- ", "• ", "* "} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return line
}

// looksLikeContactLine detects the "email | phone | location" line that
// follows the name in generated resumes.
func looksLikeContactLine(line string) bool {
	return strings.Contains(line, "|") || strings.Contains(line, "@")
}

func splitContactLine(line string) []string {
	parts := strings.Split(line, "|")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
