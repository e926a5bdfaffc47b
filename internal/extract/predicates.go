package extract

import (
	"slices"
	"strings"
	"unicode"
)

// Keyword sets that mark the start of a section. A line "belongs" to a
// category when it contains one of these words, case-insensitively.
var sectionKeywords = map[string][]string{
	"experience":     {"professional experience", "work history", "experience", "employment"},
	"education":      {"education", "academic background", "qualifications"},
	"skills":         {"technical skills", "skills", "technologies", "competencies"},
	"languages":      {"languages"},
	"achievements":   {"achievements", "awards", "honors"},
	"summary":        {"summary", "profile", "objective", "about"},
	"projects":       {"projects"},
	"certifications": {"certifications", "certificates", "licenses"},
}

// headerWords is the flattened set of all known section keywords, used to
// decide where a section body ends.
var headerWords = func() []string {
	var words []string
	for _, kws := range sectionKeywords {
		words = append(words, kws...)
	}
	return words
}()

var jobTitleKeywords = []string{
	"developer", "engineer", "manager", "analyst",
	"consultant", "director", "coordinator",
}

// looksLikeName reports whether a line is plausibly a person's name:
// 2-4 whitespace-separated tokens, each composed only of letters, hyphens,
// or apostrophes.
func looksLikeName(line string) bool {
	tokens := strings.Fields(strings.TrimSpace(line))
	if len(tokens) < 2 || len(tokens) > 4 {
		return false
	}
	for _, tok := range tokens {
		for _, r := range tok {
			if !unicode.IsLetter(r) && r != '-' && r != '\'' {
				return false
			}
		}
	}
	return true
}

// looksLikeSectionHeader reports whether a line plausibly starts a new
// section: shorter than 50 characters and containing a known section header
// word outside the exclude set. The current section's own keywords go in
// exclude so a body line mentioning them does not end the section early.
func looksLikeSectionHeader(line string, exclude []string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= 50 {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, word := range headerWords {
		if slices.Contains(exclude, word) {
			continue
		}
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// looksLikeJobTitle reports whether a line plausibly names a position:
// it contains a job-role keyword or the literal " at " separator.
func looksLikeJobTitle(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range jobTitleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return strings.Contains(line, " at ")
}

// isBulletLine reports whether a line starts with a bullet marker.
func isBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "•") ||
		strings.HasPrefix(trimmed, "-") ||
		strings.HasPrefix(trimmed, "*")
}

// stripBullet removes a leading bullet marker and surrounding whitespace.
func stripBullet(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"•", "-", "*"} {
		if rest, ok := strings.CutPrefix(trimmed, prefix); ok {
			return strings.TrimSpace(rest)
		}
	}
	return trimmed
}
