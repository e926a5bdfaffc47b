package jobposting

import (
	"regexp"
	"strings"

	"jobcraft/internal/types"
)

// FallbackLocation is the sentinel used when no location pattern matches.
const FallbackLocation = "Location not specified"

var (
	companyRe  = regexp.MustCompile(`(?:[Aa]t\s+)((?:[A-Z][A-Za-z0-9&.'-]*)(?:\s+[A-Z][A-Za-z0-9&.'-]*)*)`)
	locationRe = regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:\s[A-Z][a-zA-Z]+)*,\s*[A-Z]{2}\b`)
)

// requirementChecks maps trigger substrings to canned requirement sentences.
var requirementChecks = []struct {
	trigger     string
	requirement string
}{
	{"experience", "Professional experience required"},
	{"bachelor", "Bachelor's degree required"},
	{"team", "Team collaboration skills"},
	{"communication", "Strong communication skills"},
}

// techVocabulary is the fixed set of language/framework names recognized by
// the fallback skill scan.
var techVocabulary = []string{
	"javascript", "typescript", "python", "java", "golang", "go",
	"react", "angular", "vue", "node", "c#", "c++", "php", "ruby",
	"sql", "nosql", "postgresql", "mongodb", "redis",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"html", "css", "git", "linux", "rest", "graphql",
}

// softSkillChecks maps trigger keywords to canned skill labels.
var softSkillChecks = []struct {
	trigger string
	skill   string
}{
	{"leadership", "Leadership"},
	{"project management", "Project management"},
	{"customer service", "Customer service"},
	{"cleaning", "Cleaning"},
	{"hosting", "Hosting"},
}

// analyzeFallback converts job-posting text into a structured posting using
// local heuristics only. It is total: absence of a match yields a sentinel
// string or empty list, never an error.
func analyzeFallback(text string) types.JobPosting {
	posting := types.JobPosting{
		Description:     text,
		Requirements:    []string{},
		PreferredSkills: []string{},
		Location:        FallbackLocation,
	}

	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			posting.Title = trimmed
			break
		}
	}

	if m := companyRe.FindStringSubmatch(text); m != nil {
		posting.Company = strings.TrimSpace(m[1])
	}

	lower := strings.ToLower(text)

	for _, check := range requirementChecks {
		if strings.Contains(lower, check.trigger) {
			posting.Requirements = append(posting.Requirements, check.requirement)
		}
	}

	for _, tech := range techVocabulary {
		if containsWord(lower, tech) {
			posting.PreferredSkills = append(posting.PreferredSkills, tech)
		}
	}
	for _, check := range softSkillChecks {
		if strings.Contains(lower, check.trigger) {
			posting.PreferredSkills = append(posting.PreferredSkills, check.skill)
		}
	}

	if m := locationRe.FindString(text); m != "" {
		posting.Location = m
	}

	return posting
}

// containsWord matches a vocabulary term on word boundaries so that "go"
// does not fire inside "good" or "ago". Terms with non-letter characters
// (c#, c++) fall back to a plain substring check.
func containsWord(text, term string) bool {
	if strings.ContainsAny(term, "#+") {
		return strings.Contains(text, term)
	}
	idx := 0
	for {
		pos := strings.Index(text[idx:], term)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(term)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
