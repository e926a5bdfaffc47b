// Package extract pulls structured profile facts out of raw resume text
// using section detection and line-pattern heuristics. Extraction is
// best-effort: a missing section leaves the corresponding fields empty,
// it never produces an error.
package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"jobcraft/internal/errors"
	"jobcraft/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`\+?[0-9][0-9\s()./-]{7,14}[0-9]`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9_-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9_-]+`)
	yearRe     = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	durationRe = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\b\s*(?:[-–—]|to)\s*(?:\b(?:19|20)\d{2}\b|present)`)
	languageRe = regexp.MustCompile(`(?i)^([A-Za-z][A-Za-z ]*?)\s*[-:–]?\s*(native|fluent|advanced|intermediate|basic|conversational)$`)
)

// ParseDocument decodes one uploaded document and extracts a profile from it.
// Binary formats are not decoded here; content that is not valid text yields
// an unsupported-format error naming the file. Heuristic misses inside valid
// text never fail.
func ParseDocument(filename, content string) (types.ParsedProfileData, error) {
	if !utf8.ValidString(content) || strings.ContainsRune(content, '\x00') {
		return types.ParsedProfileData{}, errors.NewIOError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Unsupported file format: %s", filename), nil)
	}
	return Parse(content), nil
}

// Parse extracts a ParsedProfileData from raw resume text. Pure function:
// no retained state between calls.
func Parse(text string) types.ParsedProfileData {
	lines := strings.Split(text, "\n")

	data := types.ParsedProfileData{
		PersonalInfo: extractPersonalInfo(lines),
		Skills: types.SkillSet{
			Technical:      []string{},
			Soft:           []string{},
			Languages:      []types.LanguageSkill{},
			Certifications: []string{},
		},
		Experience:   []types.ExperienceEntry{},
		Education:    []types.EducationEntry{},
		Projects:     []types.ProjectEntry{},
		Achievements: []string{},
	}

	for _, body := range findSections(lines, sectionKeywords["experience"]) {
		data.Experience = append(data.Experience, parseExperience(body)...)
	}
	for _, body := range findSections(lines, sectionKeywords["education"]) {
		data.Education = append(data.Education, parseEducation(body)...)
	}
	for _, body := range findSections(lines, sectionKeywords["skills"]) {
		data.Skills.Technical = mergeSkills(data.Skills.Technical, parseSkills(body))
	}
	for _, body := range findSections(lines, sectionKeywords["languages"]) {
		data.Skills.Languages = append(data.Skills.Languages, parseLanguages(body)...)
	}
	for _, body := range findSections(lines, sectionKeywords["certifications"]) {
		data.Skills.Certifications = mergeSkills(data.Skills.Certifications, parseSkills(body))
	}
	for _, body := range findSections(lines, sectionKeywords["achievements"]) {
		data.Achievements = append(data.Achievements, parseAchievements(body)...)
	}
	for _, body := range findSections(lines, sectionKeywords["projects"]) {
		data.Projects = append(data.Projects, parseProjects(body)...)
	}

	if summaries := findSections(lines, sectionKeywords["summary"]); len(summaries) > 0 {
		data.Summary = strings.TrimSpace(strings.Join(summaries[0], "\n"))
	}

	return data
}

// extractPersonalInfo pulls contact details out of the whole document and
// guesses the name from the first five non-blank lines.
func extractPersonalInfo(lines []string) types.PersonalInfo {
	text := strings.Join(lines, "\n")

	info := types.PersonalInfo{
		Email:    emailRe.FindString(text),
		LinkedIn: linkedinRe.FindString(text),
		GitHub:   githubRe.FindString(text),
	}
	info.Phone = findPhone(text)

	seen := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		seen++
		if looksLikeName(trimmed) {
			info.Name = trimmed
			break
		}
		if seen >= 5 {
			break
		}
	}

	return info
}

// findPhone returns the first phone-shaped run with at least nine digits.
// The digit floor keeps year ranges like "2019 - 2022" from matching.
func findPhone(text string) string {
	for _, candidate := range phoneRe.FindAllString(text, -1) {
		digits := 0
		for _, r := range candidate {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 9 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// findSections collects the bodies of every section whose header line
// contains one of the given keywords. A body runs until the next line that
// looks like a header of a different section, or the end of the text.
func findSections(lines []string, keywords []string) [][]string {
	var sections [][]string

	for i := 0; i < len(lines); i++ {
		lower := strings.ToLower(lines[i])
		matched := false
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		var body []string
		j := i + 1
		for ; j < len(lines); j++ {
			if looksLikeSectionHeader(lines[j], keywords) {
				break
			}
			body = append(body, lines[j])
		}
		sections = append(sections, body)
		i = j - 1
	}

	return sections
}

// parseExperience turns a section body into experience entries. A job-title
// line starts a new entry, a year-range line becomes its duration, and
// bullet lines accumulate into the description.
func parseExperience(body []string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	var current *types.ExperienceEntry

	flush := func() {
		if current != nil && current.Title != "" {
			entries = append(entries, *current)
		}
		current = nil
	}

	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch {
		case !isBulletLine(trimmed) && looksLikeJobTitle(trimmed):
			flush()
			entry := types.ExperienceEntry{Title: trimmed}
			if before, after, found := strings.Cut(trimmed, " at "); found {
				entry.Title = strings.TrimSpace(before)
				entry.Company = strings.TrimSpace(after)
			}
			current = &entry

		case current != nil && current.Duration == "" && durationRe.MatchString(trimmed):
			current.Duration = durationRe.FindString(trimmed)
			fillDurationDates(current)

		case current != nil && isBulletLine(trimmed):
			item := stripBullet(trimmed)
			if current.Description == "" {
				current.Description = item
			} else {
				current.Description += "\n" + item
			}
		}
	}
	flush()

	return entries
}

// fillDurationDates derives start/end dates and the current flag from a
// matched duration string.
func fillDurationDates(entry *types.ExperienceEntry) {
	years := yearRe.FindAllString(entry.Duration, -1)
	if len(years) > 0 {
		entry.StartDate = years[0]
	}
	if strings.Contains(strings.ToLower(entry.Duration), "present") {
		entry.Current = true
	} else if len(years) > 1 {
		entry.EndDate = years[1]
	}
}

var degreeKeywords = []string{"bachelor", "master", "phd", "diploma", "certificate", "degree"}

// parseEducation collects degree lines from a section body. A 4-digit year
// anywhere on the line is captured separately; text after a comma is taken
// as the institution.
func parseEducation(body []string) []types.EducationEntry {
	var entries []types.EducationEntry

	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		isDegree := false
		for _, kw := range degreeKeywords {
			if strings.Contains(lower, kw) {
				isDegree = true
				break
			}
		}
		if !isDegree {
			continue
		}

		entry := types.EducationEntry{Year: yearRe.FindString(trimmed)}
		withoutYear := strings.TrimSpace(strings.Trim(yearRe.ReplaceAllString(trimmed, ""), " ,-"))
		if degree, institution, found := strings.Cut(withoutYear, ","); found {
			entry.Degree = strings.TrimSpace(degree)
			entry.Institution = strings.TrimSpace(institution)
		} else {
			entry.Degree = withoutYear
		}
		entries = append(entries, entry)
	}

	return entries
}

var skillSplitRe = regexp.MustCompile(`[,;|•-]`)

// parseSkills splits every line of a skills section into fragments,
// dropping empty or overlong ones and deduplicating in order of first
// occurrence.
func parseSkills(body []string) []string {
	var skills []string
	seen := make(map[string]bool)

	for _, line := range body {
		for _, fragment := range skillSplitRe.Split(line, -1) {
			skill := strings.TrimSpace(fragment)
			if len(skill) == 0 || len(skill) >= 30 {
				continue
			}
			key := strings.ToLower(skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			skills = append(skills, skill)
		}
	}

	return skills
}

// mergeSkills appends new skills to existing ones, keeping the combined
// list deduplicated with first occurrence preserved.
func mergeSkills(existing, added []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[strings.ToLower(s)] = true
	}
	for _, s := range added {
		key := strings.ToLower(s)
		if !seen[key] {
			seen[key] = true
			existing = append(existing, s)
		}
	}
	return existing
}

// parseLanguages matches "<language> [-:] <proficiency>" lines.
func parseLanguages(body []string) []types.LanguageSkill {
	var langs []types.LanguageSkill

	for _, line := range body {
		trimmed := stripBullet(strings.TrimSpace(line))
		if trimmed == "" {
			continue
		}
		if m := languageRe.FindStringSubmatch(trimmed); m != nil {
			langs = append(langs, types.LanguageSkill{
				Language: strings.TrimSpace(m[1]),
				Level:    strings.ToLower(m[2]),
			})
		}
	}

	return langs
}

// parseAchievements collects bullet lines with the prefix stripped.
func parseAchievements(body []string) []string {
	var achievements []string

	for _, line := range body {
		if isBulletLine(line) {
			if item := stripBullet(line); item != "" {
				achievements = append(achievements, item)
			}
		}
	}

	return achievements
}

// parseProjects treats short non-bullet lines as project names and
// accumulates following bullets into the description. A "Technologies:"
// prefix yields the technology list.
func parseProjects(body []string) []types.ProjectEntry {
	var projects []types.ProjectEntry
	var current *types.ProjectEntry

	flush := func() {
		if current != nil && current.Name != "" {
			projects = append(projects, *current)
		}
		current = nil
	}

	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		lower := strings.ToLower(trimmed)
		switch {
		case current != nil && strings.HasPrefix(lower, "technologies:"):
			rest := strings.TrimSpace(trimmed[len("technologies:"):])
			for _, tech := range strings.Split(rest, ",") {
				if t := strings.TrimSpace(tech); t != "" {
					current.Technologies = append(current.Technologies, t)
				}
			}

		case isBulletLine(trimmed) && current != nil:
			item := stripBullet(trimmed)
			if current.Description == "" {
				current.Description = item
			} else {
				current.Description += "\n" + item
			}

		case !isBulletLine(trimmed) && len(trimmed) < 60:
			flush()
			current = &types.ProjectEntry{Name: trimmed}
		}
	}
	flush()

	return projects
}
