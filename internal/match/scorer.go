// Package match scores a user profile against a job posting. Scoring is a
// pure function: identical inputs always produce identical output.
package match

import (
	"fmt"
	"math"
	"strings"

	"jobcraft/internal/types"
)

// Score component weights. These mirror the product's original calibration
// and must not drift: downstream consumers compare scores across versions.
const (
	skillWeight      = 0.4
	experienceWeight = 0.4
	psychWeight      = 0.2
)

var leadershipTraits = []string{"leadership", "lead"}
var teamworkTraits = []string{"team", "collaborat", "extravert", "social"}

// Score computes a JobMatchAnalysis for the given profile and job.
func Score(profile types.UserProfile, job types.JobPosting) types.JobMatchAnalysis {
	requiredSkills := job.PreferredSkills
	skillScore := skillMatchScore(profile.Skills, requiredSkills)
	experienceScore, matchedExperience := experienceRelevance(profile.Experience, job.Requirements)
	psychScore, psychLabel := psychologicalAdjustment(profile.Psychological, job)

	overall := int(math.Round(skillWeight*skillScore + experienceWeight*experienceScore + psychWeight*psychScore))
	overall = clampInt(overall, 0, 100)

	analysis := types.JobMatchAnalysis{
		JobID:            job.Title,
		MatchScore:       overall,
		Strengths:        matchedSkills(profile.Skills, requiredSkills),
		Gaps:             skillGaps(profile.Skills, requiredSkills),
		PsychologicalFit: psychLabel,
		Confidence:       confidence(profile),
	}

	if matchedExperience == 0 {
		analysis.Gaps = append(analysis.Gaps, "Insufficient relevant experience")
	}

	analysis.Recommendations = recommendations(overall, analysis.Gaps, profile.Psychological)

	// Keyword coverage approximates what automated screening systems count.
	// Advisory only; it does not feed the score.
	if len(requiredSkills) > 0 {
		analysis.Recommendations = append(analysis.Recommendations,
			fmt.Sprintf("ATS keyword coverage: %d of %d posting keywords matched",
				len(analysis.Strengths), len(requiredSkills)))
	}

	return analysis
}

// skillsMatch reports whether a user skill and a required skill refer to the
// same thing: case-insensitive, either string containing the other.
func skillsMatch(userSkill, requiredSkill string) bool {
	a := strings.ToLower(strings.TrimSpace(userSkill))
	b := strings.ToLower(strings.TrimSpace(requiredSkill))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// skillMatchScore is the matched-skill ratio scaled to 0-100.
func skillMatchScore(userSkills, requiredSkills []string) float64 {
	matched := 0
	for _, required := range requiredSkills {
		for _, skill := range userSkills {
			if skillsMatch(skill, required) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(max(len(requiredSkills), 1)) * 100
}

// matchedSkills lists the required skills the user covers.
func matchedSkills(userSkills, requiredSkills []string) []string {
	var matched []string
	for _, required := range requiredSkills {
		for _, skill := range userSkills {
			if skillsMatch(skill, required) {
				matched = append(matched, required)
				break
			}
		}
	}
	return matched
}

// skillGaps lists the required skills no user skill covers.
func skillGaps(userSkills, requiredSkills []string) []string {
	var gaps []string
	for _, required := range requiredSkills {
		covered := false
		for _, skill := range userSkills {
			if skillsMatch(skill, required) {
				covered = true
				break
			}
		}
		if !covered {
			gaps = append(gaps, required)
		}
	}
	return gaps
}

// experienceRelevance counts experience entries whose title or description
// mentions any job requirement phrase, scaled to 0-100 and capped.
func experienceRelevance(experience []types.ExperienceEntry, requirements []string) (float64, int) {
	matched := 0
	for _, entry := range experience {
		haystack := strings.ToLower(entry.Title + " " + entry.Description)
		for _, req := range requirements {
			if req == "" {
				continue
			}
			if strings.Contains(haystack, strings.ToLower(req)) {
				matched++
				break
			}
		}
	}
	score := float64(matched) / float64(max(len(requirements), 1)) * 100
	return math.Min(score, 100), matched
}

// psychologicalAdjustment starts at a neutral 50 and grants additive bonuses
// when the job text calls for traits the profile exhibits. The label reflects
// the last bonus applied, with adaptability appended when triggered.
func psychologicalAdjustment(psych *types.PsychologicalAnalysis, job types.JobPosting) (float64, string) {
	score := 50.0
	label := "Neutral fit"
	if psych == nil {
		return score, label
	}

	jobText := strings.ToLower(job.Title + " " + job.Description + " " + strings.Join(job.Requirements, " "))

	if containsAny(jobText, "leadership", "manager") && hasTraitLike(psych.Strengths, leadershipTraits) {
		score += 20
		label = "High fit for leadership role"
	}
	if containsAny(jobText, "team", "collaborative") && hasTraitLike(psych.Strengths, teamworkTraits) {
		score += 15
		label = "Excellent fit for team work"
	}
	if psych.AdaptabilityScore > 0.7 {
		score += 10
		label += " (high adaptability)"
	}

	return math.Min(score, 100), label
}

func containsAny(text string, substrings ...string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func hasTraitLike(strengths, patterns []string) bool {
	for _, strength := range strengths {
		lower := strings.ToLower(strength)
		for _, p := range patterns {
			if strings.Contains(lower, p) {
				return true
			}
		}
	}
	return false
}

// recommendations builds the tiered advice list for a given overall score.
func recommendations(overall int, gaps []string, psych *types.PsychologicalAnalysis) []string {
	var recs []string

	switch {
	case overall < 30:
		recs = append(recs,
			"Consider additional formal education in the field",
			"Take courses to build the required skills")
	case overall < 60:
		recs = append(recs,
			"Highlight your most relevant experience prominently",
			"Consider certifications to strengthen your profile")
	default:
		recs = append(recs,
			"Emphasize your matching strengths in the cover letter",
			"Prepare for interviews around your strongest skills")
	}

	missing := missingSkillNames(gaps)
	if len(missing) > 0 {
		recs = append(recs, fmt.Sprintf("Develop missing skills: %s", strings.Join(missing, ", ")))
	}

	if psych != nil && len(psych.Weaknesses) > 0 {
		recs = append(recs, fmt.Sprintf("Work on: %s", psych.Weaknesses[0]))
	}

	return recs
}

// missingSkillNames returns up to the first three skill gaps, excluding the
// fixed experience-gap sentence.
func missingSkillNames(gaps []string) []string {
	var names []string
	for _, gap := range gaps {
		if gap == "Insufficient relevant experience" {
			continue
		}
		names = append(names, gap)
		if len(names) == 3 {
			break
		}
	}
	return names
}

// confidence grows with how much of the profile is filled in, capped at 1.0.
func confidence(profile types.UserProfile) float64 {
	c := 0.5
	if len(profile.Skills) > 0 {
		c += 0.2
	}
	if len(profile.Experience) > 0 {
		c += 0.2
	}
	if profile.Psychological != nil {
		c += 0.1
	}
	return math.Min(c, 1.0)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
