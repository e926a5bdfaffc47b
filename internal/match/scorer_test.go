package match

import (
	"reflect"
	"slices"
	"testing"

	"jobcraft/internal/types"
)

func TestScorePartialSkillMatch(t *testing.T) {
	profile := types.UserProfile{Skills: []string{"javascript", "react"}}
	job := types.JobPosting{
		Title:           "Frontend Developer",
		PreferredSkills: []string{"javascript", "react", "python"},
	}

	analysis := Score(profile, job)

	// 0.4*66.67 (skills) + 0.4*0 (experience) + 0.2*50 (neutral psych)
	if analysis.MatchScore != 37 {
		t.Errorf("expected match score 37, got %d", analysis.MatchScore)
	}
	if analysis.JobID != "Frontend Developer" {
		t.Errorf("expected job ID from title, got %q", analysis.JobID)
	}
	if !slices.Equal(analysis.Strengths, []string{"javascript", "react"}) {
		t.Errorf("unexpected strengths %v", analysis.Strengths)
	}
	if !slices.Equal(analysis.Gaps, []string{"python", "Insufficient relevant experience"}) {
		t.Errorf("unexpected gaps %v", analysis.Gaps)
	}
	if analysis.PsychologicalFit != "Neutral fit" {
		t.Errorf("unexpected fit label %q", analysis.PsychologicalFit)
	}
	if analysis.Confidence != 0.7 {
		t.Errorf("expected confidence 0.7, got %v", analysis.Confidence)
	}
	if !slices.Contains(analysis.Recommendations, "Develop missing skills: python") {
		t.Errorf("expected missing-skill recommendation, got %v", analysis.Recommendations)
	}
	if !slices.Contains(analysis.Recommendations, "ATS keyword coverage: 2 of 3 posting keywords matched") {
		t.Errorf("expected keyword coverage note, got %v", analysis.Recommendations)
	}
}

func TestScoreFullProfileWithPsychBonuses(t *testing.T) {
	profile := types.UserProfile{
		Skills: []string{"go"},
		Experience: []types.ExperienceEntry{
			{Title: "Team Lead", Description: "Managed a team of five engineers"},
		},
		Psychological: &types.PsychologicalAnalysis{
			Strengths:         []string{"Leadership", "Team player"},
			Weaknesses:        []string{"Stress management"},
			AdaptabilityScore: 0.8,
		},
	}
	job := types.JobPosting{
		Title:           "Engineering Manager",
		Description:     "Leadership of a collaborative team",
		Requirements:    []string{"team"},
		PreferredSkills: []string{"go"},
	}

	analysis := Score(profile, job)

	// skills 100, experience 100, psych 50+20+15+10=95
	if analysis.MatchScore != 99 {
		t.Errorf("expected match score 99, got %d", analysis.MatchScore)
	}
	if analysis.PsychologicalFit != "Excellent fit for team work (high adaptability)" {
		t.Errorf("unexpected fit label %q", analysis.PsychologicalFit)
	}
	if analysis.Confidence != 1.0 {
		t.Errorf("expected confidence capped at 1.0, got %v", analysis.Confidence)
	}
	if len(analysis.Gaps) != 0 {
		t.Errorf("expected no gaps, got %v", analysis.Gaps)
	}
	if !slices.Contains(analysis.Recommendations, "Work on: Stress management") {
		t.Errorf("expected weakness recommendation, got %v", analysis.Recommendations)
	}
}

func TestScoreEmptyInputs(t *testing.T) {
	analysis := Score(types.UserProfile{}, types.JobPosting{})

	if analysis.MatchScore != 10 {
		t.Errorf("expected neutral-psych floor of 10, got %d", analysis.MatchScore)
	}
	if !slices.Equal(analysis.Gaps, []string{"Insufficient relevant experience"}) {
		t.Errorf("unexpected gaps %v", analysis.Gaps)
	}
	if analysis.Confidence != 0.5 {
		t.Errorf("expected base confidence 0.5, got %v", analysis.Confidence)
	}
	if !slices.Contains(analysis.Recommendations, "Take courses to build the required skills") {
		t.Errorf("expected low-tier recommendation, got %v", analysis.Recommendations)
	}
}

func TestScoreDeterministic(t *testing.T) {
	profile := types.UserProfile{
		Skills: []string{"go", "sql"},
		Experience: []types.ExperienceEntry{
			{Title: "Backend Developer", Description: "Built APIs in go"},
		},
	}
	job := types.JobPosting{
		Title:           "Backend Engineer",
		Requirements:    []string{"go"},
		PreferredSkills: []string{"go", "kubernetes"},
	}

	first := Score(profile, job)
	second := Score(profile, job)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different analyses:\n%+v\n%+v", first, second)
	}
}

func TestSkillsMatch(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		required string
		want     bool
	}{
		{name: "exact", user: "go", required: "go", want: true},
		{name: "case insensitive", user: "PostgreSQL", required: "postgresql", want: true},
		{name: "user contains required", user: "react native", required: "react", want: true},
		{name: "required contains user", user: "sql", required: "postgresql", want: true},
		{name: "no overlap", user: "java", required: "python", want: false},
		{name: "empty user", user: "", required: "go", want: false},
		{name: "empty required", user: "go", required: "  ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := skillsMatch(tt.user, tt.required); got != tt.want {
				t.Errorf("skillsMatch(%q, %q) = %v, want %v", tt.user, tt.required, got, tt.want)
			}
		})
	}
}
