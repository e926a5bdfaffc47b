package jobposting

import (
	"slices"
	"testing"
)

func TestAnalyzeFallback(t *testing.T) {
	text := `Senior Frontend Developer

Join us at Acme Corp in Austin, TX.
We need 5+ years of experience with react and typescript.
Leadership of a small team is expected.
`
	posting := analyzeFallback(text)

	if posting.Title != "Senior Frontend Developer" {
		t.Errorf("expected title from first line, got %q", posting.Title)
	}
	if posting.Company != "Acme Corp" {
		t.Errorf("expected company 'Acme Corp', got %q", posting.Company)
	}
	if posting.Location != "Austin, TX" {
		t.Errorf("expected location 'Austin, TX', got %q", posting.Location)
	}
	if posting.Description != text {
		t.Error("expected original text preserved as description")
	}

	wantRequirements := []string{"Professional experience required", "Team collaboration skills"}
	if !slices.Equal(posting.Requirements, wantRequirements) {
		t.Errorf("expected requirements %v, got %v", wantRequirements, posting.Requirements)
	}

	wantSkills := []string{"typescript", "react", "Leadership"}
	if !slices.Equal(posting.PreferredSkills, wantSkills) {
		t.Errorf("expected skills %v, got %v", wantSkills, posting.PreferredSkills)
	}
}

func TestAnalyzeFallbackDefaults(t *testing.T) {
	posting := analyzeFallback("Dishwasher needed immediately.")

	if posting.Title != "Dishwasher needed immediately." {
		t.Errorf("unexpected title %q", posting.Title)
	}
	if posting.Company != "" {
		t.Errorf("expected no company, got %q", posting.Company)
	}
	if posting.Location != FallbackLocation {
		t.Errorf("expected location sentinel, got %q", posting.Location)
	}
	if posting.Requirements == nil || posting.PreferredSkills == nil {
		t.Error("expected empty slices, not nil")
	}
	if len(posting.Requirements) != 0 {
		t.Errorf("expected no requirements, got %v", posting.Requirements)
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want bool
	}{
		{name: "standalone word", text: "we use go daily", term: "go", want: true},
		{name: "inside another word", text: "good golang code", term: "go", want: false},
		{name: "at end of text", text: "experience with go", term: "go", want: true},
		{name: "punctuation boundary", text: "go, python and sql", term: "go", want: true},
		{name: "symbol term substring", text: "proficient in c++ and c#", term: "c++", want: true},
		{name: "absent term", text: "react and vue", term: "angular", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containsWord(tt.text, tt.term); got != tt.want {
				t.Errorf("containsWord(%q, %q) = %v, want %v", tt.text, tt.term, got, tt.want)
			}
		})
	}
}
