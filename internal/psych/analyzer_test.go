package psych

import (
	"slices"
	"testing"

	"jobcraft/internal/types"
)

func TestAnalyzeEmptyResponses(t *testing.T) {
	result := Analyze(nil)

	if result.StrengthLevel != types.LevelLow {
		t.Errorf("expected strength level Low, got %q", result.StrengthLevel)
	}
	if result.RiskLevel != types.LevelMedium {
		t.Errorf("expected risk level Medium for empty set, got %q", result.RiskLevel)
	}
	if result.AdaptabilityScore != 0 {
		t.Errorf("expected adaptability 0, got %v", result.AdaptabilityScore)
	}
	if result.Strengths == nil || result.Weaknesses == nil || result.PersonalityTraits == nil {
		t.Error("expected empty slices, not nil")
	}
	if len(result.NeurobiologicalNotes) != 0 {
		t.Errorf("expected no notes, got %v", result.NeurobiologicalNotes)
	}
}

func TestAnalyzeHighRiskProfile(t *testing.T) {
	result := Analyze([]Response{
		{QuestionID: QStressHandling, OptionIndex: 1},
		{QuestionID: QChangeAdaptation, OptionIndex: 2},
	})

	if result.RiskLevel != types.LevelHigh {
		t.Errorf("expected risk level High, got %q", result.RiskLevel)
	}
	if result.StrengthLevel != types.LevelLow {
		t.Errorf("expected strength level Low, got %q", result.StrengthLevel)
	}
	if result.AdaptabilityScore != 0.4 {
		t.Errorf("expected adaptability 0.4, got %v", result.AdaptabilityScore)
	}
	if !slices.Contains(result.Weaknesses, "Handling pressure") {
		t.Errorf("expected pressure weakness, got %v", result.Weaknesses)
	}
	if !slices.Contains(result.Weaknesses, "Adapting to changing priorities") {
		t.Errorf("expected adaptation weakness, got %v", result.Weaknesses)
	}
	if len(result.Recommendations) == 0 {
		t.Error("expected coping recommendations for a high-risk profile")
	}
}

func TestAnalyzeLowRiskProfile(t *testing.T) {
	result := Analyze([]Response{
		{QuestionID: QStressHandling, OptionIndex: 5},
		{QuestionID: QChangeAdaptation, OptionIndex: 4},
	})

	if result.RiskLevel != types.LevelLow {
		t.Errorf("expected risk level Low, got %q", result.RiskLevel)
	}
	if result.StrengthLevel != types.LevelHigh {
		t.Errorf("expected strength level High, got %q", result.StrengthLevel)
	}
	if result.AdaptabilityScore != 0.8 {
		t.Errorf("expected adaptability 0.8, got %v", result.AdaptabilityScore)
	}
	if !slices.Contains(result.Strengths, "Stress resilience") {
		t.Errorf("expected stress strength, got %v", result.Strengths)
	}
	if !slices.Contains(result.Strengths, "Adaptability to change") {
		t.Errorf("expected adaptability strength, got %v", result.Strengths)
	}
	if !slices.Contains(result.PersonalityTraits, "Emotionally stable") ||
		!slices.Contains(result.PersonalityTraits, "Flexible") {
		t.Errorf("expected stability traits, got %v", result.PersonalityTraits)
	}
}

func TestAnalyzeMotivationAndDecisionRules(t *testing.T) {
	result := Analyze([]Response{
		{QuestionID: QDecisionMaking, OptionIndex: 5},
		{QuestionID: QWorkMotivation, Selected: []int{0, 1, 3}},
	})

	for _, trait := range []string{"Analytical thinker", "Problem solver", "Supportive team player"} {
		if !slices.Contains(result.PersonalityTraits, trait) {
			t.Errorf("expected trait %q, got %v", trait, result.PersonalityTraits)
		}
	}
	for _, strength := range []string{"Collaboration", "Growth mindset"} {
		if !slices.Contains(result.Strengths, strength) {
			t.Errorf("expected strength %q, got %v", strength, result.Strengths)
		}
	}
}

func TestAnalyzeIntuitiveDecisionMaker(t *testing.T) {
	result := Analyze([]Response{
		{QuestionID: QDecisionMaking, OptionIndex: 1},
	})

	if !slices.Contains(result.PersonalityTraits, "Intuitive decision maker") {
		t.Errorf("expected intuitive trait, got %v", result.PersonalityTraits)
	}
}

func TestAnalyzeSkipsInvalidResponses(t *testing.T) {
	result := Analyze([]Response{
		{QuestionID: QStressHandling, OptionIndex: 0},
		{QuestionID: QStressHandling, OptionIndex: 9},
		{QuestionID: "unknown_question", OptionIndex: 3},
		{QuestionID: QWorkMotivation, Selected: []int{-1, 99}},
	})

	if len(result.NeurobiologicalNotes) != 0 {
		t.Errorf("invalid responses must not score, got notes %v", result.NeurobiologicalNotes)
	}
	if result.StrengthLevel != types.LevelLow {
		t.Errorf("expected strength level Low, got %q", result.StrengthLevel)
	}
}

func TestRawScoreMultiSelect(t *testing.T) {
	q := questionByID(QWorkMotivation)
	if q == nil {
		t.Fatal("work motivation question missing from battery")
	}

	// Duplicate and out-of-range indexes count once or not at all.
	raw, ok := rawScore(q, Response{QuestionID: q.ID, Selected: []int{0, 0, 99}})
	if !ok {
		t.Fatal("expected a valid score")
	}
	want := 1.0 / float64(len(q.Options)) * 5 * q.Weight
	if raw != want {
		t.Errorf("expected raw score %v, got %v", want, raw)
	}
}

func TestBatteryShape(t *testing.T) {
	if len(Battery) != 16 {
		t.Fatalf("expected 16 questions, got %d", len(Battery))
	}
	seen := make(map[string]bool)
	for _, q := range Battery {
		if q.ID == "" || q.Text == "" || q.Weight <= 0 {
			t.Errorf("question %q has incomplete definition", q.ID)
		}
		if len(q.Options) == 0 {
			t.Errorf("question %q has no options", q.ID)
		}
		if q.Kind != KindLikert && q.Kind != KindMultiSelect {
			t.Errorf("question %q has unknown kind %q", q.ID, q.Kind)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question ID %q", q.ID)
		}
		seen[q.ID] = true
	}
}
