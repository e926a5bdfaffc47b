package psych

import (
	"math"
	"strings"

	"jobcraft/internal/types"
)

// Response is one answer to a battery question. Likert answers carry the
// 1-based index of the selected option; multi-select answers carry the
// 0-based indexes of every selected option.
type Response struct {
	QuestionID  string `json:"questionId"`
	OptionIndex int    `json:"optionIndex,omitempty"`
	Selected    []int  `json:"selected,omitempty"`
}

// Analyze scores a full response set into a PsychologicalAnalysis. It is a
// pure function over the complete set: partial updates are not supported,
// a changed answer requires full recomputation. Unanswered questions are
// skipped entirely. An empty response set yields adaptability 0, strength
// level Low, risk level Medium and empty lists.
func Analyze(responses []Response) types.PsychologicalAnalysis {
	result := types.PsychologicalAnalysis{
		Strengths:            []string{},
		Weaknesses:           []string{},
		PersonalityTraits:    []string{},
		Recommendations:      []string{},
		NeurobiologicalNotes: map[string]string{},
	}

	byID := make(map[string]Response, len(responses))
	for _, r := range responses {
		byID[r.QuestionID] = r
	}

	var totalScore, maxScore float64
	// Normalized per-question scores on the 1..5 scale, for dedicated rules.
	normalized := make(map[string]float64)

	for i := range Battery {
		q := &Battery[i]
		resp, answered := byID[q.ID]
		if !answered {
			continue
		}

		raw, ok := rawScore(q, resp)
		if !ok {
			continue
		}

		totalScore += raw
		maxScore += q.Weight * 5
		normalized[q.ID] = raw / q.Weight
		result.NeurobiologicalNotes[q.ID] = q.Rationale
	}

	ratio := 0.0
	if maxScore > 0 {
		ratio = totalScore / maxScore
	}
	switch {
	case ratio >= 0.7:
		result.StrengthLevel = types.LevelHigh
	case ratio >= 0.4:
		result.StrengthLevel = types.LevelMedium
	default:
		result.StrengthLevel = types.LevelLow
	}

	applyStressRules(&result, normalized)
	applySocialRules(&result, normalized)
	applyAdaptationRules(&result, normalized)
	applyDecisionRules(&result, byID)
	applyMotivationRules(&result, byID)
	applyPerfectionismRules(&result, normalized)

	result.AdaptabilityScore = clamp01(normalized[QChangeAdaptation] / 5)
	result.RiskLevel = riskLevel(normalized)

	result.Strengths = dedupe(result.Strengths)
	result.Weaknesses = dedupe(result.Weaknesses)
	result.PersonalityTraits = dedupe(result.PersonalityTraits)
	result.Recommendations = dedupe(result.Recommendations)

	return result
}

// rawScore computes one question's weighted score. Likert: 1-based option
// index times weight. Multi-select: selected fraction of options, scaled to
// the 5-point range, times weight.
func rawScore(q *Question, resp Response) (float64, bool) {
	switch q.Kind {
	case KindLikert:
		if resp.OptionIndex < 1 || resp.OptionIndex > len(q.Options) {
			return 0, false
		}
		return float64(resp.OptionIndex) * q.Weight, true
	case KindMultiSelect:
		if len(resp.Selected) == 0 || len(q.Options) == 0 {
			return 0, false
		}
		count := 0
		seen := make(map[int]bool)
		for _, idx := range resp.Selected {
			if idx >= 0 && idx < len(q.Options) && !seen[idx] {
				seen[idx] = true
				count++
			}
		}
		if count == 0 {
			return 0, false
		}
		return float64(count) / float64(len(q.Options)) * 5 * q.Weight, true
	}
	return 0, false
}

func applyStressRules(result *types.PsychologicalAnalysis, normalized map[string]float64) {
	score, answered := normalized[QStressHandling]
	if !answered {
		return
	}
	if score >= 4 {
		result.Strengths = append(result.Strengths, "Stress resilience")
		result.PersonalityTraits = append(result.PersonalityTraits, "Emotionally stable")
	} else if score <= 2 {
		result.Weaknesses = append(result.Weaknesses, "Handling pressure")
		result.Recommendations = append(result.Recommendations,
			"Practice stress coping techniques such as structured breaks and workload planning")
	}
}

func applySocialRules(result *types.PsychologicalAnalysis, normalized map[string]float64) {
	score, answered := normalized[QSocialInteraction]
	if !answered {
		return
	}
	if score >= 4 {
		result.PersonalityTraits = append(result.PersonalityTraits, "Extraverted")
		result.Strengths = append(result.Strengths, "Comfortable in team settings")
	} else if score <= 2 {
		result.PersonalityTraits = append(result.PersonalityTraits, "Introverted")
		result.Recommendations = append(result.Recommendations,
			"Look for roles with space for focused independent work")
	}
}

func applyAdaptationRules(result *types.PsychologicalAnalysis, normalized map[string]float64) {
	score, answered := normalized[QChangeAdaptation]
	if !answered {
		return
	}
	if score >= 4 {
		result.Strengths = append(result.Strengths, "Adaptability to change")
		result.PersonalityTraits = append(result.PersonalityTraits, "Flexible")
	} else if score <= 2 {
		result.Weaknesses = append(result.Weaknesses, "Adapting to changing priorities")
		result.Recommendations = append(result.Recommendations,
			"Prefer roles with stable, predictable processes or build change tolerance gradually")
	}
}

func applyDecisionRules(result *types.PsychologicalAnalysis, byID map[string]Response) {
	resp, answered := byID[QDecisionMaking]
	if !answered {
		return
	}
	q := questionByID(QDecisionMaking)
	if q == nil || resp.OptionIndex < 1 || resp.OptionIndex > len(q.Options) {
		return
	}
	option := strings.ToLower(q.Options[resp.OptionIndex-1])
	if strings.Contains(option, "analysis") || strings.Contains(option, "data") {
		result.PersonalityTraits = append(result.PersonalityTraits, "Analytical thinker")
	} else if strings.Contains(option, "intuition") {
		result.PersonalityTraits = append(result.PersonalityTraits, "Intuitive decision maker")
	}
}

// motivationEffects maps specific motivation options to profile additions.
var motivationEffects = map[string]struct {
	trait    string
	strength string
}{
	"Solving complex problems": {trait: "Problem solver"},
	"Helping others succeed":   {trait: "Supportive team player", strength: "Collaboration"},
	"Continuous learning":      {strength: "Growth mindset"},
	"Recognition and achievement": {trait: "Achievement driven"},
}

func applyMotivationRules(result *types.PsychologicalAnalysis, byID map[string]Response) {
	resp, answered := byID[QWorkMotivation]
	if !answered {
		return
	}
	q := questionByID(QWorkMotivation)
	if q == nil {
		return
	}
	for _, idx := range resp.Selected {
		if idx < 0 || idx >= len(q.Options) {
			continue
		}
		effect, known := motivationEffects[q.Options[idx]]
		if !known {
			continue
		}
		if effect.trait != "" {
			result.PersonalityTraits = append(result.PersonalityTraits, effect.trait)
		}
		if effect.strength != "" {
			result.Strengths = append(result.Strengths, effect.strength)
		}
	}
}

func applyPerfectionismRules(result *types.PsychologicalAnalysis, normalized map[string]float64) {
	if score, answered := normalized[QPerfectionism]; answered && score >= 4 {
		result.PersonalityTraits = append(result.PersonalityTraits, "Perfectionist")
		result.Recommendations = append(result.Recommendations,
			"Balance attention to detail against delivery deadlines")
	}
}

// riskLevel classifies risk from the stress and change-adaptation scores.
// High requires BOTH at or below 2, Low requires BOTH at or above 4; every
// mixed state falls to Medium. Unanswered questions count as 0, and an
// entirely empty response set is Medium, not High.
func riskLevel(normalized map[string]float64) string {
	if len(normalized) == 0 {
		return types.LevelMedium
	}
	stress := normalized[QStressHandling]
	adaptation := normalized[QChangeAdaptation]
	switch {
	case stress <= 2 && adaptation <= 2:
		return types.LevelHigh
	case stress >= 4 && adaptation >= 4:
		return types.LevelLow
	default:
		return types.LevelMedium
	}
}

// dedupe removes duplicates preserving first occurrence.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
