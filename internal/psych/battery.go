// Package psych scores a fixed battery of weighted self-assessment
// questions into a psychological profile: traits, strengths, weaknesses,
// an adaptability score, and strength/risk levels.
package psych

// BatteryVersion identifies the question battery. Stored analyses are only
// comparable within one version.
const BatteryVersion = "v1"

// Question kinds
const (
	KindLikert      = "likert"
	KindMultiSelect = "multi-select"
)

// Well-known question IDs with dedicated interpretation rules.
const (
	QStressHandling   = "stress_handling"
	QSocialInteraction = "social_interaction"
	QChangeAdaptation = "change_adaptation"
	QDecisionMaking   = "decision_making"
	QWorkMotivation   = "work_motivation"
	QPerfectionism    = "perfectionism"
)

// Question is one item of the battery. Likert questions have five ordered
// options; multi-select questions allow any subset.
type Question struct {
	ID        string
	Category  string
	Text      string
	Kind      string
	Options   []string
	Weight    float64
	Rationale string
}

// likertScale is the shared five-step agreement scale.
var likertScale = []string{
	"Strongly disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly agree",
}

// Battery is the fixed, ordered question set. Weights are scoring
// multipliers only and are never shown to the user.
var Battery = []Question{
	{
		ID: QStressHandling, Category: "resilience", Kind: KindLikert,
		Text:      "I stay calm and keep working effectively under pressure.",
		Options:   likertScale, Weight: 0.9,
		Rationale: "Sustained cortisol response predicts performance degradation under load.",
	},
	{
		ID: QSocialInteraction, Category: "sociability", Kind: KindLikert,
		Text:      "Interacting with many people during the day energizes me.",
		Options:   likertScale, Weight: 0.7,
		Rationale: "Extraversion correlates with dopamine-driven reward sensitivity to social stimuli.",
	},
	{
		ID: QChangeAdaptation, Category: "adaptability", Kind: KindLikert,
		Text:      "I adjust quickly when plans or priorities change unexpectedly.",
		Options:   likertScale, Weight: 1.0,
		Rationale: "Cognitive flexibility reflects prefrontal set-shifting capacity.",
	},
	{
		ID: QDecisionMaking, Category: "cognition", Kind: KindLikert,
		Text:      "When making an important decision I rely on data and analysis more than on intuition.",
		Options: []string{
			"Always on intuition",
			"Mostly on intuition",
			"A balance of both",
			"Mostly on analysis",
			"Always on analysis and data",
		},
		Weight:    0.6,
		Rationale: "Dual-process preference separates deliberative and heuristic decision styles.",
	},
	{
		ID: QWorkMotivation, Category: "motivation", Kind: KindMultiSelect,
		Text: "What motivates you most at work? Select all that apply.",
		Options: []string{
			"Solving complex problems",
			"Helping others succeed",
			"Recognition and achievement",
			"Continuous learning",
			"Financial stability",
			"Creative freedom",
		},
		Weight:    0.8,
		Rationale: "Intrinsic motivators sustain engagement longer than extrinsic rewards.",
	},
	{
		ID: QPerfectionism, Category: "conscientiousness", Kind: KindLikert,
		Text:      "I find it hard to finish work until every detail is exactly right.",
		Options:   likertScale, Weight: 0.5,
		Rationale: "Maladaptive perfectionism is linked to delayed task completion and burnout risk.",
	},
	{
		ID: "team_conflict", Category: "sociability", Kind: KindLikert,
		Text:      "I address disagreements in a team directly and constructively.",
		Options:   likertScale, Weight: 0.7,
		Rationale: "Constructive conflict style predicts team psychological safety.",
	},
	{
		ID: "feedback_reception", Category: "growth", Kind: KindLikert,
		Text:      "Critical feedback helps me improve rather than discourages me.",
		Options:   likertScale, Weight: 0.6,
		Rationale: "Growth mindset moderates the threat response to negative evaluation.",
	},
	{
		ID: "routine_tolerance", Category: "adaptability", Kind: KindLikert,
		Text:      "I can stay productive on repetitive tasks for extended periods.",
		Options:   likertScale, Weight: 0.4,
		Rationale: "Boredom susceptibility affects error rates on monotonous work.",
	},
	{
		ID: "learning_style", Category: "growth", Kind: KindMultiSelect,
		Text: "How do you prefer to learn new skills? Select all that apply.",
		Options: []string{
			"Hands-on experimentation",
			"Structured courses",
			"Reading documentation",
			"Learning from colleagues",
			"Teaching others",
		},
		Weight:    0.5,
		Rationale: "Multimodal learning preference predicts faster skill transfer.",
	},
	{
		ID: "risk_taking", Category: "cognition", Kind: KindLikert,
		Text:      "I am comfortable making decisions with incomplete information.",
		Options:   likertScale, Weight: 0.6,
		Rationale: "Ambiguity tolerance reflects uncertainty processing in decision circuits.",
	},
	{
		ID: "time_management", Category: "conscientiousness", Kind: KindLikert,
		Text:      "I consistently meet deadlines without last-minute rushes.",
		Options:   likertScale, Weight: 0.7,
		Rationale: "Temporal discounting drives procrastination patterns.",
	},
	{
		ID: "autonomy", Category: "motivation", Kind: KindLikert,
		Text:      "I work best when I can decide myself how to approach a task.",
		Options:   likertScale, Weight: 0.5,
		Rationale: "Perceived autonomy is a core driver of intrinsic motivation.",
	},
	{
		ID: "goal_orientation", Category: "motivation", Kind: KindLikert,
		Text:      "I set concrete goals for myself and track progress toward them.",
		Options:   likertScale, Weight: 0.6,
		Rationale: "Explicit goal setting engages reward anticipation and persistence.",
	},
	{
		ID: "communication_style", Category: "sociability", Kind: KindLikert,
		Text:      "I find it easy to explain complex topics to non-specialists.",
		Options:   likertScale, Weight: 0.6,
		Rationale: "Perspective taking underlies audience-adapted communication.",
	},
	{
		ID: "pressure_deadlines", Category: "resilience", Kind: KindLikert,
		Text:      "Tight deadlines improve my focus rather than scatter it.",
		Options:   likertScale, Weight: 0.5,
		Rationale: "Arousal-performance relation is individual; moderate stress can sharpen attention.",
	},
}

// questionByID returns the battery question with the given ID, or nil.
func questionByID(id string) *Question {
	for i := range Battery {
		if Battery[i].ID == id {
			return &Battery[i]
		}
	}
	return nil
}
