package types

// PersonalInfo holds contact details extracted from a resume or entered by the user.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ExperienceEntry represents one position in a work history
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
}

// EducationEntry represents one degree or program
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Honors      string `json:"honors,omitempty"`
}

// LanguageSkill pairs a language with a proficiency level
type LanguageSkill struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// SkillSet groups the different skill categories found in a resume
type SkillSet struct {
	Technical      []string        `json:"technical"`
	Soft           []string        `json:"soft"`
	Languages      []LanguageSkill `json:"languages"`
	Certifications []string        `json:"certifications"`
}

// ProjectEntry represents a personal or professional project
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
}

// ParsedProfileData is the structured result of extracting facts from one
// uploaded resume document. Each upload yields an independent record; records
// are never merged automatically.
type ParsedProfileData struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       SkillSet          `json:"skills"`
	Projects     []ProjectEntry    `json:"projects"`
	Achievements []string          `json:"achievements"`
	Summary      string            `json:"summary,omitempty"`
}

// JobPosting is the structured analysis of a job advertisement.
// Immutable after creation within a session.
type JobPosting struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	PreferredSkills []string `json:"preferredSkills"`
	Location        string   `json:"location"`
}

// Analysis sources for JobPostingAnalysis
const (
	AnalysisSourceAI       = "ai"
	AnalysisSourceFallback = "fallback"
)

// JobPostingAnalysis wraps a JobPosting with the source that produced it,
// so callers can surface when the local fallback was used instead of the
// AI backend.
type JobPostingAnalysis struct {
	JobPosting
	Source string `json:"source"`
}

// QuestionnaireResponse is the atomic unit of a user-supplied profile fact.
// Uniqueness is by exact question text within a profile: re-answering the
// same question replaces the prior answer. Weight is a scoring multiplier
// only, never a display value.
type QuestionnaireResponse struct {
	Category string  `json:"category"`
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Weight   float64 `json:"weight"`
}

// UserProfile bundles everything the match scorer needs about a candidate.
type UserProfile struct {
	Skills        []string                `json:"skills"`
	Experience    []ExperienceEntry       `json:"experience"`
	Responses     []QuestionnaireResponse `json:"responses,omitempty"`
	Psychological *PsychologicalAnalysis  `json:"psychological,omitempty"`
}

// JobMatchAnalysis is the ephemeral result of scoring a profile against a
// job posting. Recomputed fresh on every request, never persisted.
type JobMatchAnalysis struct {
	JobID            string   `json:"jobId"`
	MatchScore       int      `json:"matchScore"` // 0-100
	Strengths        []string `json:"strengths"`
	Gaps             []string `json:"gaps"`
	Recommendations  []string `json:"recommendations"`
	PsychologicalFit string   `json:"psychologicalFit"`
	Confidence       float64  `json:"confidence"` // 0.0-1.0
}

// Levels used for psychological strength and risk classification
const (
	LevelLow    = "Low"
	LevelMedium = "Medium"
	LevelHigh   = "High"
)

// PsychologicalAnalysis is the derived trait summary from a completed
// response set to the fixed question battery. Immutable once produced and
// re-derivable from the raw responses at any time.
type PsychologicalAnalysis struct {
	Strengths            []string          `json:"strengths"`
	Weaknesses           []string          `json:"weaknesses"`
	PersonalityTraits    []string          `json:"personalityTraits"`
	StrengthLevel        string            `json:"strengthLevel"`     // Low, Medium, High
	RiskLevel            string            `json:"riskLevel"`         // Low, Medium, High
	AdaptabilityScore    float64           `json:"adaptabilityScore"` // 0.0-1.0
	Recommendations      []string          `json:"recommendations"`
	NeurobiologicalNotes map[string]string `json:"neurobiologicalNotes"`
}

// Document types for generated document records
const (
	DocumentTypeResume      = "resume"
	DocumentTypeCoverLetter = "cover-letter"
)

// GeneratedDocument is a stored record of a rendered document.
type GeneratedDocument struct {
	ID        string `json:"id"`
	Type      string `json:"type"` // resume or cover-letter
	Title     string `json:"title"`
	Content   string `json:"content"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Company   string `json:"company,omitempty"`
	ProfileID string `json:"profileId"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// GenerateDocumentInput carries everything needed to render a document.
type GenerateDocumentInput struct {
	Type      string                  `json:"type"` // resume or cover-letter
	ProfileID string                  `json:"profileId,omitempty"`
	Responses []QuestionnaireResponse `json:"responses"`
	Parsed    *ParsedProfileData      `json:"parsed,omitempty"`
	Job       *JobPosting             `json:"job,omitempty"`
	Body      string                  `json:"body,omitempty"` // pre-generated letter body
}
