package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"jobcraft/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ParsedProfileData", &ProfileTextFormatter{})
	registry.RegisterFormatter("markdown", "ParsedProfileData", &ProfileMarkdownFormatter{})
	registry.RegisterFormatter("text", "JobPostingAnalysis", &JobPostingTextFormatter{})
	registry.RegisterFormatter("markdown", "JobPostingAnalysis", &JobPostingMarkdownFormatter{})
	registry.RegisterFormatter("text", "JobMatchAnalysis", &MatchTextFormatter{})
	registry.RegisterFormatter("markdown", "JobMatchAnalysis", &MatchMarkdownFormatter{})
	registry.RegisterFormatter("text", "PsychologicalAnalysis", &PsychTextFormatter{})
	registry.RegisterFormatter("markdown", "PsychologicalAnalysis", &PsychMarkdownFormatter{})
	registry.RegisterFormatter("text", "GeneratedDocument", &DocumentTextFormatter{})
	registry.RegisterFormatter("markdown", "GeneratedDocument", &DocumentMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ParsedProfileData:
		return "ParsedProfileData"
	case types.JobPostingAnalysis:
		return "JobPostingAnalysis"
	case types.JobMatchAnalysis:
		return "JobMatchAnalysis"
	case types.PsychologicalAnalysis:
		return "PsychologicalAnalysis"
	case types.GeneratedDocument:
		return "GeneratedDocument"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func writeList(output *strings.Builder, heading string, items []string, prefix string) {
	if len(items) == 0 {
		return
	}
	output.WriteString(heading)
	output.WriteString("\n")
	for _, item := range items {
		output.WriteString(fmt.Sprintf("%s%s\n", prefix, item))
	}
	output.WriteString("\n")
}

// ProfileTextFormatter handles text formatting for extracted profile data
type ProfileTextFormatter struct{}

func (ptf *ProfileTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ParsedProfileData)
	if !ok {
		return "", fmt.Errorf("expected ParsedProfileData, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== EXTRACTED PROFILE ===\n\n")
	if result.PersonalInfo.Name != "" {
		output.WriteString(fmt.Sprintf("Name: %s\n", result.PersonalInfo.Name))
	}
	if result.PersonalInfo.Email != "" {
		output.WriteString(fmt.Sprintf("Email: %s\n", result.PersonalInfo.Email))
	}
	if result.PersonalInfo.Phone != "" {
		output.WriteString(fmt.Sprintf("Phone: %s\n", result.PersonalInfo.Phone))
	}
	if result.PersonalInfo.Location != "" {
		output.WriteString(fmt.Sprintf("Location: %s\n", result.PersonalInfo.Location))
	}
	output.WriteString("\n")

	if result.Summary != "" {
		output.WriteString("Summary:\n")
		output.WriteString(result.Summary)
		output.WriteString("\n\n")
	}

	if len(result.Experience) > 0 {
		output.WriteString("=== EXPERIENCE ===\n\n")
		for _, exp := range result.Experience {
			output.WriteString(fmt.Sprintf("%s at %s", exp.Title, exp.Company))
			if exp.Duration != "" {
				output.WriteString(fmt.Sprintf(" (%s)", exp.Duration))
			}
			output.WriteString("\n")
			if exp.Description != "" {
				output.WriteString(exp.Description)
				output.WriteString("\n")
			}
			output.WriteString("\n")
		}
	}

	writeList(&output, "=== TECHNICAL SKILLS ===", result.Skills.Technical, "- ")
	writeList(&output, "=== CERTIFICATIONS ===", result.Skills.Certifications, "- ")

	if len(result.Education) > 0 {
		output.WriteString("=== EDUCATION ===\n")
		for _, edu := range result.Education {
			output.WriteString(fmt.Sprintf("- %s, %s", edu.Degree, edu.Institution))
			if edu.Year != "" {
				output.WriteString(fmt.Sprintf(" (%s)", edu.Year))
			}
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	writeList(&output, "=== ACHIEVEMENTS ===", result.Achievements, "- ")

	return output.String(), nil
}

func (ptf *ProfileTextFormatter) SupportedType() string {
	return "ParsedProfileData"
}

// ProfileMarkdownFormatter handles markdown formatting for extracted profile data
type ProfileMarkdownFormatter struct{}

func (pmf *ProfileMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ParsedProfileData)
	if !ok {
		return "", fmt.Errorf("expected ParsedProfileData, got %T", data)
	}

	var output strings.Builder

	name := result.PersonalInfo.Name
	if name == "" {
		name = "Extracted Profile"
	}
	output.WriteString(fmt.Sprintf("# %s\n\n", name))

	var contact []string
	if result.PersonalInfo.Email != "" {
		contact = append(contact, result.PersonalInfo.Email)
	}
	if result.PersonalInfo.Phone != "" {
		contact = append(contact, result.PersonalInfo.Phone)
	}
	if result.PersonalInfo.Location != "" {
		contact = append(contact, result.PersonalInfo.Location)
	}
	if len(contact) > 0 {
		output.WriteString(strings.Join(contact, " | "))
		output.WriteString("\n\n")
	}

	if result.Summary != "" {
		output.WriteString("## Summary\n\n")
		output.WriteString(result.Summary)
		output.WriteString("\n\n")
	}

	if len(result.Experience) > 0 {
		output.WriteString("## Experience\n\n")
		for _, exp := range result.Experience {
			output.WriteString(fmt.Sprintf("### %s at %s\n\n", exp.Title, exp.Company))
			if exp.Duration != "" {
				output.WriteString(fmt.Sprintf("*%s*\n\n", exp.Duration))
			}
			if exp.Description != "" {
				output.WriteString(exp.Description)
				output.WriteString("\n\n")
			}
		}
	}

	writeList(&output, "## Technical Skills\n", result.Skills.Technical, "- ")
	writeList(&output, "## Certifications\n", result.Skills.Certifications, "- ")

	if len(result.Education) > 0 {
		output.WriteString("## Education\n\n")
		for _, edu := range result.Education {
			output.WriteString(fmt.Sprintf("- %s, %s", edu.Degree, edu.Institution))
			if edu.Year != "" {
				output.WriteString(fmt.Sprintf(" (%s)", edu.Year))
			}
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	writeList(&output, "## Achievements\n", result.Achievements, "- ")

	return output.String(), nil
}

func (pmf *ProfileMarkdownFormatter) SupportedType() string {
	return "ParsedProfileData"
}

// JobPostingTextFormatter handles text formatting for job posting analyses
type JobPostingTextFormatter struct{}

func (jtf *JobPostingTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.JobPostingAnalysis)
	if !ok {
		return "", fmt.Errorf("expected JobPostingAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB POSTING ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Title: %s\n", result.Title))
	output.WriteString(fmt.Sprintf("Company: %s\n", result.Company))
	output.WriteString(fmt.Sprintf("Location: %s\n", result.Location))
	output.WriteString(fmt.Sprintf("Source: %s\n\n", result.Source))

	writeList(&output, "Requirements:", result.Requirements, "- ")
	writeList(&output, "Preferred skills:", result.PreferredSkills, "- ")

	return output.String(), nil
}

func (jtf *JobPostingTextFormatter) SupportedType() string {
	return "JobPostingAnalysis"
}

// JobPostingMarkdownFormatter handles markdown formatting for job posting analyses
type JobPostingMarkdownFormatter struct{}

func (jmf *JobPostingMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.JobPostingAnalysis)
	if !ok {
		return "", fmt.Errorf("expected JobPostingAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("# %s\n\n", result.Title))
	output.WriteString(fmt.Sprintf("**Company:** %s\n\n", result.Company))
	output.WriteString(fmt.Sprintf("**Location:** %s\n\n", result.Location))
	output.WriteString(fmt.Sprintf("**Analysis source:** %s\n\n", result.Source))

	writeList(&output, "## Requirements\n", result.Requirements, "- ")
	writeList(&output, "## Preferred Skills\n", result.PreferredSkills, "- ")

	return output.String(), nil
}

func (jmf *JobPostingMarkdownFormatter) SupportedType() string {
	return "JobPostingAnalysis"
}

// MatchTextFormatter handles text formatting for match results
type MatchTextFormatter struct{}

func (mtf *MatchTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.JobMatchAnalysis)
	if !ok {
		return "", fmt.Errorf("expected JobMatchAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== MATCH ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Match score: %d/100\n", result.MatchScore))
	output.WriteString(fmt.Sprintf("Confidence: %.2f\n", result.Confidence))
	if result.PsychologicalFit != "" {
		output.WriteString(fmt.Sprintf("Psychological fit: %s\n", result.PsychologicalFit))
	}
	output.WriteString("\n")

	writeList(&output, "Strengths:", result.Strengths, "- ")
	writeList(&output, "Gaps:", result.Gaps, "- ")
	writeList(&output, "Recommendations:", result.Recommendations, "- ")

	return output.String(), nil
}

func (mtf *MatchTextFormatter) SupportedType() string {
	return "JobMatchAnalysis"
}

// MatchMarkdownFormatter handles markdown formatting for match results
type MatchMarkdownFormatter struct{}

func (mmf *MatchMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.JobMatchAnalysis)
	if !ok {
		return "", fmt.Errorf("expected JobMatchAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Match Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Match score:** %d/100\n\n", result.MatchScore))
	output.WriteString(fmt.Sprintf("**Confidence:** %.2f\n\n", result.Confidence))
	if result.PsychologicalFit != "" {
		output.WriteString(fmt.Sprintf("**Psychological fit:** %s\n\n", result.PsychologicalFit))
	}

	writeList(&output, "## Strengths\n", result.Strengths, "- ")
	writeList(&output, "## Gaps\n", result.Gaps, "- ")
	writeList(&output, "## Recommendations\n", result.Recommendations, "- ")

	return output.String(), nil
}

func (mmf *MatchMarkdownFormatter) SupportedType() string {
	return "JobMatchAnalysis"
}

// PsychTextFormatter handles text formatting for assessment results
type PsychTextFormatter struct{}

func (ptf *PsychTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.PsychologicalAnalysis)
	if !ok {
		return "", fmt.Errorf("expected PsychologicalAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== PSYCHOLOGICAL ASSESSMENT ===\n\n")
	output.WriteString(fmt.Sprintf("Strength level: %s\n", result.StrengthLevel))
	output.WriteString(fmt.Sprintf("Risk level: %s\n", result.RiskLevel))
	output.WriteString(fmt.Sprintf("Adaptability: %.2f\n\n", result.AdaptabilityScore))

	writeList(&output, "Strengths:", result.Strengths, "- ")
	writeList(&output, "Weaknesses:", result.Weaknesses, "- ")
	writeList(&output, "Personality traits:", result.PersonalityTraits, "- ")
	writeList(&output, "Recommendations:", result.Recommendations, "- ")

	if len(result.NeurobiologicalNotes) > 0 {
		output.WriteString("Neurobiological notes:\n")
		for trait, note := range result.NeurobiologicalNotes {
			output.WriteString(fmt.Sprintf("- %s: %s\n", trait, note))
		}
	}

	return output.String(), nil
}

func (ptf *PsychTextFormatter) SupportedType() string {
	return "PsychologicalAnalysis"
}

// PsychMarkdownFormatter handles markdown formatting for assessment results
type PsychMarkdownFormatter struct{}

func (pmf *PsychMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.PsychologicalAnalysis)
	if !ok {
		return "", fmt.Errorf("expected PsychologicalAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Psychological Assessment\n\n")
	output.WriteString(fmt.Sprintf("**Strength level:** %s\n\n", result.StrengthLevel))
	output.WriteString(fmt.Sprintf("**Risk level:** %s\n\n", result.RiskLevel))
	output.WriteString(fmt.Sprintf("**Adaptability:** %.2f\n\n", result.AdaptabilityScore))

	writeList(&output, "## Strengths\n", result.Strengths, "- ")
	writeList(&output, "## Weaknesses\n", result.Weaknesses, "- ")
	writeList(&output, "## Personality Traits\n", result.PersonalityTraits, "- ")
	writeList(&output, "## Recommendations\n", result.Recommendations, "- ")

	if len(result.NeurobiologicalNotes) > 0 {
		output.WriteString("## Neurobiological Notes\n\n")
		for trait, note := range result.NeurobiologicalNotes {
			output.WriteString(fmt.Sprintf("- **%s:** %s\n", trait, note))
		}
	}

	return output.String(), nil
}

func (pmf *PsychMarkdownFormatter) SupportedType() string {
	return "PsychologicalAnalysis"
}

// DocumentTextFormatter handles text formatting for generated documents
type DocumentTextFormatter struct{}

func (dtf *DocumentTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.GeneratedDocument)
	if !ok {
		return "", fmt.Errorf("expected GeneratedDocument, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("=== %s ===\n\n", strings.ToUpper(result.Title)))
	if result.JobTitle != "" {
		output.WriteString(fmt.Sprintf("Job title: %s\n", result.JobTitle))
	}
	if result.Company != "" {
		output.WriteString(fmt.Sprintf("Company: %s\n", result.Company))
	}
	if result.CreatedAt != "" {
		output.WriteString(fmt.Sprintf("Created: %s\n", result.CreatedAt))
	}
	output.WriteString("\n")
	output.WriteString(result.Content)
	output.WriteString("\n")

	return output.String(), nil
}

func (dtf *DocumentTextFormatter) SupportedType() string {
	return "GeneratedDocument"
}

// DocumentMarkdownFormatter handles markdown formatting for generated documents
type DocumentMarkdownFormatter struct{}

func (dmf *DocumentMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.GeneratedDocument)
	if !ok {
		return "", fmt.Errorf("expected GeneratedDocument, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("# %s\n\n", result.Title))
	if result.JobTitle != "" {
		output.WriteString(fmt.Sprintf("**Job title:** %s\n\n", result.JobTitle))
	}
	if result.Company != "" {
		output.WriteString(fmt.Sprintf("**Company:** %s\n\n", result.Company))
	}
	output.WriteString("```\n")
	output.WriteString(strings.TrimRight(result.Content, "\n"))
	output.WriteString("\n```\n")

	return output.String(), nil
}

func (dmf *DocumentMarkdownFormatter) SupportedType() string {
	return "GeneratedDocument"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
