package tailor

import (
	"fmt"
	"strings"

	"jobcraft/internal/types"
)

// candidateFacts flattens everything known about the candidate into a plain
// text block. This is both the AI prompt payload and the source of truth for
// the template fallback: anything not in here must not appear in a document.
func candidateFacts(input *types.GenerateDocumentInput) string {
	var b strings.Builder

	if input.Parsed != nil {
		writeParsedFacts(&b, input.Parsed)
	}
	writeResponseFacts(&b, input.Responses)

	return strings.TrimSpace(b.String())
}

func writeParsedFacts(b *strings.Builder, parsed *types.ParsedProfileData) {
	pi := parsed.PersonalInfo
	if pi.Name != "" {
		fmt.Fprintf(b, "Name: %s\n", pi.Name)
	}
	if pi.Email != "" {
		fmt.Fprintf(b, "Email: %s\n", pi.Email)
	}
	if pi.Phone != "" {
		fmt.Fprintf(b, "Phone: %s\n", pi.Phone)
	}
	if pi.Location != "" {
		fmt.Fprintf(b, "Location: %s\n", pi.Location)
	}

	if parsed.Summary != "" {
		fmt.Fprintf(b, "Summary: %s\n", parsed.Summary)
	}

	for _, exp := range parsed.Experience {
		fmt.Fprintf(b, "Experience: %s at %s (%s)", exp.Title, exp.Company, exp.Duration)
		if exp.Description != "" {
			fmt.Fprintf(b, " - %s", strings.ReplaceAll(exp.Description, "\n", "; "))
		}
		b.WriteString("\n")
	}

	if len(parsed.Skills.Technical) > 0 {
		fmt.Fprintf(b, "Technical skills: %s\n", strings.Join(parsed.Skills.Technical, ", "))
	}
	if len(parsed.Skills.Soft) > 0 {
		fmt.Fprintf(b, "Soft skills: %s\n", strings.Join(parsed.Skills.Soft, ", "))
	}
	for _, lang := range parsed.Skills.Languages {
		fmt.Fprintf(b, "Language: %s (%s)\n", lang.Language, lang.Level)
	}
	if len(parsed.Skills.Certifications) > 0 {
		fmt.Fprintf(b, "Certifications: %s\n", strings.Join(parsed.Skills.Certifications, ", "))
	}

	for _, edu := range parsed.Education {
		fmt.Fprintf(b, "Education: %s, %s", edu.Degree, edu.Institution)
		if edu.Year != "" {
			fmt.Fprintf(b, " (%s)", edu.Year)
		}
		b.WriteString("\n")
	}

	for _, proj := range parsed.Projects {
		fmt.Fprintf(b, "Project: %s", proj.Name)
		if len(proj.Technologies) > 0 {
			fmt.Fprintf(b, " [%s]", strings.Join(proj.Technologies, ", "))
		}
		b.WriteString("\n")
	}

	for _, ach := range parsed.Achievements {
		fmt.Fprintf(b, "Achievement: %s\n", ach)
	}
}

func writeResponseFacts(b *strings.Builder, responses []types.QuestionnaireResponse) {
	for _, r := range responses {
		if strings.TrimSpace(r.Answer) == "" {
			continue
		}
		fmt.Fprintf(b, "%s - %s: %s\n", r.Category, r.Question, r.Answer)
	}
}

// positionFacts summarizes the target posting for prompts and templates.
func positionFacts(job *types.JobPosting) string {
	if job == nil {
		return "No specific position targeted."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", job.Title)
	if job.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", job.Company)
	}
	if job.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", job.Location)
	}
	if len(job.Requirements) > 0 {
		fmt.Fprintf(&b, "Requirements: %s\n", strings.Join(job.Requirements, "; "))
	}
	if len(job.PreferredSkills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(job.PreferredSkills, ", "))
	}
	return strings.TrimSpace(b.String())
}
