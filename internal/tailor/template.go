package tailor

import (
	"fmt"
	"strings"

	"jobcraft/internal/types"
)

// templateResume renders a resume without AI assistance. Section order
// matches the AI instructions so both paths paginate identically.
func templateResume(input *types.GenerateDocumentInput) string {
	var b strings.Builder

	name := candidateName(input)
	if name != "" {
		b.WriteString(name + "\n")
	}
	if contact := contactLine(input); contact != "" {
		b.WriteString(contact + "\n")
	}
	b.WriteString("\n")

	if summary := candidateSummary(input); summary != "" {
		b.WriteString("PROFESSIONAL SUMMARY\n")
		b.WriteString(summary + "\n\n")
	}

	if input.Parsed != nil && len(input.Parsed.Experience) > 0 {
		b.WriteString("PROFESSIONAL EXPERIENCE\n")
		for _, exp := range input.Parsed.Experience {
			header := exp.Title
			if exp.Company != "" {
				header += " at " + exp.Company
			}
			if exp.Duration != "" {
				header += " (" + exp.Duration + ")"
			}
			b.WriteString(header + "\n")
			for _, line := range strings.Split(exp.Description, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					b.WriteString("- " + line + "\n")
				}
			}
		}
		b.WriteString("\n")
	}

	if skills := candidateSkills(input); len(skills) > 0 {
		b.WriteString("TECHNICAL SKILLS\n")
		b.WriteString(strings.Join(skills, ", ") + "\n\n")
	}

	if input.Parsed != nil {
		if len(input.Parsed.Education) > 0 {
			b.WriteString("EDUCATION\n")
			for _, edu := range input.Parsed.Education {
				line := edu.Degree
				if edu.Institution != "" {
					line += ", " + edu.Institution
				}
				if edu.Year != "" {
					line += " (" + edu.Year + ")"
				}
				b.WriteString(line + "\n")
			}
			b.WriteString("\n")
		}

		if len(input.Parsed.Skills.Languages) > 0 {
			b.WriteString("LANGUAGES\n")
			for _, lang := range input.Parsed.Skills.Languages {
				b.WriteString(fmt.Sprintf("%s (%s)\n", lang.Language, lang.Level))
			}
			b.WriteString("\n")
		}

		if len(input.Parsed.Skills.Certifications) > 0 {
			b.WriteString("CERTIFICATIONS\n")
			for _, cert := range input.Parsed.Skills.Certifications {
				b.WriteString(cert + "\n")
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// templateLetter renders a cover letter body without AI assistance.
func templateLetter(input *types.GenerateDocumentInput) string {
	var paragraphs []string

	position := "the open position"
	company := "your company"
	if input.Job != nil {
		if input.Job.Title != "" {
			position = "the " + input.Job.Title + " position"
		}
		if input.Job.Company != "" {
			company = input.Job.Company
		}
	}

	paragraphs = append(paragraphs, fmt.Sprintf(
		"I am writing to express my interest in %s at %s. My background aligns well with the responsibilities described in the posting, and I would welcome the opportunity to contribute to your team.",
		position, company))

	if skills := candidateSkills(input); len(skills) > 0 {
		shown := skills
		if len(shown) > 4 {
			shown = shown[:4]
		}
		paragraphs = append(paragraphs, fmt.Sprintf(
			"My relevant skills include %s. I have applied these in practice and continue to develop them in my current work.",
			strings.Join(shown, ", ")))
	}

	if input.Parsed != nil && len(input.Parsed.Experience) > 0 {
		recent := input.Parsed.Experience[0]
		role := recent.Title
		if recent.Company != "" {
			role += " at " + recent.Company
		}
		paragraphs = append(paragraphs, fmt.Sprintf(
			"Most recently I have worked as %s, where I took on responsibilities directly relevant to this role.",
			role))
	}

	paragraphs = append(paragraphs,
		"Thank you for considering my application. I would be glad to discuss how my experience can support your goals.")

	return strings.Join(paragraphs, "\n\n")
}

func candidateName(input *types.GenerateDocumentInput) string {
	if input.Parsed != nil && input.Parsed.PersonalInfo.Name != "" {
		return input.Parsed.PersonalInfo.Name
	}
	for _, r := range input.Responses {
		if strings.EqualFold(strings.TrimSpace(r.Question), "name") && r.Answer != "" {
			return r.Answer
		}
	}
	return ""
}

func contactLine(input *types.GenerateDocumentInput) string {
	if input.Parsed == nil {
		return ""
	}
	pi := input.Parsed.PersonalInfo
	var parts []string
	for _, part := range []string{pi.Email, pi.Phone, pi.Location, pi.LinkedIn} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " | ")
}

func candidateSummary(input *types.GenerateDocumentInput) string {
	if input.Parsed != nil && input.Parsed.Summary != "" {
		return input.Parsed.Summary
	}
	for _, r := range input.Responses {
		if strings.EqualFold(r.Category, "summary") && r.Answer != "" {
			return r.Answer
		}
	}
	return ""
}

func candidateSkills(input *types.GenerateDocumentInput) []string {
	var skills []string
	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s != "" && !seen[key] {
			seen[key] = true
			skills = append(skills, s)
		}
	}

	if input.Parsed != nil {
		for _, s := range input.Parsed.Skills.Technical {
			add(s)
		}
	}
	for _, r := range input.Responses {
		if strings.EqualFold(r.Category, "skills") {
			for _, s := range strings.Split(r.Answer, ",") {
				add(s)
			}
		}
	}
	return skills
}
