package ai

// SystemPrompts contains system-level instructions per operation.
type SystemPrompts struct {
	AnalyzeJob     string
	GenerateResume string
	GenerateLetter string
}

// UserPrompts contains user-level prompt templates with fmt placeholders
// for dynamic content.
type UserPrompts struct {
	AnalyzeJob     string
	GenerateResume string
	GenerateLetter string
}

// DefaultSystemPrompts provides the default system instructions.
var DefaultSystemPrompts = SystemPrompts{
	AnalyzeJob: `You are an expert recruiter who converts raw job postings into
structured data. You never invent facts that are not present in the posting:
when a field cannot be determined from the text, leave it empty. You respond
with JSON only, no commentary.`,

	GenerateResume: `You are an expert resume writer with a strict commitment
to accuracy. Every statement in the resume you produce must be directly
traceable to the candidate facts you are given. Never invent, exaggerate, or
misattribute skills or experience. Write in concise professional language
suitable for applicant tracking systems.`,

	GenerateLetter: `You are an expert cover letter writer. You write short,
specific, honest letters that connect the candidate's actual background to
the target position. Never fabricate experience. Three to four paragraphs,
no filler phrases.`,
}

// DefaultUserPrompts provides the default user prompt templates.
var DefaultUserPrompts = UserPrompts{
	AnalyzeJob: `Analyze the following job posting and extract its structure.

Return a JSON object with exactly these fields:
- "title": the position title
- "company": the hiring company name, or "" if not stated
- "requirements": an array of requirement sentences from the posting
- "skills": an array of concrete skill names the posting asks for
- "location": the work location, or "" if not stated

**Job Posting:**
-----
%s
-----`,

	GenerateResume: `Write a resume tailored for the target position below,
using only the candidate facts provided. Structure it with these sections in
order, skipping any section with no supporting facts: Professional Summary,
Professional Experience, Technical Skills, Education, Languages,
Certifications. Plain text, one section title per line in capitals.

**Candidate facts:**
-----
%s
-----

**Target position:**
-----
%s
-----`,

	GenerateLetter: `Write a cover letter for the position below based only
on the candidate facts provided. Address it to the company if known. Plain
text body only: no date line, no address header, those are added separately.

**Candidate facts:**
-----
%s
-----

**Position:**
-----
%s
-----`,
}
