package pdfgen

import (
	"io"
	"strings"
)

// Letter carries the assembled pieces of a cover letter. Body holds the
// letter paragraphs only; the header, date, and subject line are laid out
// here so every letter shares the same structure.
type Letter struct {
	Name     string
	Contact  []string
	Company  string
	Location string
	JobTitle string
	Date     string
	Body     string
}

// RenderCoverLetter lays out a cover letter as a PDF and reports the number
// of pages rendered.
func RenderCoverLetter(letter Letter, w io.Writer) (int, error) {
	p := NewPaginator()

	p.WriteHeader(letter.Name, letter.Contact)

	if letter.Date != "" {
		p.WriteParagraph(letter.Date)
		p.Space(lineHeight)
	}

	if letter.Company != "" || letter.Location != "" {
		if letter.Company != "" {
			p.WriteParagraph(letter.Company)
		}
		if letter.Location != "" {
			p.WriteParagraph(letter.Location)
		}
		p.Space(lineHeight)
	}

	if letter.JobTitle != "" {
		p.WriteBold("Re: Application for " + letter.JobTitle)
		p.Space(lineHeight)
	}

	for _, paragraph := range strings.Split(letter.Body, "\n\n") {
		paragraph = strings.TrimSpace(strings.ReplaceAll(paragraph, "\n", " "))
		if paragraph == "" {
			continue
		}
		p.WriteParagraph(paragraph)
		p.Space(lineHeight)
	}

	pages := p.PageCount()
	return pages, p.Output(w)
}
