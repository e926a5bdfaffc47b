package pdfgen

import (
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimeters. A4 with uniform margins; content flows down
// the page and breaks onto a new page once the cursor passes breakY.
const (
	pageMargin   = 20.0
	pageWidth    = 210.0
	breakY       = 280.0
	lineHeight   = 5.0
	contentWidth = pageWidth - 2*pageMargin

	headerGap  = 10.0
	ruleGap    = 15.0
	sectionGap = 8.0
	bulletGap  = 2.0

	fontFamily  = "Helvetica"
	nameSize    = 18.0
	sectionSize = 12.0
	bodySize    = 10.0
)

// Paginator is a cursor-based layout engine over an fpdf document. All
// writes go through it so page breaks happen in exactly one place.
type Paginator struct {
	pdf *fpdf.Fpdf
	y   float64
}

// NewPaginator creates a single-column A4 document with the cursor at the
// top margin of the first page.
func NewPaginator() *Paginator {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", bodySize)

	return &Paginator{pdf: pdf, y: pageMargin}
}

// ensureRoom starts a new page when the next line would land past the break
// threshold. Called before every line write, never after.
func (p *Paginator) ensureRoom() {
	if p.y > breakY-lineHeight {
		p.pdf.AddPage()
		p.y = pageMargin
	}
}

// writeLine places a single already-wrapped line at the cursor and advances.
func (p *Paginator) writeLine(text string, height float64) {
	p.ensureRoom()
	p.pdf.SetXY(pageMargin, p.y)
	p.pdf.CellFormat(contentWidth, height, text, "", 0, "L", false, 0, "")
	p.y += height
}

// WriteHeader renders the document header: the name in large bold type, the
// contact parts joined with separators, and a horizontal rule.
func (p *Paginator) WriteHeader(name string, contactParts []string) {
	if name != "" {
		p.pdf.SetFont(fontFamily, "B", nameSize)
		p.writeLine(name, headerGap)
	}

	contact := joinNonEmpty(contactParts, " | ")
	if contact != "" {
		p.pdf.SetFont(fontFamily, "", bodySize)
		p.writeLine(contact, lineHeight)
	}

	p.pdf.SetDrawColor(100, 100, 100)
	p.pdf.Line(pageMargin, p.y+2, pageWidth-pageMargin, p.y+2)
	p.y += ruleGap - lineHeight
	p.pdf.SetFont(fontFamily, "", bodySize)
}

// WriteSectionTitle renders an uppercase bold section heading.
func (p *Paginator) WriteSectionTitle(title string) {
	p.pdf.SetFont(fontFamily, "B", sectionSize)
	p.writeLine(strings.ToUpper(title), sectionGap)
	p.pdf.SetFont(fontFamily, "", bodySize)
}

// WriteParagraph word-wraps text to the content width and writes each line.
func (p *Paginator) WriteParagraph(text string) {
	for _, line := range p.wrap(text, contentWidth) {
		p.writeLine(line, lineHeight)
	}
}

// WriteBullet renders one bullet item with a hanging indent and a small gap
// after the item.
func (p *Paginator) WriteBullet(text string) {
	const indent = 5.0
	lines := p.wrap(text, contentWidth-indent)
	for i, line := range lines {
		p.ensureRoom()
		p.pdf.SetXY(pageMargin, p.y)
		prefix := "   "
		if i == 0 {
			prefix = "•  "
		}
		p.pdf.CellFormat(contentWidth, lineHeight, prefix+line, "", 0, "L", false, 0, "")
		p.y += lineHeight
	}
	p.y += bulletGap
}

// WriteBold renders a single bold line at body size.
func (p *Paginator) WriteBold(text string) {
	p.pdf.SetFont(fontFamily, "B", bodySize)
	for _, line := range p.wrap(text, contentWidth) {
		p.writeLine(line, lineHeight)
	}
	p.pdf.SetFont(fontFamily, "", bodySize)
}

// EndSection adds the trailing section gap.
func (p *Paginator) EndSection() {
	p.y += sectionGap
}

// Space advances the cursor without writing.
func (p *Paginator) Space(mm float64) {
	p.y += mm
}

// PageCount reports the number of pages rendered so far.
func (p *Paginator) PageCount() int {
	return p.pdf.PageCount()
}

// Output writes the finished PDF.
func (p *Paginator) Output(w io.Writer) error {
	return p.pdf.Output(w)
}

// wrap splits text into lines that fit within width using greedy word
// wrapping. Words wider than the line get a line of their own rather than
// being broken mid-word.
func (p *Paginator) wrap(text string, width float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if p.pdf.GetStringWidth(candidate) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

func joinNonEmpty(parts []string, sep string) string {
	var kept []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
