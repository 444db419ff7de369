package export

import (
	"bytes"
	"fmt"
	"strings"

	"briefd/internal/domain/models"
)

// pdfRenderer writes the brief as a plain-text PDF, one line per
// field, paginated onto Letter pages. The writer emits the format
// directly rather than going through a layout engine; exports are
// line-oriented text so nothing more is needed.
type pdfRenderer struct{}

const (
	pdfPageWidth  = 612
	pdfPageHeight = 792
	pdfMargin     = 54
	pdfLeading    = 14
	pdfFontSize   = 10
	pdfLinesPage  = (pdfPageHeight - 2*pdfMargin) / pdfLeading
)

func (r *pdfRenderer) ContentType() string { return "application/pdf" }

func (r *pdfRenderer) Extension() string { return "pdf" }

func (r *pdfRenderer) Render(brief *models.Brief, sections []models.Section) ([]byte, error) {
	lines := briefLines(brief, sections)

	var pages [][]string
	for len(lines) > 0 {
		n := pdfLinesPage
		if n > len(lines) {
			n = len(lines)
		}
		pages = append(pages, lines[:n])
		lines = lines[n:]
	}
	if len(pages) == 0 {
		pages = [][]string{{""}}
	}

	// Object numbering: 1 catalog, 2 page tree, 3 font, then a
	// page/content pair per page.
	objCount := 3 + 2*len(pages)
	offsets := make([]int, objCount+1)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pages)))
	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, pageLines := range pages {
		pageNum := 4 + 2*i
		contentNum := pageNum + 1

		var content bytes.Buffer
		fmt.Fprintf(&content, "BT /F1 %d Tf %d %d Td %d TL\n",
			pdfFontSize, pdfMargin, pdfPageHeight-pdfMargin, pdfLeading)
		for _, line := range pageLines {
			fmt.Fprintf(&content, "(%s) Tj T*\n", escapePDFText(line))
		}
		content.WriteString("ET")

		writeObj(pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			pdfPageWidth, pdfPageHeight, contentNum))
		writeObj(contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream",
			content.Len(), content.String()))
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", objCount+1)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= objCount; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		objCount+1, xrefStart)

	return buf.Bytes(), nil
}

// briefLines flattens the brief into the line sequence the PDF and
// its pagination operate on.
func briefLines(brief *models.Brief, sections []models.Section) []string {
	lines := []string{brief.Title}
	if brief.EventType != "" {
		lines = append(lines, "Event Type: "+brief.EventType)
	}
	lines = append(lines,
		fmt.Sprintf("Status: %s (version %d)", brief.Status, brief.Version),
		"",
	)
	for _, section := range sections {
		lines = append(lines, fmt.Sprintf("%d. %s", section.SectionNumber, section.SectionName))
		for _, name := range sectionFieldNames(section.Content) {
			value := section.Content[name]
			for i, part := range strings.Split(name+": "+value, "\n") {
				if i == 0 {
					lines = append(lines, part)
				} else {
					lines = append(lines, "    "+part)
				}
			}
		}
		lines = append(lines, "")
	}
	return lines
}

// escapePDFText escapes the three characters with meaning inside a
// PDF literal string.
func escapePDFText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return s
}
