package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"

	"briefd/internal/domain/models"
)

// docxRenderer writes the brief as a minimal WordprocessingML package:
// the three mandatory parts, with one paragraph per field line. Word
// and LibreOffice both accept packages of this shape.
type docxRenderer struct{}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func (r *docxRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (r *docxRenderer) Extension() string { return "docx" }

func (r *docxRenderer) Render(brief *models.Brief, sections []models.Section) ([]byte, error) {
	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	writeParagraph(&doc, brief.Title, true)
	if brief.EventType != "" {
		writeParagraph(&doc, "Event Type: "+brief.EventType, false)
	}
	writeParagraph(&doc, fmt.Sprintf("Status: %s (version %d)", brief.Status, brief.Version), false)
	writeParagraph(&doc, "", false)

	for _, section := range sections {
		writeParagraph(&doc, fmt.Sprintf("%d. %s", section.SectionNumber, section.SectionName), true)
		for _, name := range sectionFieldNames(section.Content) {
			writeParagraph(&doc, name+": "+section.Content[name], false)
		}
		writeParagraph(&doc, "", false)
	}

	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", doc.String()},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create part %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("write part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize package: %w", err)
	}
	return buf.Bytes(), nil
}

// writeParagraph appends one w:p element. Text is XML-escaped;
// xml:space="preserve" keeps leading/trailing whitespace in values.
func writeParagraph(doc *bytes.Buffer, text string, bold bool) {
	doc.WriteString(`<w:p><w:r>`)
	if bold {
		doc.WriteString(`<w:rPr><w:b/></w:rPr>`)
	}
	doc.WriteString(`<w:t xml:space="preserve">`)
	_ = xml.EscapeText(doc, []byte(text))
	doc.WriteString(`</w:t></w:r></w:p>`)
}
