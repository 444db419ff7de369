package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"briefd/internal/domain/services"
)

// OpenXML formats (docx, pptx) are zip containers of XML parts. Text
// lives in "t" elements: w:t runs inside w:p paragraphs for word
// documents, a:t runs inside text-bearing shapes for slides.

// extractDOCX concatenates all paragraph texts with newline separators.
func (s *Service) extractDOCX(filePath string) (*services.ExtractionResult, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open docx container: %w", err)
	}
	defer zr.Close()

	part := findPart(&zr.Reader, "word/document.xml")
	if part == nil {
		return nil, fmt.Errorf("docx has no word/document.xml part")
	}

	raw, err := readPart(part)
	if err != nil {
		return nil, err
	}

	return textResult(strings.Join(paragraphTexts(raw, "p"), "\n")), nil
}

// extractPPTX concatenates all text-bearing shape contents across all
// slides, newline-separated. Slide parts are visited in name order so
// output follows slide order.
func (s *Service) extractPPTX(filePath string) (*services.ExtractionResult, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open pptx container: %w", err)
	}
	defer zr.Close()

	var slideNames []string
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/") && strings.HasSuffix(f.Name, ".xml") {
			slideNames = append(slideNames, f.Name)
		}
	}
	sort.Strings(slideNames)

	var chunks []string
	for _, name := range slideNames {
		raw, err := readPart(findPart(&zr.Reader, name))
		if err != nil {
			return nil, err
		}
		// Shape text bodies show up as a:p paragraphs.
		chunks = append(chunks, paragraphTexts(raw, "p")...)
	}

	return textResult(strings.Join(chunks, "\n")), nil
}

func findPart(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func readPart(f *zip.File) ([]byte, error) {
	if f == nil {
		return nil, fmt.Errorf("missing container part")
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open container part: %w", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read container part: %w", err)
	}
	return raw, nil
}

// paragraphTexts walks the XML token stream, grouping "t" run texts
// by their enclosing paragraph element and dropping empty paragraphs.
func paragraphTexts(raw []byte, paragraphLocal string) []string {
	dec := xml.NewDecoder(strings.NewReader(string(raw)))

	var paragraphs []string
	var current strings.Builder
	depth := 0 // nesting depth of paragraph elements

	flush := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
		current.Reset()
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case paragraphLocal:
				depth++
			case "t":
				var run string
				if err := dec.DecodeElement(&run, &t); err == nil {
					current.WriteString(run)
				}
			}
		case xml.EndElement:
			if t.Name.Local == paragraphLocal && depth > 0 {
				depth--
				if depth == 0 {
					flush()
				}
			}
		}
	}
	flush()

	return paragraphs
}
