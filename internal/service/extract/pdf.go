package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"briefd/internal/domain/services"
)

// extractPDF concatenates per-page plain text with newline
// separators. The parser panics on some malformed files; that is
// recovered here and reported as an ordinary extraction error so the
// caller degrades to an empty result.
func (s *Service) extractPDF(filePath string) (result *services.ExtractionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages; partial text beats none.
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	return textResult(strings.Join(pages, "\n")), nil
}

// textResult wraps extracted plain text, mapping whitespace-only
// output to an empty result.
func textResult(text string) *services.ExtractionResult {
	if strings.TrimSpace(text) == "" {
		return &services.ExtractionResult{}
	}
	return &services.ExtractionResult{Text: text}
}
