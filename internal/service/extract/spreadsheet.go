package extract

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"

	"briefd/internal/domain/services"
)

// spreadsheetFieldMap is the fixed, explicit column-name to
// field-name mapping for spreadsheet uploads. Columns outside this
// table are ignored.
var spreadsheetFieldMap = map[string]string{
	"Executive Sponsor": "Executive Sponsor",
	"Event SPOC":        "Event SPOC",
	"Content Lead":      "Content Lead",
	"Demand Strategist": "Demand Strategist",
	"Field Marketer":    "Field Marketer",
}

// extractSpreadsheet reads the header row plus the FIRST data row
// only. Templates are filled one event per workbook, so rows beyond
// the first are deliberately ignored rather than merged.
func (s *Service) extractSpreadsheet(filePath string) (*services.ExtractionResult, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &services.ExtractionResult{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return &services.ExtractionResult{}, nil
	}

	headers := rows[0]
	data := rows[1]

	fields := map[string]string{}
	for i, header := range headers {
		fieldName, ok := spreadsheetFieldMap[strings.TrimSpace(header)]
		if !ok || i >= len(data) {
			continue
		}
		value := strings.TrimRightFunc(data[i], unicode.IsSpace)
		if value == "" {
			continue
		}
		fields[fieldName] = value
	}

	return &services.ExtractionResult{Fields: fields}, nil
}
