package extract

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"briefd/internal/domain/services"
)

// extractCSV joins all rows: fields comma-joined, rows
// newline-joined.
func (s *Service) extractCSV(filePath string) (*services.ExtractionResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are fine

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, strings.Join(record, ","))
	}

	return textResult(strings.Join(lines, "\n")), nil
}
