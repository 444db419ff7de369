package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"briefd/internal/domain/models"
)

// xlsxRenderer writes the brief as a one-sheet workbook: one header
// row per section followed by its field/value rows.
type xlsxRenderer struct{}

func (r *xlsxRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *xlsxRenderer) Extension() string { return "xlsx" }

func (r *xlsxRenderer) Render(brief *models.Brief, sections []models.Section) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Brief"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// Drop the default sheet excelize creates
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	write := func(row, col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, brief.Title)
	write(2, 1, "Event Type")
	write(2, 2, brief.EventType)
	write(3, 1, "Status")
	write(3, 2, string(brief.Status))
	write(4, 1, "Version")
	write(4, 2, brief.Version)

	row := 6
	for _, section := range sections {
		write(row, 1, fmt.Sprintf("%d. %s", section.SectionNumber, section.SectionName))
		row++
		for _, name := range sectionFieldNames(section.Content) {
			write(row, 1, name)
			write(row, 2, section.Content[name])
			row++
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "B", 80)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
