package extract

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func newTestService() *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// writeWorkbook builds an xlsx file with the given rows on the first
// sheet and returns its path.
func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatal(err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "upload.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestExtractSpreadsheetFirstRowOnly(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Executive Sponsor", "Event SPOC", "Unrelated Column"},
		{"Jane Doe", "", "ignored"},
		{"Second Row Sponsor", "Second Row SPOC", "also ignored"},
	})

	result, ok := newTestService().Extract(path, "xlsx")
	if !ok {
		t.Fatal("Extract returned no extractor for xlsx")
	}

	want := map[string]string{"Executive Sponsor": "Jane Doe"}
	if !reflect.DeepEqual(result.Fields, want) {
		t.Errorf("Fields = %v, want %v", result.Fields, want)
	}
}

func TestExtractSpreadsheetTrimsTrailingWhitespace(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Content Lead", "Demand Strategist"},
		{"Ada Lovelace   ", "   "},
	})

	result, ok := newTestService().Extract(path, "xlsx")
	if !ok {
		t.Fatal("Extract returned no extractor for xlsx")
	}

	want := map[string]string{"Content Lead": "Ada Lovelace"}
	if !reflect.DeepEqual(result.Fields, want) {
		t.Errorf("Fields = %v, want %v", result.Fields, want)
	}
}

func TestExtractSpreadsheetHeaderOnly(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Executive Sponsor", "Event SPOC"},
	})

	result, ok := newTestService().Extract(path, "xlsx")
	if !ok {
		t.Fatal("Extract returned no extractor for xlsx")
	}
	if !result.Empty() {
		t.Errorf("expected empty result for header-only workbook, got %+v", result)
	}
}

func TestExtractUnsupportedType(t *testing.T) {
	for _, declaredType := range []string{"exe", "txt", "zip", ""} {
		result, ok := newTestService().Extract("/nonexistent", declaredType)
		if ok {
			t.Errorf("Extract(%q) ok = true, want false", declaredType)
		}
		if result != nil {
			t.Errorf("Extract(%q) result = %+v, want nil", declaredType, result)
		}
	}
}

func TestExtractImageSentinel(t *testing.T) {
	result, ok := newTestService().Extract("/does/not/matter.png", "png")
	if !ok {
		t.Fatal("Extract returned no extractor for png")
	}
	if result.Text != ImageSentinel {
		t.Errorf("Text = %q, want sentinel", result.Text)
	}
	if !result.NeedsFileAnalysis {
		t.Error("NeedsFileAnalysis = false, want true")
	}
}

func TestExtractCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "name,role\nJane,Sponsor\nJoe,Lead\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	result, ok := newTestService().Extract(path, "csv")
	if !ok {
		t.Fatal("Extract returned no extractor for csv")
	}

	want := "name,role\nJane,Sponsor\nJoe,Lead"
	if result.Text != want {
		t.Errorf("Text = %q, want %q", result.Text, want)
	}
}

// A malformed file degrades to an empty result, not an error and not
// a missing extractor.
func TestExtractMalformedFileDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, ok := newTestService().Extract(path, "pdf")
	if !ok {
		t.Fatal("Extract returned no extractor for pdf")
	}
	if !result.Empty() {
		t.Errorf("expected empty result for malformed pdf, got %+v", result)
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		declaredType string
		want         Format
		wantOK       bool
	}{
		{"xlsx", FormatSpreadsheet, true},
		{"xls", FormatSpreadsheet, true},
		{"pdf", FormatPaginated, true},
		{"docx", FormatFlowDocument, true},
		{"csv", FormatDelimited, true},
		{"pptx", FormatSlideDeck, true},
		{"png", FormatImage, true},
		{"jpeg", FormatImage, true},
		{"md", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		format, ok := ResolveFormat(tt.declaredType)
		if ok != tt.wantOK {
			t.Errorf("ResolveFormat(%q) ok = %v, want %v", tt.declaredType, ok, tt.wantOK)
			continue
		}
		if ok && format != tt.want {
			t.Errorf("ResolveFormat(%q) = %v, want %v", tt.declaredType, format, tt.want)
		}
	}
}
