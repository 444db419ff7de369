package export

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"briefd/internal/domain/models"
)

func testBrief() (*models.Brief, []models.Section) {
	brief := &models.Brief{
		Title:     "Annual Summit (2026)",
		EventType: "conference",
		Status:    models.StatusDraft,
		Version:   3,
	}
	sections := []models.Section{
		{
			SectionNumber: 1,
			SectionName:   "Event Overview",
			Content:       map[string]string{"Executive Sponsor": "Jane Doe"},
		},
		{
			SectionNumber: 2,
			SectionName:   "Goals & Objectives",
			Content:       map[string]string{"Primary Goal": "pipeline"},
		},
	}
	return brief, sections
}

func TestResolveFormatAliases(t *testing.T) {
	tests := []struct {
		raw    string
		want   Format
		wantOK bool
	}{
		{"pdf", FormatPDF, true},
		{"word", FormatWord, true},
		{"docx", FormatWord, true},
		{"xlsx", FormatXLSX, true},
		{"Excel", FormatXLSX, true},
		{"html", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		format, ok := ResolveFormat(tt.raw)
		if ok != tt.wantOK || format != tt.want {
			t.Errorf("ResolveFormat(%q) = %v, %v", tt.raw, format, ok)
		}
	}
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Annual Summit (2026)", "Annual_Summit_2026"},
		{"a/b\\c", "abc"},
		{"   ", "brief"},
		{"", "brief"},
	}
	for _, tt := range tests {
		if got := SafeFilename(tt.title); got != tt.want {
			t.Errorf("SafeFilename(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestPDFRender(t *testing.T) {
	brief, sections := testBrief()
	data, err := (&pdfRenderer{}).Render(brief, sections)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.4")) {
		t.Error("output missing PDF header")
	}
	if !bytes.Contains(data, []byte("Jane Doe")) {
		t.Error("output missing section content")
	}
	if !bytes.HasSuffix(bytes.TrimSpace(data), []byte("%%EOF")) {
		t.Error("output missing trailer")
	}
}

func TestPDFEscaping(t *testing.T) {
	brief, sections := testBrief()
	sections[0].Content = map[string]string{"Note": `uses (parens) and \backslash`}

	data, err := (&pdfRenderer{}).Render(brief, sections)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Contains(data, []byte(`\(parens\)`)) {
		t.Error("parens not escaped in content stream")
	}
}

func TestDocxRenderIsValidPackage(t *testing.T) {
	brief, sections := testBrief()
	data, err := (&docxRenderer{}).Render(brief, sections)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}

	parts := map[string]bool{}
	for _, f := range zr.File {
		parts[f.Name] = true
	}
	for _, required := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		if !parts[required] {
			t.Errorf("missing package part %s", required)
		}
	}
}

func TestDocxEscapesXML(t *testing.T) {
	brief, sections := testBrief()
	brief.Title = "Launch <Q3> & Beyond"

	data, err := (&docxRenderer{}).Render(brief, sections)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			t.Fatal(err)
		}
		rc.Close()
		doc := buf.String()
		if strings.Contains(doc, "<Q3>") {
			t.Error("raw angle brackets leaked into document XML")
		}
		if !strings.Contains(doc, "&lt;Q3&gt; &amp; Beyond") {
			t.Error("title not XML-escaped as expected")
		}
	}
}

func TestXLSXRender(t *testing.T) {
	brief, sections := testBrief()
	data, err := (&xlsxRenderer{}).Render(brief, sections)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a workbook: %v", err)
	}
	defer f.Close()

	title, err := f.GetCellValue("Brief", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if title != brief.Title {
		t.Errorf("A1 = %q, want title", title)
	}
}
