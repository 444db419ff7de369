package models

import (
	"sort"
	"strings"
	"time"
)

// TextField is the field name used when an extractor produces a block
// of plain text rather than a per-field breakdown.
const TextField = "Extracted Text"

// Document is an uploaded file attached to a brief. ExtractedContent
// is computed once at upload time: a field map for spreadsheet-like
// formats, a single TextField entry for unstructured formats, or nil
// when extraction was not attempted or produced nothing.
type Document struct {
	ID               string            `json:"id" db:"id"`
	BriefID          string            `json:"brief_id" db:"brief_id"`
	Filename         string            `json:"filename" db:"filename"`
	FilePath         string            `json:"file_path" db:"file_path"`
	FileType         string            `json:"file_type" db:"file_type"`
	MimeType         string            `json:"mime_type" db:"mime_type"`
	ExtractedContent map[string]string `json:"extracted_content" db:"extracted_content"`
	UploadedAt       time.Time         `json:"uploaded_at" db:"uploaded_at"`
}

// ExtractedText renders the document's extracted content as plain
// text for concatenation during auto-populate. A lone TextField entry
// is returned verbatim; field maps become "name: value" lines in
// stable field-name order.
func (d *Document) ExtractedText() string {
	if len(d.ExtractedContent) == 0 {
		return ""
	}
	if len(d.ExtractedContent) == 1 {
		if text, ok := d.ExtractedContent[TextField]; ok {
			return text
		}
	}
	names := make([]string, 0, len(d.ExtractedContent))
	for name := range d.ExtractedContent {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, name+": "+d.ExtractedContent[name])
	}
	return strings.Join(lines, "\n")
}
