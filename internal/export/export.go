package export

import (
	"sort"
	"strings"
	"unicode"

	"briefd/internal/domain/models"
)

// Format identifies a supported export format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatWord Format = "word"
	FormatXLSX Format = "xlsx"
)

// ResolveFormat maps a query-string value to a Format. Unknown values
// return false; there is no fallthrough default.
func ResolveFormat(raw string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pdf":
		return FormatPDF, true
	case "word", "docx":
		return FormatWord, true
	case "xlsx", "excel":
		return FormatXLSX, true
	default:
		return "", false
	}
}

// Renderer produces a downloadable file from a brief's current
// sections. Renderers are stateless; one instance serves all requests.
type Renderer interface {
	Render(brief *models.Brief, sections []models.Section) ([]byte, error)
	ContentType() string
	Extension() string
}

// ForFormat returns the renderer for a resolved format.
func ForFormat(format Format) Renderer {
	switch format {
	case FormatWord:
		return &docxRenderer{}
	case FormatXLSX:
		return &xlsxRenderer{}
	default:
		return &pdfRenderer{}
	}
}

// SafeFilename reduces a brief title to a filesystem- and
// header-safe base name.
func SafeFilename(title string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "brief"
	}
	return b.String()
}

// sectionFieldNames returns a section's content field names in stable
// sorted order so exports are deterministic.
func sectionFieldNames(content map[string]string) []string {
	names := make([]string, 0, len(content))
	for name := range content {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
