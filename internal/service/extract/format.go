package extract

// Format is the closed set of supported upload formats. Dispatch goes
// through ResolveFormat and a single switch in Service.Extract, so
// adding a format means adding an enum value and an arm - there is no
// silent extension fallthrough.
type Format int

const (
	// FormatSpreadsheet produces a field map from the first data row
	FormatSpreadsheet Format = iota
	// FormatPaginated produces per-page text (PDF)
	FormatPaginated
	// FormatFlowDocument produces per-paragraph text (DOCX)
	FormatFlowDocument
	// FormatDelimited produces joined tabular text (CSV)
	FormatDelimited
	// FormatSlideDeck produces per-shape text across slides (PPTX)
	FormatSlideDeck
	// FormatImage is not extracted locally; the raw file is routed to
	// the AI provider for visual analysis
	FormatImage
)

// formatByType maps declared file types (lowercase extensions without
// the dot) to formats. Types absent from this table have no extractor.
var formatByType = map[string]Format{
	"xlsx": FormatSpreadsheet,
	"xls":  FormatSpreadsheet,
	"pdf":  FormatPaginated,
	"docx": FormatFlowDocument,
	"csv":  FormatDelimited,
	"pptx": FormatSlideDeck,
	"png":  FormatImage,
	"jpg":  FormatImage,
	"jpeg": FormatImage,
	"gif":  FormatImage,
	"webp": FormatImage,
}

// ResolveFormat looks up the format for a declared file type. The
// boolean is false for unsupported types.
func ResolveFormat(declaredType string) (Format, bool) {
	format, ok := formatByType[declaredType]
	return format, ok
}
