package services

// ExtractionResult is the output of format extraction for one file.
// Exactly one of Fields or Text is meaningful; NeedsFileAnalysis
// marks formats (raster images) whose content must be sent to the AI
// provider as a raw file instead.
type ExtractionResult struct {
	Fields            map[string]string
	Text              string
	NeedsFileAnalysis bool
}

// Empty reports whether extraction produced nothing usable.
func (r *ExtractionResult) Empty() bool {
	return r == nil || (len(r.Fields) == 0 && r.Text == "" && !r.NeedsFileAnalysis)
}

// Extractor produces a normalized representation of a stored file
// according to its declared type. The boolean is false when no
// extractor is registered for the type; parser-level failures degrade
// to an empty result, never an error.
type Extractor interface {
	Extract(filePath, declaredType string) (*ExtractionResult, bool)
}
