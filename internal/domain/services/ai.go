package services

import (
	"context"

	"briefd/internal/domain/models"
)

// AIClient is the boundary to the external text-generation provider.
// Implementations are stateless per call; each call type runs under a
// named conversation identity that selects provider-side system
// instructions and model.
type AIClient interface {
	// ExtractStructured asks the provider to break extracted document
	// text into fields for the named section. An unparsable response
	// is returned as a single catch-all field, never an error.
	ExtractStructured(ctx context.Context, sectionName, text string) (models.FieldMap, error)

	// AnalyzeFile sends the raw file plus mime type to the provider's
	// attachment-capable path. Used when no usable extracted text
	// exists (raster images).
	AnalyzeFile(ctx context.Context, filePath, mimeType, prompt string) (string, error)

	// GenerateSection synthesizes field values for a section from the
	// given context.
	GenerateSection(ctx context.Context, sectionName string, context map[string]interface{}, prompt string) (models.FieldMap, error)

	// SuggestFields proposes candidate values for a single field.
	SuggestFields(ctx context.Context, fieldName string, context map[string]interface{}) ([]string, error)
}
