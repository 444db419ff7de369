package extract

import (
	"log/slog"

	"briefd/internal/domain/services"
)

// ImageSentinel is the fixed text returned for raster images: it
// tells the caller extraction was not attempted and the raw file
// should be routed to the AI provider instead.
const ImageSentinel = "[image content - visual analysis required]"

// Service implements services.Extractor. Extraction is pure and
// synchronous per call; the service holds no shared state beyond its
// logger.
type Service struct {
	logger *slog.Logger
}

// NewService creates a new extraction service
func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger.With("component", "extract")}
}

// Extract produces a normalized representation of the stored file for
// its declared type. Unsupported types return (nil, false) without
// error. A parser-level failure for one file is logged and degrades
// to an empty result - ingestion never fails outright because a
// single file is malformed.
func (s *Service) Extract(filePath, declaredType string) (*services.ExtractionResult, bool) {
	format, ok := ResolveFormat(declaredType)
	if !ok {
		return nil, false
	}

	var result *services.ExtractionResult
	var err error

	switch format {
	case FormatSpreadsheet:
		result, err = s.extractSpreadsheet(filePath)
	case FormatPaginated:
		result, err = s.extractPDF(filePath)
	case FormatFlowDocument:
		result, err = s.extractDOCX(filePath)
	case FormatDelimited:
		result, err = s.extractCSV(filePath)
	case FormatSlideDeck:
		result, err = s.extractPPTX(filePath)
	case FormatImage:
		result = &services.ExtractionResult{Text: ImageSentinel, NeedsFileAnalysis: true}
	}

	if err != nil {
		s.logger.Warn("extraction failed, degrading to empty result",
			"path", filePath,
			"type", declaredType,
			"error", err,
		)
		return &services.ExtractionResult{}, true
	}

	return result, true
}
