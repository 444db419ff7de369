package brief

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"briefd/internal/cache"
	"briefd/internal/domain"
	"briefd/internal/domain/models"
	"briefd/internal/domain/repositories"
	"briefd/internal/domain/services"
	"briefd/internal/service/extract"
	"briefd/internal/storage"
)

// documentService implements the DocumentService interface
type documentService struct {
	documentRepo repositories.DocumentRepository
	briefRepo    repositories.BriefRepository
	fileStore    *storage.FileStore
	extractor    services.Extractor
	aiClient     services.AIClient
	invalidator  *cache.Invalidator
	logger       *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	briefRepo repositories.BriefRepository,
	fileStore *storage.FileStore,
	extractor services.Extractor,
	aiClient services.AIClient,
	invalidator *cache.Invalidator,
	logger *slog.Logger,
) services.DocumentService {
	return &documentService{
		documentRepo: documentRepo,
		briefRepo:    briefRepo,
		fileStore:    fileStore,
		extractor:    extractor,
		aiClient:     aiClient,
		invalidator:  invalidator,
		logger:       logger,
	}
}

// Upload stores the file, runs format extraction exactly once, and
// persists the document row. Unsupported formats and parser failures
// degrade to a document with no extracted content; the upload itself
// still succeeds.
func (s *documentService) Upload(ctx context.Context, req *services.UploadDocumentRequest) (*models.Document, error) {
	if err := validation.Validate(req.Filename, validation.Required); err != nil {
		return nil, fmt.Errorf("%w: filename: %v", domain.ErrValidation, err)
	}
	if len(req.Data) == 0 {
		return nil, fmt.Errorf("%w: empty file", domain.ErrValidation)
	}

	if _, err := s.briefRepo.GetByID(ctx, req.BriefID); err != nil {
		return nil, err
	}

	path, mimeType, err := s.fileStore.Save(req.Data, req.Filename)
	if err != nil {
		return nil, err
	}

	fileType := storage.Extension(req.Filename)

	doc := &models.Document{
		BriefID:  req.BriefID,
		Filename: req.Filename,
		FilePath: path,
		FileType: fileType,
		MimeType: mimeType,
	}

	result, supported := s.extractor.Extract(path, fileType)
	switch {
	case !supported:
		s.logger.Info("no extractor for file type, storing as-is",
			"filename", req.Filename, "type", fileType)
	case result.Empty():
		// Parser failure already logged by the extractor.
	case len(result.Fields) > 0:
		doc.ExtractedContent = result.Fields
	case result.Text != "":
		doc.ExtractedContent = map[string]string{models.TextField: result.Text}
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		// The row is the source of truth; an orphaned file is
		// tolerable, an unbacked row is not.
		if rmErr := s.fileStore.Remove(path); rmErr != nil {
			s.logger.Warn("failed to remove stored file after create error",
				"path", path, "error", rmErr)
		}
		return nil, err
	}

	s.invalidator.Invalidate(ctx, req.BriefID)
	s.logger.Info("document uploaded",
		"document_id", doc.ID,
		"brief_id", req.BriefID,
		"filename", req.Filename,
		"extracted_fields", len(doc.ExtractedContent),
	)
	return doc, nil
}

// GetDocument retrieves a document by ID
func (s *documentService) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	return s.documentRepo.GetByID(ctx, id)
}

// ListDocuments lists a brief's documents, newest upload first
func (s *documentService) ListDocuments(ctx context.Context, briefID string) ([]models.Document, error) {
	return s.documentRepo.ListByBrief(ctx, briefID)
}

// DeleteDocument removes the document row, then its backing file.
// The row goes first: if file removal fails the orphaned file is
// logged and swept later, but the API never serves a document whose
// file is gone.
func (s *documentService) DeleteDocument(ctx context.Context, id string) error {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.fileStore.Remove(doc.FilePath); err != nil {
		s.logger.Warn("failed to remove stored file",
			"document_id", id, "path", doc.FilePath, "error", err)
	}

	s.invalidator.Invalidate(ctx, doc.BriefID)
	s.logger.Info("document deleted", "document_id", id, "brief_id", doc.BriefID)
	return nil
}

// Analyze runs the structured extraction client against one document
// for the named section and returns the normalized field map. It does
// not mutate any section; the caller decides what to do with the
// result.
func (s *documentService) Analyze(ctx context.Context, documentID, sectionName string) (map[string]string, error) {
	doc, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	text := doc.ExtractedText()
	if text == extract.ImageSentinel {
		// No usable text: send the raw file down the provider's
		// attachment path instead.
		prompt := fmt.Sprintf(
			"Analyze this file and extract field values for the %q section. "+
				"Return a JSON object mapping field names to string values.",
			sectionName,
		)
		raw, err := s.aiClient.AnalyzeFile(ctx, doc.FilePath, doc.MimeType, prompt)
		if err != nil {
			return nil, err
		}
		text = raw
	}
	if text == "" {
		return nil, fmt.Errorf("%w: document %s", domain.ErrNoExtractableText, documentID)
	}

	fields, err := s.aiClient.ExtractStructured(ctx, sectionName, text)
	if err != nil {
		return nil, err
	}
	return Normalize(fields), nil
}
