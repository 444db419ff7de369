package brief

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"briefd/internal/cache"
	"briefd/internal/domain"
	"briefd/internal/domain/models"
	"briefd/internal/domain/repositories"
	"briefd/internal/domain/services"
	"briefd/internal/service/extract"
)

// sectionService implements the SectionService interface
type sectionService struct {
	sectionRepo  repositories.SectionRepository
	documentRepo repositories.DocumentRepository
	aiClient     services.AIClient
	invalidator  *cache.Invalidator
	logger       *slog.Logger
}

// NewSectionService creates a new section service
func NewSectionService(
	sectionRepo repositories.SectionRepository,
	documentRepo repositories.DocumentRepository,
	aiClient services.AIClient,
	invalidator *cache.Invalidator,
	logger *slog.Logger,
) services.SectionService {
	return &sectionService{
		sectionRepo:  sectionRepo,
		documentRepo: documentRepo,
		aiClient:     aiClient,
		invalidator:  invalidator,
		logger:       logger,
	}
}

// GetSection retrieves a section by ID
func (s *sectionService) GetSection(ctx context.Context, id string) (*models.Section, error) {
	return s.sectionRepo.GetByID(ctx, id)
}

// ListSections lists a brief's sections ordered by section number
func (s *sectionService) ListSections(ctx context.Context, briefID string) ([]models.Section, error) {
	return s.sectionRepo.ListByBrief(ctx, briefID)
}

// UpdateSection applies a manual edit. Values of any JSON shape are
// normalized to plain strings before storage; a nil map in the
// request leaves the corresponding section map unchanged.
func (s *sectionService) UpdateSection(ctx context.Context, id string, req *services.UpdateSectionRequest) (*models.Section, error) {
	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		section.Content = Normalize(req.Content)
	}
	if req.AIGenerated != nil {
		section.AIGenerated = Normalize(req.AIGenerated)
	}

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, section.BriefID)
	return section, nil
}

// AcceptAIGenerated promotes a section's ai_generated fields into
// content, overwriting same-named fields, then clears ai_generated.
func (s *sectionService) AcceptAIGenerated(ctx context.Context, id string) (*models.Section, error) {
	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(section.AIGenerated) == 0 {
		return nil, &domain.PreconditionError{
			Message: "section has no AI-generated content to accept",
		}
	}

	if section.Content == nil {
		section.Content = make(map[string]string, len(section.AIGenerated))
	}
	for name, value := range section.AIGenerated {
		section.Content[name] = value
	}
	section.AIGenerated = map[string]string{}

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, section.BriefID)
	s.logger.Info("ai content accepted", "section_id", id, "brief_id", section.BriefID)
	return section, nil
}

// DeleteSection deletes a single section. Remaining sections keep
// their numbers; gaps are expected.
func (s *sectionService) DeleteSection(ctx context.Context, id string) error {
	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidator.Invalidate(ctx, section.BriefID)
	s.logger.Info("section deleted", "section_id", id, "brief_id", section.BriefID)
	return nil
}

// AutoPopulate fills the section from the brief's documents using the
// basic merge policy: every document's extracted text, in newest-first
// document order, concatenated with blank-line separators. The result
// becomes the section's entire content, a single auto_populated_notes
// field; previous content fields are discarded.
func (s *sectionService) AutoPopulate(ctx context.Context, sectionID, briefID string) (*models.Section, error) {
	section, docs, err := s.loadMergeInputs(ctx, sectionID, briefID)
	if err != nil {
		return nil, err
	}

	combined := combinedDocumentText(docs)
	if combined == "" {
		return nil, fmt.Errorf("%w: brief %s", domain.ErrNoExtractableText, briefID)
	}

	section.Content = map[string]string{models.NotesField: combined}

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, briefID)
	s.logger.Info("section auto-populated",
		"section_id", sectionID,
		"brief_id", briefID,
		"documents", len(docs),
	)
	return section, nil
}

// AutoPopulateAI runs the structured extraction client over the
// brief's combined document text and merges the normalized result
// into the section's ai_generated map. Content stays untouched until
// AcceptAIGenerated.
func (s *sectionService) AutoPopulateAI(ctx context.Context, sectionID, briefID string) (*models.Section, error) {
	section, docs, err := s.loadMergeInputs(ctx, sectionID, briefID)
	if err != nil {
		return nil, err
	}

	combined := combinedDocumentText(docs)
	if combined == "" {
		return nil, fmt.Errorf("%w: brief %s", domain.ErrNoExtractableText, briefID)
	}

	fields, err := s.aiClient.ExtractStructured(ctx, section.SectionName, combined)
	if err != nil {
		return nil, err
	}

	s.mergeAIGenerated(section, fields)

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, briefID)
	s.logger.Info("section ai-populated",
		"section_id", sectionID,
		"brief_id", briefID,
		"fields", len(fields),
	)
	return section, nil
}

// GenerateSection asks the AI provider to draft the section from the
// given context, merging the result into ai_generated.
func (s *sectionService) GenerateSection(ctx context.Context, sectionID string, contextData map[string]interface{}, prompt string) (*models.Section, error) {
	section, err := s.sectionRepo.GetByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	fields, err := s.aiClient.GenerateSection(ctx, section.SectionName, contextData, prompt)
	if err != nil {
		return nil, err
	}

	s.mergeAIGenerated(section, fields)

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, section.BriefID)
	s.logger.Info("section generated", "section_id", sectionID, "fields", len(fields))
	return section, nil
}

// combinedDocumentText concatenates the documents' extracted text
// with blank-line separators, in the given order. Image documents
// store a placeholder rather than real text and are skipped; their
// content only enters a brief through per-document Analyze.
func combinedDocumentText(docs []models.Document) string {
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		text := doc.ExtractedText()
		if text == "" || text == extract.ImageSentinel {
			continue
		}
		parts = append(parts, text)
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

// loadMergeInputs resolves the section and the brief's documents for
// the merge pipeline. Precondition order is fixed: a missing section
// reports not-found before an empty document set reports
// no-documents.
func (s *sectionService) loadMergeInputs(ctx context.Context, sectionID, briefID string) (*models.Section, []models.Document, error) {
	section, err := s.sectionRepo.GetByID(ctx, sectionID)
	if err != nil {
		return nil, nil, err
	}
	if section.BriefID != briefID {
		return nil, nil, fmt.Errorf("%w: section %s does not belong to brief %s",
			domain.ErrNotFound, sectionID, briefID)
	}

	docs, err := s.documentRepo.ListByBrief(ctx, briefID)
	if err != nil {
		return nil, nil, err
	}
	if len(docs) == 0 {
		return nil, nil, fmt.Errorf("%w: brief %s", domain.ErrNoDocuments, briefID)
	}
	return section, docs, nil
}

// mergeAIGenerated folds normalized fields into the section's
// ai_generated map, overwriting same-named entries and keeping the
// rest.
func (s *sectionService) mergeAIGenerated(section *models.Section, fields models.FieldMap) {
	if section.AIGenerated == nil {
		section.AIGenerated = make(map[string]string, len(fields))
	}
	for name, value := range Normalize(fields) {
		section.AIGenerated[name] = value
	}
}
