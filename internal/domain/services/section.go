package services

import (
	"context"

	"briefd/internal/domain/models"
)

// UpdateSectionRequest carries a manual section edit. Content values
// may be any JSON shape; they are normalized to strings before
// storage. A nil map leaves the corresponding section map unchanged.
type UpdateSectionRequest struct {
	Content     models.FieldMap `json:"content"`
	AIGenerated models.FieldMap `json:"ai_generated"`
}

// SectionService manages section content, including the merge
// pipeline that populates sections from uploaded documents.
type SectionService interface {
	// GetSection retrieves a section by ID
	GetSection(ctx context.Context, id string) (*models.Section, error)

	// ListSections lists a brief's sections ordered by section number
	ListSections(ctx context.Context, briefID string) ([]models.Section, error)

	// UpdateSection applies a manual edit, normalizing all values
	UpdateSection(ctx context.Context, id string, req *UpdateSectionRequest) (*models.Section, error)

	// AcceptAIGenerated promotes a section's ai_generated fields into
	// content and clears ai_generated
	AcceptAIGenerated(ctx context.Context, id string) (*models.Section, error)

	// DeleteSection deletes a single section without renumbering the rest
	DeleteSection(ctx context.Context, id string) error

	// AutoPopulate fills the section from the brief's documents using
	// the basic merge policy: all extracted text concatenated into the
	// auto_populated_notes field
	AutoPopulate(ctx context.Context, sectionID, briefID string) (*models.Section, error)

	// AutoPopulateAI fills the section's ai_generated map by running
	// the structured extraction client over the brief's documents.
	// Content is left untouched until AcceptAIGenerated.
	AutoPopulateAI(ctx context.Context, sectionID, briefID string) (*models.Section, error)

	// GenerateSection asks the AI provider to draft the section from
	// the given context, merging the result into ai_generated
	GenerateSection(ctx context.Context, sectionID string, contextData map[string]interface{}, prompt string) (*models.Section, error)
}
