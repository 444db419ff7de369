package repositories

import (
	"context"

	"briefd/internal/domain/models"
)

// SectionRepository defines data access operations for brief sections
type SectionRepository interface {
	// Create creates a new section
	Create(ctx context.Context, section *models.Section) error

	// GetByID retrieves a section by ID
	GetByID(ctx context.Context, id string) (*models.Section, error)

	// ListByBrief lists a brief's sections ordered by section number
	ListByBrief(ctx context.Context, briefID string) ([]models.Section, error)

	// Update persists a section's content and ai_generated maps
	Update(ctx context.Context, section *models.Section) error

	// Delete deletes a section; remaining sections keep their numbers
	Delete(ctx context.Context, id string) error
}
