package repositories

import (
	"context"

	"briefd/internal/domain/models"
)

// BriefFilter narrows brief listings.
type BriefFilter struct {
	Status *models.BriefStatus
	Skip   int
	Limit  int
}

// BriefRepository defines data access operations for briefs
type BriefRepository interface {
	// Create creates a new brief
	Create(ctx context.Context, brief *models.Brief) error

	// GetByID retrieves a brief by ID
	GetByID(ctx context.Context, id string) (*models.Brief, error)

	// List lists briefs, newest-updated first
	List(ctx context.Context, filter *BriefFilter) ([]models.Brief, error)

	// Update updates an existing brief (including its version counter)
	Update(ctx context.Context, brief *models.Brief) error

	// Delete deletes a brief; owned sections, documents and versions
	// cascade at the database level
	Delete(ctx context.Context, id string) error
}
