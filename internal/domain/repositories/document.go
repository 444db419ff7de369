package repositories

import (
	"context"

	"briefd/internal/domain/models"
)

// DocumentRepository defines data access operations for uploaded documents
type DocumentRepository interface {
	// Create creates a new document row
	Create(ctx context.Context, doc *models.Document) error

	// GetByID retrieves a document by ID
	GetByID(ctx context.Context, id string) (*models.Document, error)

	// ListByBrief lists a brief's documents, newest upload first
	ListByBrief(ctx context.Context, briefID string) ([]models.Document, error)

	// Delete deletes a document row (not the stored file)
	Delete(ctx context.Context, id string) error
}
