package repositories

import (
	"context"

	"briefd/internal/domain/models"
)

// VersionRepository defines data access operations for brief versions.
// Versions are insert-only; no update or delete is exposed.
type VersionRepository interface {
	// Create persists a new version snapshot
	Create(ctx context.Context, version *models.Version) error

	// ListByBrief lists a brief's versions, newest first
	ListByBrief(ctx context.Context, briefID string) ([]models.Version, error)
}
