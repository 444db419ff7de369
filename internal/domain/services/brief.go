package services

import (
	"context"

	"briefd/internal/domain/models"
)

// CreateBriefRequest carries the fields for creating a brief.
type CreateBriefRequest struct {
	Title     string                 `json:"title"`
	EventType string                 `json:"event_type"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// UpdateBriefRequest carries the mutable brief fields. Nil pointers
// mean "leave unchanged".
type UpdateBriefRequest struct {
	Title     *string                `json:"title"`
	EventType *string                `json:"event_type"`
	Status    *models.BriefStatus    `json:"status"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// ListBriefsRequest narrows and pages brief listings.
type ListBriefsRequest struct {
	Status *models.BriefStatus
	Skip   int
	Limit  int
}

// BriefService manages briefs, their fixed section set and their
// version history.
type BriefService interface {
	// CreateBrief creates a brief and initializes its fixed sections
	// from the section template
	CreateBrief(ctx context.Context, req *CreateBriefRequest) (*models.Brief, error)

	// GetBrief retrieves a brief by ID
	GetBrief(ctx context.Context, id string) (*models.Brief, error)

	// ListBriefs lists briefs, newest-updated first
	ListBriefs(ctx context.Context, req *ListBriefsRequest) ([]models.Brief, error)

	// UpdateBrief applies a partial update
	UpdateBrief(ctx context.Context, id string, req *UpdateBriefRequest) (*models.Brief, error)

	// DeleteBrief deletes a brief and everything it owns
	DeleteBrief(ctx context.Context, id string) error

	// Snapshot captures the brief as a new immutable version and
	// increments its version counter by exactly one, atomically
	Snapshot(ctx context.Context, briefID string) (*models.Version, error)

	// ListVersions lists a brief's versions, newest first
	ListVersions(ctx context.Context, briefID string) ([]models.Version, error)
}
