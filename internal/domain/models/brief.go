package models

import (
	"time"
)

// BriefStatus is the lifecycle status of a brief.
type BriefStatus string

const (
	StatusDraft      BriefStatus = "draft"
	StatusInProgress BriefStatus = "in_progress"
	StatusCompleted  BriefStatus = "completed"
	StatusArchived   BriefStatus = "archived"
)

// Valid reports whether s is one of the known lifecycle statuses.
func (s BriefStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusInProgress, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Brief is the top-level event brief being assembled. Version is
// incremented only by snapshotting and always equals the highest
// version_number among the brief's persisted versions (1 if none).
type Brief struct {
	ID        string                 `json:"id" db:"id"`
	Title     string                 `json:"title" db:"title"`
	EventType string                 `json:"event_type" db:"event_type"`
	Status    BriefStatus            `json:"status" db:"status"`
	Version   int                    `json:"version" db:"version"`
	Metadata  map[string]interface{} `json:"metadata" db:"metadata"`
	CreatedAt time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt time.Time              `json:"updated_at" db:"updated_at"`
}
