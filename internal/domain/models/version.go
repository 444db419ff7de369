package models

import (
	"time"
)

// Version is an immutable snapshot of a brief's full content, tagged
// with a strictly increasing version number per brief.
type Version struct {
	ID            string    `json:"id" db:"id"`
	BriefID       string    `json:"brief_id" db:"brief_id"`
	VersionNumber int       `json:"version_number" db:"version_number"`
	Snapshot      Snapshot  `json:"content_snapshot" db:"content_snapshot"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Snapshot is the serialized brief state captured by a version.
// Never mutated after creation.
type Snapshot struct {
	Title     string                 `json:"title"`
	EventType string                 `json:"event_type"`
	Status    BriefStatus            `json:"status"`
	Metadata  map[string]interface{} `json:"metadata"`
	Sections  []SectionSnapshot      `json:"sections"`
}

// SectionSnapshot is one section's state at snapshot time.
type SectionSnapshot struct {
	SectionNumber int               `json:"section_number"`
	SectionName   string            `json:"section_name"`
	Content       map[string]string `json:"content"`
	AIGenerated   map[string]string `json:"ai_generated"`
}
