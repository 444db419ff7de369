package models

import (
	"time"
)

// Section is one named, numbered subdivision of a brief. Content and
// AIGenerated are independent field maps; by the time values land in
// either map they have been normalized to plain strings.
type Section struct {
	ID            string            `json:"id" db:"id"`
	BriefID       string            `json:"brief_id" db:"brief_id"`
	SectionNumber int               `json:"section_number" db:"section_number"`
	SectionName   string            `json:"section_name" db:"section_name"`
	Content       map[string]string `json:"content" db:"content"`
	AIGenerated   map[string]string `json:"ai_generated" db:"ai_generated"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// NotesField is the well-known field the basic auto-populate policy
// writes concatenated document text into.
const NotesField = "auto_populated_notes"
