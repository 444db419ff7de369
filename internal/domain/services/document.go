package services

import (
	"context"

	"briefd/internal/domain/models"
)

// UploadDocumentRequest carries an uploaded file for a brief.
type UploadDocumentRequest struct {
	BriefID  string
	Filename string
	Data     []byte
}

// DocumentService manages uploaded documents and their one-time
// extraction at upload.
type DocumentService interface {
	// Upload stores the file, runs format extraction once, and
	// persists the document row. Extraction failure degrades to a nil
	// extracted content; the upload itself still succeeds.
	Upload(ctx context.Context, req *UploadDocumentRequest) (*models.Document, error)

	// GetDocument retrieves a document by ID
	GetDocument(ctx context.Context, id string) (*models.Document, error)

	// ListDocuments lists a brief's documents, newest upload first
	ListDocuments(ctx context.Context, briefID string) ([]models.Document, error)

	// DeleteDocument removes the document row and its backing file
	DeleteDocument(ctx context.Context, id string) error

	// Analyze runs the structured extraction client against one
	// document for the named section and returns the normalized
	// field map. It does not mutate any section.
	Analyze(ctx context.Context, documentID, sectionName string) (map[string]string, error)
}
