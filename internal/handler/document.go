package handler

import (
	"io"
	"log/slog"
	"net/http"

	"briefd/internal/config"
	"briefd/internal/domain/services"
	"briefd/internal/httputil"
)

// DocumentHandler handles document HTTP requests
type DocumentHandler struct {
	documentService services.DocumentService
	logger          *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService services.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		logger:          logger,
	}
}

// Upload stores an uploaded file, runs format extraction once, and
// persists the document
// POST /api/documents/upload?brief_id=... (multipart, field "file")
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	briefID := r.URL.Query().Get("brief_id")
	if briefID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "brief_id is required")
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, config.MaxUploadBytes+1))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "failed to read upload")
		return
	}
	if len(data) > config.MaxUploadBytes {
		httputil.RespondError(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	doc, err := h.documentService.Upload(r.Context(), &services.UploadDocumentRequest{
		BriefID:  briefID,
		Filename: header.Filename,
		Data:     data,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, doc)
}

// ListDocuments lists a brief's documents, newest upload first
// GET /api/briefs/{id}/documents
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	briefID := r.PathValue("id")
	if briefID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Brief ID is required")
		return
	}

	docs, err := h.documentService.ListDocuments(r.Context(), briefID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, docs)
}

// GetDocument retrieves a document by ID
// GET /api/documents/{id}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	doc, err := h.documentService.GetDocument(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// DeleteDocument removes the document row and its backing file
// DELETE /api/documents/{id}
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	if err := h.documentService.DeleteDocument(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Analyze runs structured extraction against one document for a section
// POST /api/documents/{id}/analyze?section_name=...
func (h *DocumentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}
	sectionName := r.URL.Query().Get("section_name")
	if sectionName == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section_name is required")
		return
	}

	fields, err := h.documentService.Analyze(r.Context(), id, sectionName)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"document_id":  id,
		"section_name": sectionName,
		"fields":       fields,
	})
}
