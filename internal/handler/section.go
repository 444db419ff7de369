package handler

import (
	"log/slog"
	"net/http"

	"briefd/internal/domain/services"
	"briefd/internal/httputil"
)

// SectionHandler handles section HTTP requests
type SectionHandler struct {
	sectionService services.SectionService
	logger         *slog.Logger
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(sectionService services.SectionService, logger *slog.Logger) *SectionHandler {
	return &SectionHandler{
		sectionService: sectionService,
		logger:         logger,
	}
}

// ListSections lists a brief's sections ordered by section number
// GET /api/briefs/{id}/sections
func (h *SectionHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	briefID := r.PathValue("id")
	if briefID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Brief ID is required")
		return
	}

	sections, err := h.sectionService.ListSections(r.Context(), briefID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, sections)
}

// GetSection retrieves a section by ID
// GET /api/sections/{id}
func (h *SectionHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Section ID is required")
		return
	}

	section, err := h.sectionService.GetSection(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, section)
}

// UpdateSection applies a manual edit to a section's field maps
// PUT /api/sections/{id}
func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Section ID is required")
		return
	}

	var req services.UpdateSectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	section, err := h.sectionService.UpdateSection(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, section)
}

// AcceptAIGenerated promotes a section's ai_generated fields into content
// POST /api/sections/{id}/accept
func (h *SectionHandler) AcceptAIGenerated(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Section ID is required")
		return
	}

	section, err := h.sectionService.AcceptAIGenerated(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, section)
}

// DeleteSection deletes a single section
// DELETE /api/sections/{id}
func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Section ID is required")
		return
	}

	if err := h.sectionService.DeleteSection(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
