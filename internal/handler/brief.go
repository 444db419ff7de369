package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"briefd/internal/domain/models"
	"briefd/internal/domain/services"
	"briefd/internal/export"
	"briefd/internal/httputil"
)

// BriefHandler handles brief HTTP requests
type BriefHandler struct {
	briefService   services.BriefService
	sectionService services.SectionService
	logger         *slog.Logger
}

// NewBriefHandler creates a new brief handler
func NewBriefHandler(briefService services.BriefService, sectionService services.SectionService, logger *slog.Logger) *BriefHandler {
	return &BriefHandler{
		briefService:   briefService,
		sectionService: sectionService,
		logger:         logger,
	}
}

// CreateBrief creates a new brief with its fixed section set
// POST /api/briefs
func (h *BriefHandler) CreateBrief(w http.ResponseWriter, r *http.Request) {
	var req services.CreateBriefRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	brief, err := h.briefService.CreateBrief(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, brief)
}

// ListBriefs lists briefs, optionally filtered by status
// GET /api/briefs?status=&skip=&limit=
func (h *BriefHandler) ListBriefs(w http.ResponseWriter, r *http.Request) {
	req := services.ListBriefsRequest{}

	if status := r.URL.Query().Get("status"); status != "" {
		s := models.BriefStatus(status)
		if !s.Valid() {
			httputil.RespondError(w, http.StatusBadRequest, fmt.Sprintf("unknown status %q", status))
			return
		}
		req.Status = &s
	}
	req.Skip = queryInt(r, "skip", 0)
	req.Limit = queryInt(r, "limit", 0)

	briefs, err := h.briefService.ListBriefs(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, briefs)
}

// GetBrief retrieves a brief by ID
// GET /api/briefs/{id}
func (h *BriefHandler) GetBrief(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Brief ID is required")
		return
	}

	brief, err := h.briefService.GetBrief(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, brief)
}

// UpdateBrief applies a partial update to a brief
// PUT /api/briefs/{id}
func (h *BriefHandler) UpdateBrief(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Brief ID is required")
		return
	}

	var req services.UpdateBriefRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	brief, err := h.briefService.UpdateBrief(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, brief)
}

// DeleteBrief deletes a brief and everything it owns
// DELETE /api/briefs/{id}
func (h *BriefHandler) DeleteBrief(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Brief ID is required")
		return
	}

	if err := h.briefService.DeleteBrief(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Snapshot captures the brief as a new version
// POST /api/briefs/{id}/versions
func (h *BriefHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Brief ID is required")
		return
	}

	version, err := h.briefService.Snapshot(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, version)
}

// ListVersions lists a brief's versions, newest first
// GET /api/briefs/{id}/versions
func (h *BriefHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Brief ID is required")
		return
	}

	versions, err := h.briefService.ListVersions(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, versions)
}

// Export renders the brief's current sections to a downloadable file
// GET /api/briefs/{id}/export?format=pdf|word|xlsx
func (h *BriefHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Brief ID is required")
		return
	}

	format, ok := export.ResolveFormat(r.URL.Query().Get("format"))
	if !ok {
		httputil.RespondError(w, http.StatusBadRequest, "format must be one of pdf, word, xlsx")
		return
	}

	brief, err := h.briefService.GetBrief(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	sections, err := h.sectionService.ListSections(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	renderer := export.ForFormat(format)
	data, err := renderer.Render(brief, sections)
	if err != nil {
		h.logger.Error("export render failed", "brief_id", id, "format", format, "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "failed to render export")
		return
	}

	filename := fmt.Sprintf("%s.%s", export.SafeFilename(brief.Title), renderer.Extension())
	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// queryInt parses an integer query parameter, falling back to def on
// absence or garbage.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
