package handler

import (
	"log/slog"
	"net/http"

	"briefd/internal/domain/services"
	"briefd/internal/httputil"
)

// AIHandler handles AI-assisted population and generation requests
type AIHandler struct {
	sectionService services.SectionService
	aiClient       services.AIClient
	logger         *slog.Logger
}

// NewAIHandler creates a new AI handler
func NewAIHandler(sectionService services.SectionService, aiClient services.AIClient, logger *slog.Logger) *AIHandler {
	return &AIHandler{
		sectionService: sectionService,
		aiClient:       aiClient,
		logger:         logger,
	}
}

// AutoPopulate fills a section from the brief's uploaded documents.
// With use_ai=true the structured extraction client writes into
// ai_generated; otherwise the basic policy concatenates extracted
// text into the section's notes field.
// POST /api/ai/auto-populate/{sectionID}?brief_id=...&use_ai=
func (h *AIHandler) AutoPopulate(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("sectionID")
	if sectionID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Section ID is required")
		return
	}
	briefID := r.URL.Query().Get("brief_id")
	if briefID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "brief_id is required")
		return
	}

	useAI := r.URL.Query().Get("use_ai") == "true"

	var err error
	var section interface{}
	if useAI {
		section, err = h.sectionService.AutoPopulateAI(r.Context(), sectionID, briefID)
	} else {
		section, err = h.sectionService.AutoPopulate(r.Context(), sectionID, briefID)
	}
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, section)
}

// GenerateRequest is the body for section generation.
type GenerateRequest struct {
	Context map[string]interface{} `json:"context"`
	Prompt  string                 `json:"prompt"`
}

// Generate asks the AI provider to draft a section
// POST /api/ai/generate/{sectionID}
func (h *AIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("sectionID")
	if sectionID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Section ID is required")
		return
	}

	var req GenerateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	section, err := h.sectionService.GenerateSection(r.Context(), sectionID, req.Context, req.Prompt)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, section)
}

// SuggestionsRequest is the body for field suggestions.
type SuggestionsRequest struct {
	FieldName string                 `json:"field_name"`
	Context   map[string]interface{} `json:"context"`
}

// Suggestions proposes candidate values for a single field
// POST /api/ai/suggestions
func (h *AIHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	var req SuggestionsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FieldName == "" {
		httputil.RespondError(w, http.StatusBadRequest, "field_name is required")
		return
	}

	suggestions, err := h.aiClient.SuggestFields(r.Context(), req.FieldName, req.Context)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"field_name":  req.FieldName,
		"suggestions": suggestions,
	})
}
