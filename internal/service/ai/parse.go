package ai

import (
	"encoding/json"
	"strings"

	"briefd/internal/domain/models"
)

// parseFieldMap attempts to read a provider response as a JSON field
// map. Markdown code fences around the JSON are tolerated; anything
// else fails the parse and the caller falls back to wrapping the raw
// response.
func parseFieldMap(raw string) (models.FieldMap, bool) {
	cleaned := stripCodeFence(raw)

	var fields models.FieldMap
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, false
	}
	if len(fields) == 0 {
		return nil, false
	}
	return fields, true
}

// parseStringList attempts to read a provider response as a JSON
// array of strings.
func parseStringList(raw string) ([]string, bool) {
	cleaned := stripCodeFence(raw)

	var list []string
	if err := json.Unmarshal([]byte(cleaned), &list); err != nil {
		return nil, false
	}
	return list, true
}

// stripCodeFence removes a surrounding ```...``` fence, including an
// optional language tag on the opening line.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// Drop the language tag line (e.g. "json").
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
