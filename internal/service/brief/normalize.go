package brief

import (
	"briefd/internal/domain/models"
)

// Normalize collapses a schema-less field map to the canonical
// string-valued form used by the section content store: null becomes
// the empty string, composites become their JSON encoding, everything
// else its plain string form. Applied uniformly on every content
// write regardless of origin, so the store never holds nested
// structures. Idempotent: normalizing already-string values is a
// no-op.
func Normalize(fields models.FieldMap) map[string]string {
	normalized := make(map[string]string, len(fields))
	for name, value := range fields {
		normalized[name] = value.Canonical()
	}
	return normalized
}
