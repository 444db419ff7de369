package brief

import (
	"encoding/json"
	"reflect"
	"testing"

	"briefd/internal/domain/models"
)

func fieldMapFromJSON(t *testing.T, raw string) models.FieldMap {
	t.Helper()
	var fields models.FieldMap
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		t.Fatalf("Unmarshal(%s): %v", raw, err)
	}
	return fields
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		json string
		want map[string]string
	}{
		{
			name: "strings pass through",
			json: `{"Executive Sponsor": "Jane Doe"}`,
			want: map[string]string{"Executive Sponsor": "Jane Doe"},
		},
		{
			name: "null becomes empty string",
			json: `{"Notes": null}`,
			want: map[string]string{"Notes": ""},
		},
		{
			name: "scalars rendered plainly",
			json: `{"Headcount": 250, "Confirmed": true}`,
			want: map[string]string{"Headcount": "250", "Confirmed": "true"},
		},
		{
			name: "composites collapse to JSON",
			json: `{"Speakers": ["a", "b"], "Venue": {"city": "Austin"}}`,
			want: map[string]string{"Speakers": `["a","b"]`, "Venue": `{"city":"Austin"}`},
		},
		{
			name: "empty map",
			json: `{}`,
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(fieldMapFromJSON(t, tt.json))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Normalizing the output of Normalize is a no-op: already-string
// values keep their exact form.
func TestNormalizeIdempotent(t *testing.T) {
	first := Normalize(fieldMapFromJSON(t,
		`{"a": null, "b": 1.5, "c": ["x"], "d": {"k": "v"}, "e": "plain"}`))

	again := make(models.FieldMap, len(first))
	for name, value := range first {
		again[name] = models.StringValue(value)
	}
	second := Normalize(again)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalize not idempotent: %v != %v", first, second)
	}
}
