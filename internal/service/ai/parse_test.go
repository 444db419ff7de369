package ai

import (
	"reflect"
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "no fence", raw: `{"a":"b"}`, want: `{"a":"b"}`},
		{name: "plain fence", raw: "```\n{\"a\":\"b\"}\n```", want: `{"a":"b"}`},
		{name: "json language tag", raw: "```json\n{\"a\":\"b\"}\n```", want: `{"a":"b"}`},
		{name: "surrounding whitespace", raw: "  ```json\n{}\n```  ", want: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFence(tt.raw); got != tt.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseFieldMap(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
	}{
		{name: "json object", raw: `{"Summary": "An event"}`, wantOK: true},
		{name: "fenced json object", raw: "```json\n{\"Summary\": \"An event\"}\n```", wantOK: true},
		{name: "free text", raw: "The event will be great.", wantOK: false},
		{name: "json array is not a field map", raw: `["a", "b"]`, wantOK: false},
		{name: "empty object", raw: `{}`, wantOK: false},
		{name: "empty string", raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, ok := parseFieldMap(tt.raw)
			if ok != tt.wantOK {
				t.Errorf("parseFieldMap(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && len(fields) == 0 {
				t.Error("parseFieldMap returned ok with empty map")
			}
		})
	}
}

func TestParseFieldMapMixedValueShapes(t *testing.T) {
	fields, ok := parseFieldMap(`{"Title": "Summit", "Headcount": 300, "Tracks": ["AI", "Cloud"]}`)
	if !ok {
		t.Fatal("parseFieldMap failed on valid object")
	}
	if got := fields["Headcount"].Canonical(); got != "300" {
		t.Errorf("Headcount = %q, want %q", got, "300")
	}
	if got := fields["Tracks"].Canonical(); got != `["AI","Cloud"]` {
		t.Errorf("Tracks = %q, want %q", got, `["AI","Cloud"]`)
	}
}

func TestParseStringList(t *testing.T) {
	list, ok := parseStringList("```json\n[\"first\", \"second\"]\n```")
	if !ok {
		t.Fatal("parseStringList failed on valid array")
	}
	if !reflect.DeepEqual(list, []string{"first", "second"}) {
		t.Errorf("list = %v", list)
	}

	if _, ok := parseStringList("not json"); ok {
		t.Error("parseStringList accepted free text")
	}
}
