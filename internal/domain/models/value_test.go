package models

import (
	"encoding/json"
	"testing"
)

func TestValueUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		wantKind ValueKind
	}{
		{name: "null", json: `null`, wantKind: KindNull},
		{name: "string", json: `"hello"`, wantKind: KindString},
		{name: "number", json: `42.5`, wantKind: KindNumber},
		{name: "bool", json: `true`, wantKind: KindBool},
		{name: "object", json: `{"a": 1}`, wantKind: KindObject},
		{name: "list", json: `[1, 2, 3]`, wantKind: KindList},
		{name: "nested", json: `{"a": {"b": ["c"]}}`, wantKind: KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.json), &v); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.json, err)
			}
			if v.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", v.Kind, tt.wantKind)
			}
		})
	}
}

func TestValueCanonical(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{name: "null becomes empty string", json: `null`, want: ""},
		{name: "string unchanged", json: `"Jane Doe"`, want: "Jane Doe"},
		{name: "integer number without trailing zeros", json: `42`, want: "42"},
		{name: "fractional number", json: `3.25`, want: "3.25"},
		{name: "bool", json: `false`, want: "false"},
		{name: "object becomes JSON", json: `{"a":"b"}`, want: `{"a":"b"}`},
		{name: "list becomes JSON", json: `["x","y"]`, want: `["x","y"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.json), &v); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.json, err)
			}
			if got := v.Canonical(); got != tt.want {
				t.Errorf("Canonical() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueRoundTrip(t *testing.T) {
	in := `{"speakers":["a","b"],"count":2,"confirmed":true,"venue":{"city":"Austin"}}`

	var v Value
	if err := json.Unmarshal([]byte(in), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var a, b interface{}
	if err := json.Unmarshal([]byte(in), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(out, &b); err != nil {
		t.Fatal(err)
	}
	if string(mustJSON(t, a)) != string(mustJSON(t, b)) {
		t.Errorf("round trip changed value: %s -> %s", in, out)
	}
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
