package ai

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"briefd/internal/domain"
)

// scriptedProvider returns a fixed response (or error) for any call.
type scriptedProvider struct {
	response string
	err      error
}

func (p *scriptedProvider) Complete(ctx context.Context, req *CompletionRequest) (string, error) {
	return p.response, p.err
}

func (p *scriptedProvider) CompleteWithFile(ctx context.Context, req *FileCompletionRequest) (string, error) {
	return p.response, p.err
}

func (p *scriptedProvider) Name() string                    { return "scripted" }
func (p *scriptedProvider) SupportsModel(model string) bool { return true }

func newTestClient(p Provider) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(NewRegistry(p), "scripted-model", logger)
}

func TestExtractStructuredParsesFieldMap(t *testing.T) {
	client := newTestClient(&scriptedProvider{
		response: `{"Executive Sponsor": "Jane Doe", "Budget": 50000}`,
	})

	fields, err := client.ExtractStructured(context.Background(), "Event Overview", "some text")
	if err != nil {
		t.Fatalf("ExtractStructured: %v", err)
	}
	if got := fields["Executive Sponsor"].Canonical(); got != "Jane Doe" {
		t.Errorf("Executive Sponsor = %q", got)
	}
	if got := fields["Budget"].Canonical(); got != "50000" {
		t.Errorf("Budget = %q", got)
	}
}

// A non-JSON provider response is wrapped as a single catch-all
// field, never surfaced as an error.
func TestExtractStructuredUnparsableResponse(t *testing.T) {
	raw := "The sponsor appears to be Jane Doe."
	client := newTestClient(&scriptedProvider{response: raw})

	fields, err := client.ExtractStructured(context.Background(), "Event Overview", "some text")
	if err != nil {
		t.Fatalf("ExtractStructured: %v", err)
	}
	if len(fields) != 1 {
		t.Fatalf("len(fields) = %d, want 1", len(fields))
	}
	if got := fields[ExtractedContentField].Canonical(); got != raw {
		t.Errorf("%s = %q, want %q", ExtractedContentField, got, raw)
	}
}

func TestExtractStructuredTransportError(t *testing.T) {
	client := newTestClient(&scriptedProvider{err: errors.New("connection refused")})

	_, err := client.ExtractStructured(context.Background(), "Event Overview", "text")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrProvider) {
		t.Errorf("error %v does not match ErrProvider", err)
	}
}

func TestGenerateSectionUnparsableResponse(t *testing.T) {
	client := newTestClient(&scriptedProvider{response: "Freeform draft."})

	fields, err := client.GenerateSection(context.Background(), "Goals & Objectives", nil, "")
	if err != nil {
		t.Fatalf("GenerateSection: %v", err)
	}
	if got := fields[ExtractedContentField].Canonical(); got != "Freeform draft." {
		t.Errorf("fallback field = %q", got)
	}
}

func TestSuggestFields(t *testing.T) {
	client := newTestClient(&scriptedProvider{response: `["Austin", "Denver"]`})

	suggestions, err := client.SuggestFields(context.Background(), "Venue", nil)
	if err != nil {
		t.Fatalf("SuggestFields: %v", err)
	}
	if len(suggestions) != 2 || suggestions[0] != "Austin" {
		t.Errorf("suggestions = %v", suggestions)
	}
}

func TestSuggestFieldsFreeTextFallback(t *testing.T) {
	client := newTestClient(&scriptedProvider{response: "Maybe Austin?"})

	suggestions, err := client.SuggestFields(context.Background(), "Venue", nil)
	if err != nil {
		t.Fatalf("SuggestFields: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0] != "Maybe Austin?" {
		t.Errorf("suggestions = %v", suggestions)
	}
}

func TestRegistryForModel(t *testing.T) {
	lorem := NewLoremProvider()
	registry := NewRegistry(lorem)

	if _, err := registry.ForModel("lorem"); err != nil {
		t.Errorf("ForModel(lorem): %v", err)
	}
	if _, err := registry.ForModel("claude-haiku-4-5"); err == nil {
		t.Error("ForModel(claude) should fail with only lorem registered")
	}
}
