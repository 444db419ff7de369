package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"briefd/internal/domain"
	"briefd/internal/domain/models"
	"briefd/internal/domain/services"
)

// ExtractedContentField is the catch-all field the whole provider
// response is wrapped into when it does not parse as a field map, so
// no information is silently lost.
const ExtractedContentField = "Extracted Content"

const defaultMaxTokens = 4096

// Client implements services.AIClient over a provider registry.
// It is stateless per call; each call type runs under its named
// conversation identity.
type Client struct {
	registry *Registry
	convs    map[string]Conversation
	logger   *slog.Logger
}

// NewClient creates a new AI client. defaultModel selects the model
// used for all conversation identities.
func NewClient(registry *Registry, defaultModel string, logger *slog.Logger) *Client {
	return &Client{
		registry: registry,
		convs:    conversations(defaultModel),
		logger:   logger.With("component", "ai_client"),
	}
}

// ExtractStructured asks the provider to break extracted document
// text into fields for the named section. An unparsable response is
// wrapped as a single catch-all field, never discarded.
func (c *Client) ExtractStructured(ctx context.Context, sectionName, text string) (models.FieldMap, error) {
	conv := c.convs[convDocumentAnalysis]

	prompt := fmt.Sprintf(
		"Target section: %q.\n\nExtract field values for this section from the "+
			"document text below. Return a JSON object mapping field names to "+
			"string values.\n\n---\n%s",
		sectionName, text,
	)

	raw, err := c.complete(ctx, conv, prompt)
	if err != nil {
		return nil, err
	}

	fields, ok := parseFieldMap(raw)
	if !ok {
		c.logger.Debug("provider response not parsable as field map, wrapping as raw text",
			"conversation", conv.ID,
			"section", sectionName,
		)
		return models.FieldMap{ExtractedContentField: models.StringValue(raw)}, nil
	}
	return fields, nil
}

// AnalyzeFile sends the raw file plus mime type to the provider's
// attachment-capable path and returns the free-text response.
func (c *Client) AnalyzeFile(ctx context.Context, filePath, mimeType, prompt string) (string, error) {
	conv := c.convs[convDocumentAnalysis]

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read file for analysis: %w", err)
	}

	provider, err := c.registry.ForModel(conv.Model)
	if err != nil {
		return "", &domain.ProviderError{Message: err.Error()}
	}

	raw, err := provider.CompleteWithFile(ctx, &FileCompletionRequest{
		Model:     conv.Model,
		System:    conv.System,
		Prompt:    prompt,
		MaxTokens: defaultMaxTokens,
		FileData:  data,
		MimeType:  mimeType,
	})
	if err != nil {
		return "", &domain.ProviderError{Message: fmt.Sprintf("file analysis failed: %v", err)}
	}
	return raw, nil
}

// GenerateSection synthesizes field values for a section from the
// given context map and optional free-form prompt.
func (c *Client) GenerateSection(ctx context.Context, sectionName string, contextData map[string]interface{}, prompt string) (models.FieldMap, error) {
	conv := c.convs[convSectionGeneration]

	contextJSON, err := json.Marshal(contextData)
	if err != nil {
		return nil, fmt.Errorf("marshal generation context: %w", err)
	}

	fullPrompt := fmt.Sprintf(
		"Draft content for the brief section %q.\nContext: %s",
		sectionName, contextJSON,
	)
	if prompt != "" {
		fullPrompt += "\nInstructions: " + prompt
	}

	raw, err := c.complete(ctx, conv, fullPrompt)
	if err != nil {
		return nil, err
	}

	fields, ok := parseFieldMap(raw)
	if !ok {
		return models.FieldMap{ExtractedContentField: models.StringValue(raw)}, nil
	}
	return fields, nil
}

// SuggestFields proposes candidate values for a single field.
func (c *Client) SuggestFields(ctx context.Context, fieldName string, contextData map[string]interface{}) ([]string, error) {
	conv := c.convs[convFieldSuggestions]

	contextJSON, err := json.Marshal(contextData)
	if err != nil {
		return nil, fmt.Errorf("marshal suggestion context: %w", err)
	}

	prompt := fmt.Sprintf(
		"Suggest values for the brief field %q.\nContext: %s",
		fieldName, contextJSON,
	)

	raw, err := c.complete(ctx, conv, prompt)
	if err != nil {
		return nil, err
	}

	if suggestions, ok := parseStringList(raw); ok {
		return suggestions, nil
	}
	// Keep the raw text as a single suggestion rather than dropping it.
	return []string{raw}, nil
}

func (c *Client) complete(ctx context.Context, conv Conversation, prompt string) (string, error) {
	provider, err := c.registry.ForModel(conv.Model)
	if err != nil {
		return "", &domain.ProviderError{Message: err.Error()}
	}

	raw, err := provider.Complete(ctx, &CompletionRequest{
		Model:     conv.Model,
		System:    conv.System,
		Prompt:    prompt,
		MaxTokens: defaultMaxTokens,
	})
	if err != nil {
		return "", &domain.ProviderError{Message: fmt.Sprintf("%s call failed: %v", conv.ID, err)}
	}
	return raw, nil
}

var _ services.AIClient = (*Client)(nil)
