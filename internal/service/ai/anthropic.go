package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider implements Provider for Claude models.
type AnthropicProvider struct {
	client *anthropic.Client
}

// NewAnthropicProvider creates a new Anthropic provider with the given API key.
func NewAnthropicProvider(apiKey string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	return &AnthropicProvider{client: &client}, nil
}

// Name returns the provider name.
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// SupportsModel returns true if this provider supports the given model.
// Anthropic models start with "claude-"
func (p *AnthropicProvider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "claude-")
}

// Complete returns Claude's text response for the prompt.
func (p *AnthropicProvider) Complete(ctx context.Context, req *CompletionRequest) (string, error) {
	params := p.baseParams(req.Model, req.System, req.MaxTokens)
	params.Messages = []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	return collectText(message), nil
}

// CompleteWithFile sends the prompt plus a file attachment. Images go
// as image blocks, PDFs as document blocks; other mime types are not
// accepted by the attachment API.
func (p *AnthropicProvider) CompleteWithFile(ctx context.Context, req *FileCompletionRequest) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(req.FileData)

	var fileBlock anthropic.ContentBlockParamUnion
	switch {
	case strings.HasPrefix(req.MimeType, "image/"):
		fileBlock = anthropic.NewImageBlockBase64(req.MimeType, encoded)
	case req.MimeType == "application/pdf":
		fileBlock = anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{Data: encoded})
	default:
		return "", fmt.Errorf("unsupported attachment mime type %q", req.MimeType)
	}

	params := p.baseParams(req.Model, req.System, req.MaxTokens)
	params.Messages = []anthropic.MessageParam{
		anthropic.NewUserMessage(fileBlock, anthropic.NewTextBlock(req.Prompt)),
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	return collectText(message), nil
}

func (p *AnthropicProvider) baseParams(model, system string, maxTokens int) anthropic.MessageNewParams {
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(maxTokens),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{
			{Type: "text", Text: system},
		}
	}
	return params
}

func collectText(message *anthropic.Message) string {
	var out strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	return out.String()
}
