package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	loremgen "github.com/bozaro/golorem"
)

// LoremProvider is a mock provider that generates lorem ipsum
// content. Used for development and tests without real API keys.
type LoremProvider struct {
	generator *loremgen.Lorem
}

// NewLoremProvider creates a new lorem ipsum provider.
func NewLoremProvider() *LoremProvider {
	return &LoremProvider{generator: loremgen.New()}
}

// Name returns the provider name.
func (p *LoremProvider) Name() string {
	return "lorem"
}

// SupportsModel returns true if the model name starts with "lorem".
func (p *LoremProvider) SupportsModel(model string) bool {
	return IsLoremModel(model)
}

// Complete fabricates a response matching the shape the system prompt
// asks for: a JSON object for field-map prompts, a JSON array for
// suggestion prompts, plain sentences otherwise.
func (p *LoremProvider) Complete(ctx context.Context, req *CompletionRequest) (string, error) {
	if !p.SupportsModel(req.Model) {
		return "", fmt.Errorf("model %q is not supported by lorem provider", req.Model)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch {
	case strings.Contains(req.System, "JSON array"):
		out, _ := json.Marshal([]string{
			p.generator.Sentence(2, 5),
			p.generator.Sentence(2, 5),
			p.generator.Sentence(2, 5),
		})
		return string(out), nil
	case strings.Contains(req.System, "JSON object"):
		out, _ := json.Marshal(map[string]string{
			"Summary":    p.generator.Sentence(5, 12),
			"Key Points": p.generator.Sentence(5, 12),
		})
		return string(out), nil
	default:
		return p.generator.Paragraph(2, 4), nil
	}
}

// CompleteWithFile behaves like Complete; the attachment is ignored.
func (p *LoremProvider) CompleteWithFile(ctx context.Context, req *FileCompletionRequest) (string, error) {
	return p.Complete(ctx, &CompletionRequest{
		Model:     req.Model,
		System:    req.System,
		Prompt:    req.Prompt,
		MaxTokens: req.MaxTokens,
	})
}
