package ai

import (
	"context"
	"fmt"
	"strings"
)

// CompletionRequest is one text-completion call to a provider.
type CompletionRequest struct {
	Model     string
	System    string
	Prompt    string
	MaxTokens int
}

// FileCompletionRequest is a completion call carrying a raw file
// attachment, for content the local extractors cannot read.
type FileCompletionRequest struct {
	Model     string
	System    string
	Prompt    string
	MaxTokens int
	FileData  []byte
	MimeType  string
}

// Provider is the boundary to one text-generation vendor.
type Provider interface {
	// Complete returns the provider's text response for the prompt.
	Complete(ctx context.Context, req *CompletionRequest) (string, error)

	// CompleteWithFile sends the prompt plus a file attachment.
	CompleteWithFile(ctx context.Context, req *FileCompletionRequest) (string, error)

	// Name returns the provider name (e.g. "anthropic")
	Name() string

	// SupportsModel returns true if the provider serves the model.
	SupportsModel(model string) bool
}

// Registry resolves models to providers.
type Registry struct {
	providers []Provider
}

// NewRegistry creates a provider registry.
func NewRegistry(providers ...Provider) *Registry {
	return &Registry{providers: providers}
}

// Register adds a provider.
func (r *Registry) Register(p Provider) {
	r.providers = append(r.providers, p)
}

// ForModel returns the first provider supporting the model.
func (r *Registry) ForModel(model string) (Provider, error) {
	for _, p := range r.providers {
		if p.SupportsModel(model) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no provider registered for model %q", model)
}

// IsLoremModel reports whether the model belongs to the deterministic
// dev provider.
func IsLoremModel(model string) bool {
	return strings.HasPrefix(model, "lorem")
}
