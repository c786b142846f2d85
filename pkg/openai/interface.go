package openai

import (
	"context"
	"fmt"
	"time"

	pkghttp "sayyes-srv/pkg/http"
)

// IOpenAI defines the interface for OpenAI text generation.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// NewOpenAI creates a new OpenAI client. Model defaults to DefaultModel if empty.
// APIKey must be set.
func NewOpenAI(cfg OpenAIConfig) (IOpenAI, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	return &openaiImpl{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   60 * time.Second,
			Retries:   3,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}
