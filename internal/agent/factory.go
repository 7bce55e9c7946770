package agent

import (
	"context"
	"fmt"
	"net/http"

	"bear-reply/backend/internal/agent/deps"
	"bear-reply/backend/internal/config"

	"google.golang.org/genai"
)

// NewGenerator creates the generation backend selected by cfg.
// BackendTimeout bounds every backend call on both backends.
func NewGenerator(ctx context.Context, cfg *config.Config) (deps.Generator, error) {
	switch cfg.Backend {
	case config.BackendOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		httpClient := &http.Client{Timeout: cfg.BackendTimeout}
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.Model, cfg.OpenAIBaseURL, httpClient), nil
	case config.BackendGemini:
		var opts genai.HTTPOptions
		if cfg.BackendTimeout > 0 {
			opts.Timeout = genai.Ptr(cfg.BackendTimeout)
		}
		return NewGeminiLLMClientFromKey(ctx, cfg.GeminiAPIKey, cfg.Model, opts)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
