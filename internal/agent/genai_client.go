package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bear-reply/backend/internal/agent/deps"

	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiLLMClient implements deps.Generator using the Gemini API
type GeminiLLMClient struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
}

// NewGeminiLLMClient creates a new GeminiLLMClient
func NewGeminiLLMClient(client *genai.Client, model string) *GeminiLLMClient {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiLLMClient{
		client:          client,
		model:           model,
		temperature:     0.8,
		maxOutputTokens: 256,
	}
}

// NewGeminiLLMClientFromKey creates the genai client and wraps it.
// httpOptions carries the per-request timeout and endpoint overrides.
func NewGeminiLLMClientFromKey(ctx context.Context, apiKey, model string, httpOptions genai.HTTPOptions) (*GeminiLLMClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return NewGeminiLLMClient(client, model), nil
}

// Name returns the backend name
func (c *GeminiLLMClient) Name() string {
	return "gemini"
}

// Generate sends system blocks as the system instruction and the remaining
// blocks as user content
func (c *GeminiLLMClient) Generate(ctx context.Context, model string, messages []deps.Message) (string, error) {
	if model == "" {
		model = c.model
	}

	var systemParts []*genai.Part
	var contents []*genai.Content
	for _, m := range messages {
		if m.Role == deps.RoleSystem {
			systemParts = append(systemParts, &genai.Part{Text: m.Content})
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.temperature),
		MaxOutputTokens: c.maxOutputTokens,
	}
	if len(systemParts) > 0 {
		config.SystemInstruction = &genai.Content{Parts: systemParts}
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	// Extract text from response
	var sb strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" && !part.Thought {
				sb.WriteString(part.Text)
			}
		}
	}
	return sb.String(), nil
}

// classifyGeminiError converts genai and gRPC failures into a BackendError
func classifyGeminiError(err error) *deps.BackendError {
	be := &deps.BackendError{Backend: "gemini", Message: err.Error(), Err: err}

	if deps.IsTimeout(err) {
		be.StatusCode = http.StatusGatewayTimeout
		return be
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		be.StatusCode = apiErr.Code
		if apiErr.Message != "" {
			be.Message = apiErr.Message
		}
		return be
	}

	// Check for gRPC ResourceExhausted status
	if s, ok := status.FromError(err); ok {
		if s.Code() == codes.ResourceExhausted {
			be.StatusCode = http.StatusTooManyRequests
		}
		if s.Message() != "" {
			be.Message = s.Message()
		}
		return be
	}

	if isRateLimitMessage(err.Error()) {
		be.StatusCode = http.StatusTooManyRequests
	}
	return be
}

// isRateLimitMessage is the string-matching fallback for wrapped errors
func isRateLimitMessage(errStr string) bool {
	return strings.Contains(errStr, "ResourceExhausted") ||
		strings.Contains(errStr, "RESOURCE_EXHAUSTED") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "quota")
}
