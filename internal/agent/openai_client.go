package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bear-reply/backend/internal/agent/deps"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultOpenAIModel is used when no model is configured
	DefaultOpenAIModel = "gpt-4o-mini"
	// DefaultOpenAIBaseURL is the public OpenAI API
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
)

// OpenAIClient implements deps.Generator against the chat completions API
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAIClient. The http.Client's own
// timeout is the only deadline applied to backend calls.
func NewOpenAIClient(apiKey, model, baseURL string, httpClient *http.Client) *OpenAIClient {
	if model == "" {
		model = DefaultOpenAIModel
	}
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = strings.TrimRight(baseURL, "/")
	if httpClient != nil {
		config.HTTPClient = httpClient
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Name returns the backend name
func (o *OpenAIClient) Name() string {
	return "openai"
}

// Generate sends the blocks as chat messages and returns the first choice
func (o *OpenAIClient) Generate(ctx context.Context, model string, messages []deps.Message) (string, error) {
	if model == "" {
		model = o.model
	}

	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		if m.Role == deps.RoleSystem {
			role = openai.ChatMessageRoleSystem
		}
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &deps.BackendError{Backend: o.Name(), Message: "no response from OpenAI"}
	}

	return resp.Choices[0].Message.Content, nil
}

// classifyOpenAIError converts go-openai failures into a BackendError
func classifyOpenAIError(err error) *deps.BackendError {
	be := &deps.BackendError{Backend: "openai", Message: fmt.Sprintf("OpenAI request failed: %v", err), Err: err}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		be.StatusCode = apiErr.HTTPStatusCode
		if apiErr.Message != "" {
			be.Message = apiErr.Message
		}
		return be
	}

	// Non-JSON error bodies
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		be.StatusCode = reqErr.HTTPStatusCode
		be.Message = strings.TrimSpace(string(reqErr.Body))
		if be.Message == "" {
			be.Message = http.StatusText(reqErr.HTTPStatusCode)
		}
		return be
	}

	if deps.IsTimeout(err) {
		be.StatusCode = http.StatusGatewayTimeout
	}
	return be
}
