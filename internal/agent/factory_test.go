package agent

import (
	"context"
	"testing"
	"time"

	"bear-reply/backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()

	gen, err := NewGenerator(ctx, &config.Config{Backend: config.BackendOpenAI, OpenAIAPIKey: "sk", BackendTimeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "openai", gen.Name())

	gen, err = NewGenerator(ctx, &config.Config{Backend: config.BackendGemini, GeminiAPIKey: "g", BackendTimeout: 5 * time.Second})
	require.NoError(t, err)
	require.IsType(t, &GeminiLLMClient{}, gen)
	timeout := gen.(*GeminiLLMClient).client.ClientConfig().HTTPOptions.Timeout
	require.NotNil(t, timeout)
	assert.Equal(t, 5*time.Second, *timeout)

	_, err = NewGenerator(ctx, &config.Config{Backend: config.BackendOpenAI})
	assert.ErrorContains(t, err, "OPENAI_API_KEY")

	_, err = NewGenerator(ctx, &config.Config{Backend: config.BackendGemini})
	assert.ErrorContains(t, err, "GEMINI_API_KEY")

	_, err = NewGenerator(ctx, &config.Config{Backend: "llama"})
	assert.ErrorContains(t, err, "unknown backend")
}
