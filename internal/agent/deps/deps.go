package deps

import (
	"context"
)

// Role tags a prompt block
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged prompt block
type Message struct {
	Role    Role
	Content string
}

// Generator abstracts the text-generation backend.
// Failures are reported as *BackendError so callers can classify them
// without knowing the backend's own error shape.
type Generator interface {
	// Name identifies the backend for logs and error messages
	Name() string
	// Generate returns the completion for messages. An empty model selects
	// the backend's configured default.
	Generate(ctx context.Context, model string, messages []Message) (string, error)
}
