package prompt

import (
	"errors"
	"strings"

	"bear-reply/backend/internal/agent/deps"
	"bear-reply/backend/internal/agent/preset"
)

// ErrEmptyPostText is returned when there is no post to reply to
var ErrEmptyPostText = errors.New("missing postText")

// Builder constructs prompts for the generation backend
type Builder struct {
	catalog *preset.Catalog
}

// NewBuilder creates a new prompt builder
func NewBuilder(catalog *preset.Catalog) *Builder {
	return &Builder{catalog: catalog}
}

// Build returns the three prompt blocks in order: preset directive,
// invariant rules, user content. postText must be non-blank.
func (b *Builder) Build(postText, postURL string, id preset.ID) ([]deps.Message, error) {
	if strings.TrimSpace(postText) == "" {
		return nil, ErrEmptyPostText
	}

	def := b.catalog.Definition(id)

	return []deps.Message{
		{Role: deps.RoleSystem, Content: def.Directive},
		{Role: deps.RoleSystem, Content: RulesPrompt},
		{Role: deps.RoleUser, Content: BuildUserContent(postText, strings.TrimSpace(postURL), id)},
	}, nil
}
