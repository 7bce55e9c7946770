package agent

import (
	"context"
	"log"
	"strings"
	"time"

	"bear-reply/backend/internal/agent/deps"
	"bear-reply/backend/internal/agent/preset"
	"bear-reply/backend/internal/agent/prompt"
	"bear-reply/backend/internal/agent/sanitize"
	"bear-reply/backend/internal/model"
)

// ErrMissingPostText is returned for requests without post text
var ErrMissingPostText = prompt.ErrEmptyPostText

// Replier turns a post into one sanitized reply. It holds no per-request
// state and is safe for concurrent use.
type Replier struct {
	selector      *preset.Selector
	promptBuilder *prompt.Builder
	generator     deps.Generator
	model         string
}

// NewReplier creates a Replier. model may be empty to use the backend default.
func NewReplier(selector *preset.Selector, generator deps.Generator, model string) *Replier {
	return &Replier{
		selector:      selector,
		promptBuilder: prompt.NewBuilder(selector.Catalog()),
		generator:     generator,
		model:         model,
	}
}

// Backend returns the generation backend name
func (r *Replier) Backend() string {
	return r.generator.Name()
}

// Prepare validates the request, resolves the preset and builds the prompt
// without calling the backend
func (r *Replier) Prepare(req model.ReplyRequest) (preset.ID, []deps.Message, error) {
	if strings.TrimSpace(req.PostText) == "" {
		return "", nil, ErrMissingPostText
	}

	presetID := r.selector.Resolve(req.Preset, req.Seed)
	messages, err := r.promptBuilder.Build(req.PostText, req.PostURL, presetID)
	if err != nil {
		return "", nil, err
	}
	return presetID, messages, nil
}

// Reply generates a reply for req. Validation failures return
// ErrMissingPostText before the backend is called; backend failures are
// returned as *deps.BackendError.
func (r *Replier) Reply(ctx context.Context, req model.ReplyRequest) (*model.ReplyResult, error) {
	presetID, messages, err := r.Prepare(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := r.generator.Generate(ctx, r.model, messages)
	if err != nil {
		be := deps.AsBackendError(r.generator.Name(), err)
		log.Printf("[REPLY] %s failed after %v preset=%s status=%d: %s",
			r.generator.Name(), time.Since(start), presetID, be.StatusCode, be.Message)
		return nil, be
	}

	reply := sanitize.Reply(raw)
	log.Printf("[REPLY] %s completed in %v preset=%s words=%d",
		r.generator.Name(), time.Since(start), presetID, len(strings.Fields(reply)))

	return &model.ReplyResult{
		Reply:  reply,
		Preset: string(presetID),
	}, nil
}
