package agent

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"bear-reply/backend/internal/agent/deps"
	"bear-reply/backend/internal/agent/preset"
	"bear-reply/backend/internal/agent/prompt"
	"bear-reply/backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply    string
	err      error
	calls    int
	model    string
	messages []deps.Message
}

func (f *fakeGenerator) Name() string { return "fake" }

func (f *fakeGenerator) Generate(ctx context.Context, model string, messages []deps.Message) (string, error) {
	f.calls++
	f.model = model
	f.messages = messages
	return f.reply, f.err
}

func newTestReplier(gen deps.Generator) *Replier {
	return NewReplier(preset.NewSelector(preset.Builtin(), func(int) int { return 0 }), gen, "test-model")
}

func ptr(v float64) *float64 { return &v }

func TestReply_Success(t *testing.T) {
	gen := &fakeGenerator{reply: "  gm gm fren #gm, stacking @BEARXRPL $BEAR today ☀️ #BEAR "}
	r := newTestReplier(gen)

	res, err := r.Reply(context.Background(), model.ReplyRequest{PostText: "gm frens", Preset: "gm"})
	require.NoError(t, err)

	assert.Equal(t, "gm gm fren stacking @BEARXRPL $BEAR today ☀️", res.Reply)
	assert.Equal(t, "gm", res.Preset)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "test-model", gen.model)
	require.Len(t, gen.messages, 3)
	assert.Contains(t, gen.messages[2].Content, "Preset: gm")
}

// Word bounds, brand tokens and the no-hashtag rule for a short preset,
// using a backend that answers the way the directive asks.
func TestReply_ShortPresetEndToEnd(t *testing.T) {
	gen := &fakeGenerator{reply: "GMGM frens ☕ stacking $BEAR with @BEARXRPL #gm"}
	r := newTestReplier(gen)

	res, err := r.Reply(context.Background(), model.ReplyRequest{PostText: "gm frens", Preset: "gm"})
	require.NoError(t, err)

	def, _ := preset.Builtin().Lookup(res.Preset)
	words := len(strings.Fields(res.Reply))
	assert.GreaterOrEqual(t, words, def.MinWords)
	assert.LessOrEqual(t, words, def.MaxWords)
	assert.Contains(t, res.Reply, prompt.BrandHandle)
	assert.Contains(t, res.Reply, prompt.BrandTicker)
	assert.NotContains(t, res.Reply, "#")
}

func TestReply_EmptyPostTextSkipsBackend(t *testing.T) {
	gen := &fakeGenerator{reply: "unused"}
	r := newTestReplier(gen)

	for _, post := range []string{"", "   "} {
		res, err := r.Reply(context.Background(), model.ReplyRequest{PostText: post})
		assert.ErrorIs(t, err, ErrMissingPostText)
		assert.Nil(t, res)
	}
	assert.Zero(t, gen.calls)
}

func TestReply_RotateWithSeed(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	r := newTestReplier(gen)

	res, err := r.Reply(context.Background(), model.ReplyRequest{PostText: "hello", Preset: "rotate", Seed: ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, string(preset.Builtin().Rotation()[2]), res.Preset)
}

func TestReply_UnknownPresetFallsBack(t *testing.T) {
	r := newTestReplier(&fakeGenerator{reply: "ok"})

	res, err := r.Reply(context.Background(), model.ReplyRequest{PostText: "hello", Preset: "shouty"})
	require.NoError(t, err)
	assert.Equal(t, string(preset.RespectfulPro), res.Preset)
}

func TestReply_EmptyBackendText(t *testing.T) {
	r := newTestReplier(&fakeGenerator{reply: ""})

	res, err := r.Reply(context.Background(), model.ReplyRequest{PostText: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "", res.Reply)
}

func TestReply_BackendErrorPassesThrough(t *testing.T) {
	be := &deps.BackendError{Backend: "fake", StatusCode: http.StatusTooManyRequests, Message: "slow down"}
	r := newTestReplier(&fakeGenerator{err: be})

	res, err := r.Reply(context.Background(), model.ReplyRequest{PostText: "hello"})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, deps.ErrQuotaExceeded)

	var got *deps.BackendError
	require.True(t, errors.As(err, &got))
	assert.Same(t, be, got)
}

func TestReply_UnclassifiedErrorIsWrapped(t *testing.T) {
	r := newTestReplier(&fakeGenerator{err: context.DeadlineExceeded})

	_, err := r.Reply(context.Background(), model.ReplyRequest{PostText: "hello"})

	var be *deps.BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "fake", be.Backend)
	assert.Zero(t, be.StatusCode)
	assert.Equal(t, http.StatusInternalServerError, be.HTTPStatus())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, deps.ErrQuotaExceeded)
}
