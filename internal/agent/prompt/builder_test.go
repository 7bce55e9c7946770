package prompt

import (
	"testing"

	"bear-reply/backend/internal/agent/deps"
	"bear-reply/backend/internal/agent/preset"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	catalog := preset.Builtin()
	gm, _ := catalog.Lookup("gm")

	got, err := NewBuilder(catalog).Build("gm frens", "https://x.com/a/status/1", preset.GM)
	require.NoError(t, err)

	want := []deps.Message{
		{Role: deps.RoleSystem, Content: gm.Directive},
		{Role: deps.RoleSystem, Content: RulesPrompt},
		{Role: deps.RoleUser, Content: "Original post:\ngm frens\nPermalink: https://x.com/a/status/1\nPreset: gm\nTask: ONE reply only. Text only."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_WithoutPermalink(t *testing.T) {
	got, err := NewBuilder(preset.Builtin()).Build("big news today", "  ", preset.Crypto)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Original post:\nbig news today\nPreset: crypto\nTask: ONE reply only. Text only.", got[2].Content)
	assert.NotContains(t, got[2].Content, "Permalink")
}

func TestBuild_KeepsPostTextLiteral(t *testing.T) {
	post := "  line one\n\nline two #tag  "
	got, err := NewBuilder(preset.Builtin()).Build(post, "", preset.GN)
	require.NoError(t, err)
	assert.Contains(t, got[2].Content, post)
}

func TestBuild_EmptyPostText(t *testing.T) {
	b := NewBuilder(preset.Builtin())
	for _, post := range []string{"", "   ", "\n\t"} {
		msgs, err := b.Build(post, "", preset.GM)
		assert.ErrorIs(t, err, ErrEmptyPostText)
		assert.Nil(t, msgs)
	}
}

func TestBuild_UnknownPresetUsesDefaultDirective(t *testing.T) {
	catalog := preset.Builtin()
	got, err := NewBuilder(catalog).Build("hi", "", "nope")
	require.NoError(t, err)
	assert.Equal(t, catalog.Definition(catalog.DefaultID()).Directive, got[0].Content)
}

func TestRulesPrompt(t *testing.T) {
	assert.Contains(t, RulesPrompt, "exactly ONE reply")
	assert.Contains(t, RulesPrompt, "No hashtags or links")
	assert.Contains(t, RulesPrompt, BrandHandle)
	assert.Contains(t, RulesPrompt, BrandTicker)
	assert.Contains(t, RulesPrompt, "respectful")
}
