package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PRESETS_FILE", "")
	seedFlag, presetFlag, urlFlag, presetsFile = "", "", "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)

	assert.Contains(t, out, "respectful_pro (default)")
	assert.Contains(t, out, "bear_shout")
	assert.Contains(t, out, "rotation: 0:respectful_pro 1:funny_playful 2:alpha_lite 3:crypto")
}

func TestResolveCommand(t *testing.T) {
	out, err := execute(t, "resolve", "rotate", "--seed", "2")
	require.NoError(t, err)
	assert.Equal(t, "alpha_lite\n", out)

	out, err = execute(t, "resolve", "unknown")
	require.NoError(t, err)
	assert.Equal(t, "respectful_pro\n", out)

	_, err = execute(t, "resolve", "rotate", "--seed", "abc")
	assert.ErrorContains(t, err, "invalid --seed")
}

func TestPromptCommand(t *testing.T) {
	out, err := execute(t, "prompt", "--preset", "gm", "--url", "https://x.com/p/1", "gm", "frens")
	require.NoError(t, err)

	assert.Contains(t, out, "--- 1 [system]")
	assert.Contains(t, out, "--- 3 [user]")
	assert.Contains(t, out, "Original post:\ngm frens\nPermalink: https://x.com/p/1\nPreset: gm")

	_, err = execute(t, "prompt", "   ")
	assert.Error(t, err)
}
