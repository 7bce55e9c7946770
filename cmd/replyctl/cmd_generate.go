package main

import (
	"encoding/json"
	"strings"

	"bear-reply/backend/internal/agent"
	"bear-reply/backend/internal/agent/preset"
	"bear-reply/backend/internal/model"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <post text>",
	Short: "Generate one reply with the configured backend",
	Long:  `Calls the backend selected by REPLY_BACKEND (or whichever API key is set) and prints {"reply","preset"} as JSON.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := preset.Load(cfg.PresetsFile)
	if err != nil {
		return err
	}
	seed, err := parseSeed(seedFlag)
	if err != nil {
		return err
	}

	generator, err := agent.NewGenerator(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	replier := agent.NewReplier(preset.NewSelector(catalog, nil), generator, cfg.Model)

	result, err := replier.Reply(cmd.Context(), model.ReplyRequest{
		PostText: strings.Join(args, " "),
		PostURL:  urlFlag,
		Preset:   presetFlag,
		Seed:     seed,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}
