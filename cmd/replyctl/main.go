// Command replyctl inspects the preset catalog and generates replies from
// the command line using the same configuration as the server.
package main

import (
	"fmt"
	"os"

	"bear-reply/backend/internal/agent/preset"
	"bear-reply/backend/internal/config"

	"github.com/spf13/cobra"
)

var presetsFile string

var rootCmd = &cobra.Command{
	Use:           "replyctl",
	Short:         "Inspect presets and generate replies",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&presetsFile, "presets", "", "preset catalog YAML (default: $PRESETS_FILE or builtin)")
	rootCmd.AddCommand(presetsCmd, resolveCmd, promptCmd, generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads .env.local and the environment; --presets wins over PRESETS_FILE
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(".env.local")
	if err != nil {
		return nil, err
	}
	if presetsFile != "" {
		cfg.PresetsFile = presetsFile
	}
	return cfg, nil
}

func loadCatalog() (*preset.Catalog, error) {
	path := presetsFile
	if path == "" {
		path = os.Getenv("PRESETS_FILE")
	}
	return preset.Load(path)
}
