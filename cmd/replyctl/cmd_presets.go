package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"bear-reply/backend/internal/agent/preset"
	"bear-reply/backend/internal/agent/prompt"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the preset catalog and rotation order",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <preset>",
	Short: "Show which preset a request would use",
	Long:  `Resolves a preset name the way the server does. Use --seed with "rotate" to pin the rotation.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

var promptCmd = &cobra.Command{
	Use:   "prompt <post text>",
	Short: "Print the prompt blocks that would be sent to the backend",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPrompt,
}

var (
	seedFlag   string
	presetFlag string
	urlFlag    string
)

func init() {
	resolveCmd.Flags().StringVar(&seedFlag, "seed", "", "rotation seed")
	for _, cmd := range []*cobra.Command{promptCmd, generateCmd} {
		cmd.Flags().StringVar(&presetFlag, "preset", "", "preset name or \"rotate\" (default: catalog default)")
		cmd.Flags().StringVar(&seedFlag, "seed", "", "rotation seed")
		cmd.Flags().StringVar(&urlFlag, "url", "", "permalink of the original post")
	}
}

func runPresets(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWORDS\tEMOJI\tDIRECTIVE")
	for _, def := range catalog.All() {
		id := string(def.ID)
		if def.ID == catalog.DefaultID() {
			id += " (default)"
		}
		fmt.Fprintf(w, "%s\t%d-%d\t%d\t%s\n", id, def.MinWords, def.MaxWords, def.MaxEmoji, def.Directive)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	rotation := make([]string, 0, len(catalog.Rotation()))
	for i, id := range catalog.Rotation() {
		rotation = append(rotation, fmt.Sprintf("%d:%s", i, id))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nrotation: %s\n", strings.Join(rotation, " "))
	return nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	seed, err := parseSeed(seedFlag)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), preset.NewSelector(catalog, nil).Resolve(args[0], seed))
	return nil
}

func runPrompt(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	seed, err := parseSeed(seedFlag)
	if err != nil {
		return err
	}

	id := preset.NewSelector(catalog, nil).Resolve(presetFlag, seed)
	messages, err := prompt.NewBuilder(catalog).Build(strings.Join(args, " "), urlFlag, id)
	if err != nil {
		return err
	}
	for i, m := range messages {
		fmt.Fprintf(cmd.OutOrStdout(), "--- %d [%s]\n%s\n", i+1, m.Role, m.Content)
	}
	return nil
}

// parseSeed returns nil for an empty flag so rotation stays random
func parseSeed(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --seed %q: %w", s, err)
	}
	return &v, nil
}
