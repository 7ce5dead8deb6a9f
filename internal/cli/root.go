// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kosiew/magpie/internal/config"
	"github.com/kosiew/magpie/internal/ui"
)

var (
	// Global flags
	configPathFlag string
	prettyOutput   bool

	// Resolved values
	cfg   *config.Config
	rules config.Rules
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mgp",
	Short: "Magpie - clipboard and journal transforms for launcher workflows",
	Long: `Magpie collects small text transformations behind one binary, built to
sit inside launcher (Alfred-style) workflows: each subcommand reads an
entry from the environment or its arguments, transforms it, and writes
a JSON envelope to stdout for the next workflow node.

Named for the bird that hoards small shiny things.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}

		var err error
		if configPathFlag != "" {
			cfg, err = config.LoadFrom(configPathFlag)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		rules, err = config.LoadRules()
		if err != nil {
			// Rules degrade to defaults; the warning goes to stderr so
			// the Alfred payload stays clean.
			ui.Warnf("using default rules: %v", err)
		}

		ui.SetAccent(cfg.UI.Accent)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&prettyOutput, "pretty", false, "Render for the terminal instead of emitting the workflow envelope")
}
