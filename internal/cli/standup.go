package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kosiew/magpie/internal/alfred"
	"github.com/kosiew/magpie/internal/journal"
	"github.com/kosiew/magpie/internal/standup"
)

var standupCmd = &cobra.Command{
	Use:   "standup",
	Short: "Summarize the weekly note for standup",
	Long: `Rewrite the copied checklist lines into plain standup bullets,
dropping checkboxes and timestamps and unwrapping redirect links.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := alfred.Entry(args)
		out := standup.Daily(text)
		return emitMarkdown(alfred.NewEnvelope(out, "Standup summary copied", "Success"))
	},
}

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Build the weekly update from checklist lines",
	Long: `Consolidate the copied checklist lines into a weekly update:
repeated task descriptions collapse into one markdown line carrying
every collected link.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := alfred.Entry(args)
		out := standup.Weekly(text)
		return emitMarkdown(alfred.NewEnvelope(out, "Weekly summary copied", "Success"))
	},
}

var weeklyRolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Archive the weekly note into the history file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Notebook == "" || cfg.History == "" {
			return fmt.Errorf("notebook and history paths must be configured")
		}
		if err := journal.Rollover(cfg.Notebook, cfg.History, time.Now()); err != nil {
			return err
		}
		return emit(alfred.NewEnvelope("", "Weekly note archived", "Rollover"))
	},
}

func init() {
	weeklyCmd.AddCommand(weeklyRolloverCmd)
	rootCmd.AddCommand(standupCmd)
	rootCmd.AddCommand(weeklyCmd)
}
