package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kosiew/magpie/internal/alfred"
	"github.com/kosiew/magpie/internal/journal"
	"github.com/kosiew/magpie/internal/llm"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Journal file helpers",
}

var journalMarkCmd = &cobra.Command{
	Use:   "mark",
	Short: "Append a day marker when the date changed",
	Long: `Append a " 2006-01-02 Mon" marker line to the journal when the
last timestamped entry is not from today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Journal == "" {
			return fmt.Errorf("journal path must be configured")
		}
		marked, err := journal.MarkNewDate(cfg.Journal, time.Now())
		if err != nil {
			return err
		}
		if marked {
			return emit(alfred.NewEnvelope("", "New day marked", "Journal"))
		}
		return emit(alfred.NewEnvelope("", "Already marked today", "Journal"))
	},
}

var journalLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Attach the clipboard link to an entry",
	Long: `Decide how the clipboard link attaches to a journal entry. An
entry ending in the ignore suffix drops the link; the clipboard suffix
re-reads it from the clipboard variable; an http(s) link becomes a
[&&](link) suffix in the link variable. With summary=Y in the
environment the clipboard text is summarized through llm and appended
to the entry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := alfred.Entry(args)
		clipboard := os.Getenv("clipboard")
		link := os.Getenv("link")
		if link == "" {
			link = clipboard
		}

		res := journal.ResolveLinkWith(link, entry, clipboard, rules.IgnoreSuffix, rules.ClipboardSuffix)

		out := res.Entry
		if os.Getenv("summary") == "Y" && clipboard != "" {
			client := llm.New(cfg.LLMPath)
			summary := client.Prompt(cmd.Context(), "Summarize this in one short paragraph.", clipboard)
			if summary != llm.Failed && summary != "" {
				out = res.Entry + "\n\n" + summary + "\n"
			}
		}

		env := alfred.NewEnvelope(out, res.Message, res.Title).
			Var("link", res.VarLink)
		return emit(env)
	},
}

func init() {
	journalCmd.AddCommand(journalMarkCmd)
	journalCmd.AddCommand(journalLinkCmd)
	rootCmd.AddCommand(journalCmd)
}
