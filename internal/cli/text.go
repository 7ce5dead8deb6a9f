package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kosiew/magpie/internal/alfred"
	"github.com/kosiew/magpie/internal/textops"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Censor a dictionary entry",
	Long: `Censor the headword of a copied dictionary entry so it can be
pasted into a flash-card deck. The first occurrence becomes f....d,
later occurrences become ~. The headword and censored meaning are also
exposed as the word and meaning workflow variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := alfred.Entry(args)
		word, meaning := textops.Censor(text)
		env := alfred.NewEnvelope(meaning, "Transformed text copied!", "Success").
			Var("word", word).
			Var("meaning", meaning)
		return emit(env)
	},
}

var phoneCmd = &cobra.Command{
	Use:   "phone",
	Short: "Normalize a phone number for WhatsApp",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := alfred.Entry(args)
		number := textops.Phone(text, cfg.PhonePrefix)
		env := alfred.NewEnvelope(number, number, "WhatsApp number").
			Var("whatsapp_number", number)
		return emit(env)
	},
}

var abbrevCmd = &cobra.Command{
	Use:   "abbrev",
	Short: "Abbreviate text to its initials",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := alfred.Entry(args)
		out := textops.Abbreviate(text)
		return emit(alfred.NewEnvelope(out, text+" -> "+out, "Abbreviated"))
	},
}

var timestampsCmd = &cobra.Command{
	Use:   "timestamps",
	Short: "Remove ts[...] markers from journal lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := alfred.Entry(args)
		out := textops.RemoveTimestamps(text)
		return emit(alfred.NewEnvelope(out, "Timestamps removed", "Success"))
	},
}

var droplrCmd = &cobra.Command{
	Use:   "droplr",
	Short: "Rewrite screenshot hosts",
	Long: `Rewrite screenshot-host URLs using the translation table from
rules.yaml (cld.wthms.co becomes d.pr/i by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := alfred.Entry(args)
		out := textops.Translate(text, rules.Translate)
		return emit(alfred.NewEnvelope(out, text+" -> "+out, "Translated"))
	},
}

var urlsCmd = &cobra.Command{
	Use:   "urls",
	Short: "Extract URLs from text",
	Long: `Extract every URL from the input. The envelope argument is the
newline-joined URL list for the workflow's open-URL action; the
notification summarizes how many links were found and their hosts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := alfred.Entry(args)
		urls := textops.FindURLs(text)

		noun := "links"
		if len(urls) == 1 {
			noun = "link"
		}
		message := fmt.Sprintf("opened %d %s", len(urls), noun)
		if summary := textops.NetlocSummary(urls); summary != "" {
			message += ": " + summary
		}

		arg := ""
		for i, u := range urls {
			if i > 0 {
				arg += "\n"
			}
			arg += u
		}
		return emit(alfred.NewEnvelope(arg, message, "URLs"))
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Strip +/- markers from a unified diff",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := alfred.Entry(args)
		out := textops.StripDiffMarkers(text)
		return emit(alfred.NewEnvelope(out, "Diff markers removed", "Success"))
	},
}

func init() {
	rootCmd.AddCommand(entryCmd)
	rootCmd.AddCommand(phoneCmd)
	rootCmd.AddCommand(abbrevCmd)
	rootCmd.AddCommand(timestampsCmd)
	rootCmd.AddCommand(droplrCmd)
	rootCmd.AddCommand(urlsCmd)
	rootCmd.AddCommand(diffCmd)
}
