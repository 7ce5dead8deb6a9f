package cli

import (
	"github.com/spf13/cobra"

	"github.com/kosiew/magpie/internal/alfred"
	"github.com/kosiew/magpie/internal/htmlmd"
)

var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "HTML conversions",
}

var htmlMdCmd = &cobra.Command{
	Use:   "md",
	Short: "Convert HTML to markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := alfred.Entry(args)
		out, err := htmlmd.ToMarkdown(text)
		if err != nil {
			return err
		}
		return emitMarkdown(alfred.NewEnvelope(out, "Converted to markdown", "Success"))
	},
}

var mdCmd = &cobra.Command{
	Use:   "md",
	Short: "Markdown conversions",
}

var mdHTMLCmd = &cobra.Command{
	Use:   "html",
	Short: "Convert markdown to HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := alfred.Entry(args)
		out, err := htmlmd.ToHTML(text)
		if err != nil {
			return err
		}
		return emit(alfred.NewEnvelope(out, "Converted to HTML", "Success"))
	},
}

func init() {
	htmlCmd.AddCommand(htmlMdCmd)
	mdCmd.AddCommand(mdHTMLCmd)
	rootCmd.AddCommand(htmlCmd)
	rootCmd.AddCommand(mdCmd)
}
