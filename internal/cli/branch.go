package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kosiew/magpie/internal/alfred"
	"github.com/kosiew/magpie/internal/branchname"
	"github.com/kosiew/magpie/internal/llm"
)

var branchCmd = &cobra.Command{
	Use:   "branch",
	Short: "Suggest a git branch name from the clipboard",
	Long: `Ask llm for a short description of the clipboard text and slug
the first two words into a branch name. When llm is unavailable the
clipboard text itself is slugged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		clipboard := os.Getenv("clipboard")
		if clipboard == "" {
			clipboard = alfred.Entry(args)
		}

		client := llm.New(cfg.LLMPath)
		res := branchname.Generate(cmd.Context(), client, clipboard)
		return emit(alfred.NewEnvelope(res.Name, res.Message, res.Title))
	},
}

func init() {
	rootCmd.AddCommand(branchCmd)
}
