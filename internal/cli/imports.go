package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kosiew/magpie/internal/alfred"
	"github.com/kosiew/magpie/internal/pyimports"
	"github.com/kosiew/magpie/internal/rustimports"
)

var importsPolicyFlag string

var importsCmd = &cobra.Command{
	Use:   "imports",
	Short: "Streamline import blocks",
	Long: `Streamline a copied block of import statements.

The input comes from the entry environment variable (or the first
argument); the consolidated block is returned as the envelope argument
so the workflow can paste it back.`,
}

var importsRustCmd = &cobra.Command{
	Use:   "rust",
	Short: "Regroup Rust use statements",
	Long: `Regroup Rust use statements under a grouping policy:

  low     group by the most specific shared base path
  high    group by root crate, hoisting the highest common subpath
  unique  drop statements already covered by earlier ones`,
	RunE: func(cmd *cobra.Command, args []string) error {
		policy := rustimports.Policy(importsPolicyFlag)
		switch policy {
		case rustimports.PolicyLow, rustimports.PolicyHigh, rustimports.PolicyUnique:
		default:
			return fmt.Errorf("unknown policy %q (want low, high, or unique)", importsPolicyFlag)
		}

		text := alfred.Entry(args)
		out := rustimports.Streamline(text, policy)
		return emit(alfred.NewEnvelope(out, "Imports streamlined", "Success"))
	},
}

var importsPythonCmd = &cobra.Command{
	Use:   "python",
	Short: "Merge and sort Python imports",
	Long: `Merge duplicate Python from-imports per module and sort the
result, wrapping long item lists in parentheses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := alfred.Entry(args)
		out := pyimports.Streamline(text)
		return emit(alfred.NewEnvelope(out, "Imports streamlined", "Success"))
	},
}

func init() {
	importsRustCmd.Flags().StringVar(&importsPolicyFlag, "policy", "high", "Grouping policy: low, high, or unique")

	importsCmd.AddCommand(importsRustCmd)
	importsCmd.AddCommand(importsPythonCmd)
	rootCmd.AddCommand(importsCmd)
}
