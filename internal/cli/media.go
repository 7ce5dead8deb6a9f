package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kosiew/magpie/internal/alfred"
	"github.com/kosiew/magpie/internal/mediatools"
)

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Image file helpers",
}

var mediaStripCmd = &cobra.Command{
	Use:   "strip <file>...",
	Short: "Remove metadata from image files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exiftool := cfg.ExiftoolPath
		if exiftool == "" {
			exiftool = mediatools.DefaultExiftool
		}
		for _, path := range args {
			if err := mediatools.StripMetadata(cmd.Context(), exiftool, path); err != nil {
				return fmt.Errorf("strip %s: %w", path, err)
			}
		}
		noun := "files"
		if len(args) == 1 {
			noun = "file"
		}
		msg := fmt.Sprintf("metadata removed from %d %s", len(args), noun)
		return emit(alfred.NewEnvelope("", msg, "Exiftool"))
	},
}

var mediaDalleCmd = &cobra.Command{
	Use:   "rename-dalle [dir]",
	Short: "Rename DALL·E downloads to dated slugs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.DalleDir
		if len(args) > 0 {
			dir = args[0]
		}
		if dir == "" {
			return fmt.Errorf("no directory given and dalle_dir not configured")
		}

		renamed, err := mediatools.RenameDalle(dir)
		if err != nil {
			return err
		}
		msg := fmt.Sprintf("renamed %d file(s)", len(renamed))
		return emit(alfred.NewEnvelope(strings.Join(renamed, "\n"), msg, "DALL·E"))
	},
}

func init() {
	mediaCmd.AddCommand(mediaStripCmd)
	mediaCmd.AddCommand(mediaDalleCmd)
	rootCmd.AddCommand(mediaCmd)
}
