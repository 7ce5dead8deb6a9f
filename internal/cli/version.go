package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/kosiew/magpie/internal/buildinfo"
)

var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show magpie version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version, commit := currentVersion()

		fmt.Printf("mgp %s\n", version)
		if commit != "" {
			fmt.Printf("commit: %s\n", commit)
		}
		fmt.Printf("go: %s\n", runtime.Version())
		fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

// currentVersion prefers module build info and falls back to the
// ldflags-injected values for release binaries.
func currentVersion() (version, commit string) {
	version = buildinfo.Version
	commit = buildinfo.Commit

	info, ok := readBuildInfo()
	if !ok || info == nil {
		if version == "" {
			version = "devel"
		}
		return version, commit
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		version = v
	}
	if commit == "" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				commit = s.Value
			}
		}
	}
	if version == "" {
		version = "devel"
	}
	return version, commit
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
