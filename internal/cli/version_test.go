package cli

import (
	"runtime/debug"
	"testing"
)

func TestCurrentVersionFromBuildInfo(t *testing.T) {
	prev := readBuildInfo
	t.Cleanup(func() { readBuildInfo = prev })

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Path: "github.com/kosiew/magpie", Version: "v1.2.3"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
			},
		}, true
	}

	version, commit := currentVersion()
	if version != "v1.2.3" {
		t.Fatalf("version = %q, want %q", version, "v1.2.3")
	}
	if commit != "abc123" {
		t.Fatalf("commit = %q, want %q", commit, "abc123")
	}
}

func TestCurrentVersionFallsBackToDevel(t *testing.T) {
	prev := readBuildInfo
	t.Cleanup(func() { readBuildInfo = prev })

	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }

	version, _ := currentVersion()
	if version != "devel" {
		t.Fatalf("version = %q, want %q", version, "devel")
	}
}
