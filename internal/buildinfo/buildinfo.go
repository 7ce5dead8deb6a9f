// Package buildinfo holds release metadata injected at link time.
package buildinfo

// Set through -ldflags by the release build; empty for dev builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
