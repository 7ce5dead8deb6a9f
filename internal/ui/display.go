package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// DefaultTermWidth is the fallback width when detection fails.
const DefaultTermWidth = 100

// IsTTY reports whether stdout is a terminal; Alfred invokes the binary
// with stdout piped, so this distinguishes interactive use.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// TermWidth returns the detected terminal width, or DefaultTermWidth.
func TermWidth() int {
	if !IsTTY() {
		return DefaultTermWidth
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return DefaultTermWidth
}
