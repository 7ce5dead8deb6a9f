package ui

import (
	"fmt"
	"os"
)

// Unicode symbols for status indicators
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
)

// Success returns a success message with checkmark symbol.
func Success(msg string) string {
	return fmt.Sprintf("%s %s", SymbolSuccess, msg)
}

// Error returns an error message with X symbol.
func Error(msg string) string {
	return fmt.Sprintf("%s %s", SymbolError, msg)
}

// Warning returns a warning message with warning symbol.
func Warning(msg string) string {
	return fmt.Sprintf("%s %s", SymbolWarning, msg)
}

// Info returns an info message with info symbol.
func Info(msg string) string {
	return fmt.Sprintf("%s %s", SymbolInfo, msg)
}

// Warnf writes a formatted warning to stderr, keeping stdout clean for
// the Alfred payload.
func Warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, Warning(fmt.Sprintf(format, args...)))
}

// Hint returns muted hint text.
func Hint(msg string) string {
	return Muted.Render(msg)
}
