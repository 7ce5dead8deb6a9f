// Package main is the entry point for the mgp CLI tool.
package main

import (
	"os"

	"github.com/kosiew/magpie/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
