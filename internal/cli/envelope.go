package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/kosiew/magpie/internal/alfred"
	"github.com/kosiew/magpie/internal/ui"
)

// stdout is swapped out in tests.
var stdout io.Writer = os.Stdout

// emit writes the envelope to stdout. With --pretty the transformed
// argument is printed directly and the notification text goes to stderr
// so the output can be piped.
func emit(env alfred.Envelope) error {
	if prettyOutput {
		fmt.Fprintln(stdout, env.Workflow.Arg)
		if msg := env.Workflow.Variables["message"]; msg != "" {
			fmt.Fprintln(os.Stderr, ui.Hint(msg))
		}
		return nil
	}
	return env.Write(stdout)
}

// emitMarkdown is emit for markdown-shaped output: --pretty renders it
// through glamour instead of printing it raw.
func emitMarkdown(env alfred.Envelope) error {
	if !prettyOutput {
		return env.Write(stdout)
	}
	rendered, err := ui.RenderMarkdown(env.Workflow.Arg, ui.TermWidth())
	if err != nil {
		// Fall back to the raw text rather than failing the transform.
		fmt.Fprintln(stdout, env.Workflow.Arg)
		return nil
	}
	fmt.Fprint(stdout, rendered)
	return nil
}

// emitItems writes a script-filter item list. Pretty mode prints one
// title per line for inspection.
func emitItems(list alfred.ItemList) error {
	if prettyOutput {
		for _, it := range list.Items {
			if it.Subtitle != "" {
				fmt.Fprintf(stdout, "%s\t%s\n", it.Title, it.Subtitle)
			} else {
				fmt.Fprintln(stdout, it.Title)
			}
		}
		return nil
	}
	return list.Write(stdout)
}
