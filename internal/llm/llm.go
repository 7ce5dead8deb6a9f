// Package llm shells out to the external llm CLI.
//
// The binary path is configured explicitly since shell aliases are not
// visible to exec. Failures degrade to the sentinel output "llm failed"
// so callers can fall back instead of aborting the workflow.
package llm

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

// Failed is returned whenever the llm call cannot produce output.
const Failed = "llm failed"

// DefaultTimeout bounds a single llm invocation.
const DefaultTimeout = 60 * time.Second

// Client runs prompts through the llm executable.
type Client struct {
	Path    string
	Timeout time.Duration
}

// New returns a client for the given executable path.
func New(path string) Client {
	return Client{Path: path, Timeout: DefaultTimeout}
}

// Prompt runs the prompt with optional stdin input and returns the
// trimmed stdout, or Failed on any error.
func (c Client) Prompt(ctx context.Context, prompt, input string) string {
	if c.Path == "" {
		return Failed
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Path, prompt)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return Failed
	}
	return strings.TrimSpace(out.String())
}
