// Package alfred builds the JSON envelopes Alfred workflows consume.
//
// A Run Script action reads one envelope from stdout:
//
//	{"alfredworkflow":{"arg":"...","variables":{"message":"...","message_title":"..."}}}
//
// Script Filter actions instead read an item list. Both are written
// without a trailing newline; Alfred treats stdout as the whole payload.
package alfred

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Envelope is the outer object of a Run Script response.
type Envelope struct {
	Workflow Workflow `json:"alfredworkflow"`
}

// Workflow carries the argument passed downstream plus workflow
// variables surfaced in later nodes (notifications read message and
// message_title).
type Workflow struct {
	Arg       string            `json:"arg"`
	Variables map[string]string `json:"variables,omitempty"`
}

// NewEnvelope builds an envelope with the standard notification
// variables set.
func NewEnvelope(arg, message, title string) Envelope {
	return Envelope{Workflow: Workflow{
		Arg: arg,
		Variables: map[string]string{
			"message":       message,
			"message_title": title,
		},
	}}
}

// Var sets an extra workflow variable and returns the envelope for
// chaining.
func (e Envelope) Var(key, value string) Envelope {
	e.Workflow.Variables[key] = value
	return e
}

// Write marshals the envelope to w with no trailing newline.
func (e Envelope) Write(w io.Writer) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write envelope: %w", err)
	}
	return nil
}

// Item is one row of a Script Filter list.
type Item struct {
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle,omitempty"`
	Arg      string            `json:"arg,omitempty"`
	Valid    *bool             `json:"valid,omitempty"`
	Vars     map[string]string `json:"variables,omitempty"`
}

// ItemList is a Script Filter response.
type ItemList struct {
	Items []Item `json:"items"`
}

// Write marshals the item list to w with no trailing newline.
func (l ItemList) Write(w io.Writer) error {
	if l.Items == nil {
		l.Items = []Item{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write items: %w", err)
	}
	return nil
}

// Entry returns the workflow input: the entry environment variable if
// set, otherwise the first of args.
func Entry(args []string) string {
	if v, ok := os.LookupEnv("entry"); ok {
		return v
	}
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
