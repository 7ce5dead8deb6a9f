// Package branchname turns clipboard text into a short git branch name.
package branchname

import (
	"context"
	"strings"

	"github.com/gosimple/slug"

	"github.com/kosiew/magpie/internal/llm"
)

// Prompter produces a short description for some input text. The llm
// client satisfies this; tests stub it.
type Prompter interface {
	Prompt(ctx context.Context, prompt, input string) string
}

const prompt = "Suggest a short git branch name describing this change. " +
	"Answer with a few words only."

// Result carries the branch name and the notification to show.
type Result struct {
	Name    string
	Message string
	Title   string
}

// Generate asks the prompter for a description of the clipboard text
// and slugs the first two words into a branch name. When the prompter
// fails, the clipboard text itself is slugged instead.
func Generate(ctx context.Context, p Prompter, clipboard string) Result {
	if strings.TrimSpace(clipboard) == "" {
		return Result{Message: "Clipboard is empty", Title: "Error"}
	}

	source := p.Prompt(ctx, prompt, clipboard)
	if source == llm.Failed || strings.TrimSpace(source) == "" {
		source = clipboard
	}

	name := shorten(source)
	return Result{
		Name:    name,
		Message: "->" + name,
		Title:   "Branch name",
	}
}

// shorten unwraps code fences, slugs the text, and keeps the first two
// hyphen-separated words.
func shorten(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "`")
	text = strings.ReplaceAll(text, "_", "-")

	parts := strings.Split(slug.Make(text), "-")
	var words []string
	for _, p := range parts {
		if p == "" {
			continue
		}
		words = append(words, p)
		if len(words) == 2 {
			break
		}
	}
	return strings.Join(words, "-")
}
