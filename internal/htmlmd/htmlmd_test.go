package htmlmd

import (
	"strings"
	"testing"
)

func TestToMarkdown(t *testing.T) {
	got, err := ToMarkdown(`<p>Hello <strong>world</strong></p>`)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(got, "**world**") {
		t.Fatalf("got %q", got)
	}
}

func TestToMarkdownLink(t *testing.T) {
	got, err := ToMarkdown(`<a href="https://example.com">example</a>`)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(got, "[example](https://example.com)") {
		t.Fatalf("got %q", got)
	}
}

func TestToHTML(t *testing.T) {
	got, err := ToHTML("# Title\n\nSome *emphasis* here.")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "<h1>Title</h1>") {
		t.Fatalf("missing heading: %q", got)
	}
	if !strings.Contains(got, "<em>emphasis</em>") {
		t.Fatalf("missing emphasis: %q", got)
	}
}
