// Package journal manages the append-only journal and weekly-note
// files: new-day markers, link-variable handling for entries, and the
// weekly rollover into a history file.
package journal

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/kosiew/magpie/internal/atomicfile"
	"github.com/kosiew/magpie/internal/dates"
)

// Entry suffixes controlling how the clipboard link is attached.
const (
	// IgnoreLink drops the clipboard link entirely.
	IgnoreLink = "xxx"
	// ClipboardAsLink re-reads the link from the clipboard variable.
	ClipboardAsLink = "ccc"
)

var lastLineDateRe = regexp.MustCompile(`ts\[(\S+)`)

// LastLineDate extracts the date of the trailing timestamp in the last
// non-blank line of content, or "" when there is none.
func LastLineDate(content string) string {
	lines := strings.Split(content, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		m := lastLineDateRe.FindStringSubmatch(lines[i])
		if m == nil {
			return ""
		}
		return m[1]
	}
	return ""
}

// MarkNewDate appends a day marker to the file at path when the last
// entry's timestamp is not from today. It reports whether a marker was
// written.
func MarkNewDate(path string, now time.Time) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read journal: %w", err)
	}
	if LastLineDate(string(content)) == dates.YearMonthDay(now) {
		return false, nil
	}

	marker := "\n\n " + dates.DayMarker(now) + "\n"
	updated := append(content, []byte(marker)...)
	if err := atomicfile.WriteFile(path, updated, 0); err != nil {
		return false, fmt.Errorf("write day marker: %w", err)
	}
	return true, nil
}

// LinkResult is the outcome of resolving an entry's clipboard link.
type LinkResult struct {
	Title   string
	Message string
	VarLink string
	Entry   string
}

// ResolveLink decides how the clipboard link attaches to an entry. An
// entry ending in "xxx" ignores the link; one ending in "ccc" swaps the
// link for the clipboard value; otherwise an http(s) link becomes a
// markdown [&&](link) suffix variable, with any href.li redirect
// unwrapped.
func ResolveLink(link, entry, clipboard string) LinkResult {
	return ResolveLinkWith(link, entry, clipboard, IgnoreLink, ClipboardAsLink)
}

// ResolveLinkWith is ResolveLink with configurable entry suffixes.
func ResolveLinkWith(link, entry, clipboard, ignoreSuffix, clipboardSuffix string) LinkResult {
	switch {
	case ignoreSuffix != "" && strings.HasSuffix(entry, ignoreSuffix):
		return LinkResult{
			Title:   "Ignoring clipboard",
			Message: fmt.Sprintf("entry ends with %s", ignoreSuffix),
			Entry:   strings.TrimSuffix(entry, ignoreSuffix),
		}
	case clipboardSuffix != "" && strings.HasSuffix(entry, clipboardSuffix):
		return ResolveLinkWith(clipboard, strings.TrimSuffix(entry, clipboardSuffix), clipboard, ignoreSuffix, clipboardSuffix)
	case strings.HasPrefix(link, "http"):
		link = strings.ReplaceAll(link, "https://href.li/?", "")
		return LinkResult{
			Title:   fmt.Sprintf("Using %s", link),
			Message: link,
			VarLink: fmt.Sprintf("[&&](%s)", link),
			Entry:   entry,
		}
	default:
		return LinkResult{
			Title:   "No http link in clipboard",
			Message: link,
			Entry:   entry,
		}
	}
}

// Rollover moves the weekly note into the history file under a
// "NEW WEEK" heading dated last Monday, then empties the note.
func Rollover(notePath, historyPath string, now time.Time) error {
	note, err := os.ReadFile(notePath)
	if err != nil {
		return fmt.Errorf("read weekly note: %w", err)
	}
	history, err := os.ReadFile(historyPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read history: %w", err)
	}

	heading := fmt.Sprintf("\nNEW WEEK - %s\n\n", dates.YearMonthDay(dates.LastMonday(now)))
	updated := append(history, []byte(heading)...)
	updated = append(updated, note...)

	if err := atomicfile.WriteFile(historyPath, updated, 0); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	if err := atomicfile.WriteFile(notePath, nil, 0); err != nil {
		return fmt.Errorf("truncate weekly note: %w", err)
	}
	return nil
}
