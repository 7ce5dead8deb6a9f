// Package standup rewrites checklist lines from the weekly note into
// standup and weekly-update summaries.
//
// Source lines look like:
//
//	- [x] shipped the importer [&&](https://href.li/?https://example.com/pr) ts[2022-02-24 9:15 AM]
//
// Daily output keeps one line per task; weekly output consolidates
// repeated descriptions into a single line linking every URL.
package standup

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	standupLineRe = regexp.MustCompile(`(?P<prefix>- )(?P<line_type>\[.+\]) (?P<desc>.*?)(\[&&\])?(\()?(?P<url>http[^)]+)?(\))? +ts\[.+\]`)
	linkRe        = regexp.MustCompile(`(?P<prefix>- )(?P<desc>.*?)(\[.+\])(\()(?P<url>http.+?)(\))`)
	timestampRe   = regexp.MustCompile(`(?P<desc>.*?)ts\[.*`)
)

// RemoveHrefLi strips the href.li redirect wrapper from a link.
func RemoveHrefLi(link string) string {
	return strings.ReplaceAll(link, "https://href.li/?", "")
}

// Daily extracts one plain line per checklist task, dropping the
// checkbox and timestamp and unwrapping any redirect URL.
func Daily(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		m := standupLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		desc := strings.TrimSpace(group(standupLineRe, m, "desc"))
		url := group(standupLineRe, m, "url")
		rewritten := "- " + desc
		if url != "" {
			rewritten = rewritten + " - " + RemoveHrefLi(url)
		}
		out = append(out, rewritten)
	}
	return strings.Join(out, "\n")
}

// Weekly consolidates linked lines: repeated descriptions collapse into
// one line carrying every collected URL.
func Weekly(text string) string {
	lines := strings.Split(text, "\n")

	urlsByDesc := map[string][]string{}
	for _, line := range lines {
		desc, url := lineItems(line)
		if desc == "" {
			continue
		}
		urlsByDesc[desc] = append(urlsByDesc[desc], url)
	}

	var out []string
	emitted := map[string]struct{}{}
	for _, line := range lines {
		desc, url := lineItems(line)
		if desc == "" {
			continue
		}
		if url == "" {
			out = append(out, linkedLine(desc, []string{""}))
			continue
		}
		if _, done := emitted[desc]; done {
			continue
		}
		emitted[desc] = struct{}{}
		out = append(out, linkedLine(desc, urlsByDesc[desc]))
	}
	return strings.Join(out, "\n")
}

// lineItems pulls the description and URL out of a markdown-linked
// line; lines without a link keep their text up to any timestamp.
func lineItems(line string) (desc, url string) {
	line = strings.TrimSpace(line)
	if m := linkRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(group(linkRe, m, "desc")), group(linkRe, m, "url")
	}
	if m := timestampRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(group(timestampRe, m, "desc")), ""
	}
	return line, ""
}

func linkedLine(desc string, urls []string) string {
	var nonEmpty []string
	for _, u := range urls {
		if u != "" {
			nonEmpty = append(nonEmpty, u)
		}
	}
	switch len(nonEmpty) {
	case 0:
		return desc
	case 1:
		return "- [" + desc + "](" + nonEmpty[0] + ")"
	default:
		refs := make([]string, len(nonEmpty))
		for i, u := range nonEmpty {
			refs[i] = fmt.Sprintf("[#%d](%s)", i+1, u)
		}
		return "- " + desc + " " + strings.Join(refs, ", ")
	}
}

func group(re *regexp.Regexp, match []string, name string) string {
	for i, n := range re.SubexpNames() {
		if n == name && i < len(match) {
			return match[i]
		}
	}
	return ""
}
