// Package textops holds the small clipboard text transformations:
// censoring, abbreviation, phone-number normalization, host
// translation, timestamp removal, diff-marker stripping, and URL
// extraction.
package textops

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Censor prepares a dictionary entry: the first word of the text is the
// headword, and the meaning is the text with the headword censored
// (first occurrence "languid" -> "l....d", later occurrences -> "~").
// It returns the first two lines (the short form shown in Alfred) and
// the censored text.
func Censor(text string) (word, meaning string) {
	lines := strings.SplitN(text, "\n", 3)
	firstTwo := text
	if len(lines) >= 2 {
		firstTwo = lines[0] + "\n" + lines[1]
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return firstTwo, text
	}
	first := fields[0]

	censored := first
	if r := []rune(first); len(r) > 2 {
		censored = string(r[0]) + "...." + string(r[len(r)-1])
	}

	count := 0
	re := regexp.MustCompile(regexp.QuoteMeta(first))
	meaning = re.ReplaceAllStringFunc(text, func(string) string {
		count++
		if count == 1 {
			return censored
		}
		return "~"
	})
	return firstTwo, meaning
}

// Abbreviate joins the first letter of each word, keeping whole numbers
// intact ("release 2 today" -> "r2t").
func Abbreviate(text string) string {
	var b strings.Builder
	for _, word := range strings.Fields(text) {
		if _, err := strconv.Atoi(word); err == nil {
			b.WriteString(word)
		} else {
			b.WriteString(string([]rune(word)[0]))
		}
	}
	return b.String()
}

var nonDigit = regexp.MustCompile(`\D`)

// Phone strips everything but digits and prefixes the country code. A
// leading + in the input keeps its own country code.
func Phone(text, defaultPrefix string) string {
	hadPlus := strings.HasPrefix(strings.TrimSpace(text), "+")
	digits := nonDigit.ReplaceAllString(text, "")
	if hadPlus {
		return "+" + digits
	}
	return defaultPrefix + digits
}

// Translate replaces each key of table with its value, for rewriting
// screenshot hosts (cld.wthms.co -> d.pr/i).
func Translate(text string, table map[string]string) string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		text = strings.ReplaceAll(text, k, table[k])
	}
	return text
}

var timestampRe = regexp.MustCompile(`(?P<pre>.*)(?P<ts>ts\[.*M\])(?P<post>.*)`)

// RemoveTimestamps drops ts[...AM/PM] markers from every line of a
// block, joining the text on either side with a single space.
func RemoveTimestamps(block string) string {
	lines := strings.Split(block, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		m := timestampRe.FindStringSubmatch(line)
		if m == nil {
			out = append(out, line)
			continue
		}
		joined := strings.TrimRight(m[1], " ") + " " + strings.TrimSpace(m[3])
		out = append(out, strings.TrimRight(joined, " "))
	}
	return strings.Join(out, "\n")
}

// StripDiffMarkers removes leading +/- markers from unified diff lines,
// leaving file headers (+++, ---) and hunk markers untouched.
func StripDiffMarkers(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			out = append(out, line)
			continue
		}
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			out = append(out, line[1:])
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

var urlRe = regexp.MustCompile(`(?i)\b(?:https?://|www\d{0,3}\.)[^\s()<>]+[^\s` + "`" + `!()\[\]{};:'".,<>?]`)

// FindURLs returns all URLs in the string, in order of appearance.
func FindURLs(s string) []string {
	return urlRe.FindAllString(s, -1)
}

// NetlocSummary joins the unique hostnames of urls, preserving first
// appearance order.
func NetlocSummary(urls []string) string {
	seen := map[string]struct{}{}
	var hosts []string
	for _, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			continue
		}
		if _, ok := seen[u.Host]; ok {
			continue
		}
		seen[u.Host] = struct{}{}
		hosts = append(hosts, u.Host)
	}
	return strings.Join(hosts, ", ")
}
