package rustimports

import "strings"

// Policy selects how parsed imports are regrouped.
type Policy string

const (
	// PolicyLow groups by the most specific base path.
	PolicyLow Policy = "low"
	// PolicyHigh groups by root module.
	PolicyHigh Policy = "high"
	// PolicyUnique removes covered duplicates without consolidating.
	PolicyUnique Policy = "unique"
)

// Streamline rewrites a block of Rust use statements under the given
// policy. Unknown policies fall back to high, matching the tool's
// default behavior.
func Streamline(text string, policy Policy) string {
	switch policy {
	case PolicyLow:
		return StreamlineLow(text)
	case PolicyUnique:
		return StreamlineUnique(text)
	default:
		return StreamlineHigh(text)
	}
}

// StreamlineLow regroups imports under their most specific base path.
func StreamlineLow(text string) string {
	lines := strings.Split(text, "\n")
	records, rest := Parse(lines)
	if len(records) == 0 {
		return text
	}
	groups, specials := collectLow(records)
	return reassemble(rest, formatLow(groups, specials))
}

// StreamlineHigh regroups imports under their root module.
func StreamlineHigh(text string) string {
	lines := strings.Split(text, "\n")
	records, rest := Parse(lines)
	if len(records) == 0 {
		return text
	}
	groups, specials := collectHigh(records)
	return reassemble(rest, formatHigh(groups, specials))
}

// reassemble joins passthrough lines and grouped output, separated by a
// single blank line when both are non-empty.
func reassemble(rest []string, grouped string) string {
	for len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
		rest = rest[1:]
	}
	for len(rest) > 0 && strings.TrimSpace(rest[len(rest)-1]) == "" {
		rest = rest[:len(rest)-1]
	}

	passthrough := strings.Join(rest, "\n")
	switch {
	case passthrough == "":
		return grouped
	case grouped == "":
		return passthrough
	default:
		return passthrough + "\n\n" + grouped
	}
}
