// Package pyimports consolidates blocks of Python import statements.
//
// The dialect is flat compared to Rust use statements: no nesting, no
// attributes. `import a, b` lines accumulate into a module set; `from m
// import (x, y)` lines, including the multi-line parenthesized form,
// accumulate per-module item lists. Non-import lines pass through
// unchanged ahead of the regenerated block.
package pyimports

import (
	"sort"
	"strings"
)

// maxJoinedLen is the longest joined item list, in characters, kept on a single line.
const maxJoinedLen = 79

// Streamline rewrites a block of Python imports: simple imports sorted
// one per line, from-imports merged per module with items deduplicated
// and sorted. Input without imports is returned unchanged.
func Streamline(text string) string {
	lines := strings.Split(text, "\n")
	simple, from, order, rest := parse(lines)
	if len(simple) == 0 && len(from) == 0 {
		return text
	}

	grouped := strings.Join(format(simple, from, order), "\n")

	for len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
		rest = rest[1:]
	}
	for len(rest) > 0 && strings.TrimSpace(rest[len(rest)-1]) == "" {
		rest = rest[:len(rest)-1]
	}
	if len(rest) == 0 {
		return grouped
	}
	return strings.Join(rest, "\n") + "\n\n" + grouped
}

func parse(lines []string) (simple map[string]struct{}, from map[string][]string, order []string, rest []string) {
	simple = map[string]struct{}{}
	from = map[string][]string{}

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		switch {
		case strings.HasPrefix(line, "import "):
			for _, mod := range strings.Split(line[len("import "):], ",") {
				if mod = strings.TrimSpace(mod); mod != "" {
					simple[mod] = struct{}{}
				}
			}
			i++

		case strings.HasPrefix(line, "from "):
			module, items, consumed, ok := parseFrom(lines, i)
			if !ok {
				rest = append(rest, lines[i])
				i++
				continue
			}
			if _, seen := from[module]; !seen {
				order = append(order, module)
			}
			for _, it := range items {
				if !contains(from[module], it) {
					from[module] = append(from[module], it)
				}
			}
			i += consumed

		default:
			rest = append(rest, lines[i])
			i++
		}
	}
	return simple, from, order, rest
}

// parseFrom handles both single-line and multi-line parenthesized
// from-imports, skipping blank and comment lines inside the parens.
func parseFrom(lines []string, start int) (module string, items []string, consumed int, ok bool) {
	line := strings.TrimSpace(lines[start])
	head, tail, found := strings.Cut(line, " import ")
	if !found {
		return "", nil, 0, false
	}
	module = strings.TrimSpace(strings.TrimPrefix(head, "from "))
	if module == "" {
		return "", nil, 0, false
	}

	tail = strings.TrimSpace(tail)
	if !strings.Contains(tail, "(") || strings.Contains(tail, ")") {
		tail = strings.TrimSuffix(strings.TrimPrefix(tail, "("), ")")
		return module, splitItems(tail), 1, true
	}

	// Multi-line form: collect until the closing paren.
	items = splitItems(strings.TrimPrefix(tail, "("))
	j := start + 1
	for j < len(lines) {
		cur := strings.TrimSpace(lines[j])
		j++
		if cur == "" || strings.HasPrefix(cur, "#") {
			continue
		}
		if idx := strings.Index(cur, ")"); idx >= 0 {
			items = append(items, splitItems(cur[:idx])...)
			return module, items, j - start, true
		}
		items = append(items, splitItems(cur)...)
	}
	return "", nil, 0, false
}

func splitItems(s string) []string {
	var items []string
	for _, it := range strings.Split(s, ",") {
		if it = strings.TrimSpace(it); it != "" {
			items = append(items, it)
		}
	}
	return items
}

func contains(items []string, target string) bool {
	for _, it := range items {
		if it == target {
			return true
		}
	}
	return false
}

func format(simple map[string]struct{}, from map[string][]string, order []string) []string {
	var out []string

	mods := make([]string, 0, len(simple))
	for mod := range simple {
		mods = append(mods, mod)
	}
	sort.Strings(mods)
	for _, mod := range mods {
		out = append(out, "import "+mod)
	}

	fromMods := make([]string, 0, len(from))
	fromMods = append(fromMods, order...)
	sort.Strings(fromMods)
	for _, module := range fromMods {
		items := append([]string(nil), from[module]...)
		sort.Strings(items)

		joined := strings.Join(items, ", ")
		if len(joined) <= maxJoinedLen {
			out = append(out, "from "+module+" import "+joined)
			continue
		}
		out = append(out, "from "+module+" import (")
		for _, it := range items {
			out = append(out, "    "+it+",")
		}
		out = append(out, ")")
	}
	return out
}
