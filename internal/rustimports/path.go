package rustimports

import (
	"sort"
	"strings"
	"unicode"
)

// item is one element of a brace-delimited import list. A non-empty
// Children slice marks a nested group like io::{Read, Write}.
type item struct {
	Name     string
	Children []item
}

// parseItems tokenizes a brace-delimited item string into a tree,
// splitting on commas at brace depth zero only.
func parseItems(s string) []item {
	var items []item
	for _, part := range splitTopLevel(s) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		open := strings.Index(part, "{")
		if open < 0 {
			items = append(items, item{Name: part})
			continue
		}
		name := strings.TrimRight(strings.TrimSpace(part[:open]), ":")
		inner := part[open+1:]
		if end := strings.LastIndex(inner, "}"); end >= 0 {
			inner = inner[:end]
		}
		items = append(items, item{Name: name, Children: parseItems(inner)})
	}
	return items
}

func splitTopLevel(s string) []string {
	var parts []string
	var cur strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '{':
			depth++
			cur.WriteRune(r)
		case r == '}':
			depth--
			cur.WriteRune(r)
		case r == ',' && depth == 0:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	parts = append(parts, cur.String())
	return parts
}

// importPath strips the use prefix and trailing semicolon from a record.
func importPath(rec Record) string {
	text := strings.TrimSpace(rec.Text)
	if rec.Pub {
		text = strings.TrimPrefix(text, "pub use ")
	} else {
		text = strings.TrimPrefix(text, "use ")
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), ";"))
}

// isSpecial reports whether a path is passed through verbatim rather than
// grouped: glob imports and paths with fewer than two segments.
func isSpecial(path string) bool {
	return !strings.Contains(path, "::") || strings.HasSuffix(path, "::*")
}

// flatItem is one (base path, leaf name) pair produced by decomposition.
type flatItem struct {
	Base string
	Name string
}

// expandPath decomposes a non-special import path into (base, leaf)
// pairs. Braced groups are walked recursively; `self` stays a literal
// leaf under its base.
func expandPath(path string) []flatItem {
	if open := strings.Index(path, "{"); open >= 0 {
		base := strings.TrimRight(strings.TrimSpace(path[:open]), ":")
		inner := path[open+1:]
		if end := strings.LastIndex(inner, "}"); end >= 0 {
			inner = inner[:end]
		}
		var out []flatItem
		for _, it := range parseItems(inner) {
			out = append(out, expandItem(base, it)...)
		}
		return out
	}

	parts := splitPath(path)
	if len(parts) < 2 {
		return []flatItem{{Base: path, Name: path}}
	}
	return []flatItem{{
		Base: strings.Join(parts[:len(parts)-1], "::"),
		Name: parts[len(parts)-1],
	}}
}

func expandItem(prefix string, it item) []flatItem {
	if len(it.Children) > 0 {
		next := prefix
		if it.Name != "" {
			if next != "" {
				next += "::" + it.Name
			} else {
				next = it.Name
			}
		}
		var out []flatItem
		for _, child := range it.Children {
			out = append(out, expandItem(next, child)...)
		}
		return out
	}

	if strings.Contains(it.Name, "::") {
		parts := splitPath(it.Name)
		base := prefix
		if len(parts) >= 2 {
			sub := strings.Join(parts[:len(parts)-1], "::")
			if base != "" {
				base += "::" + sub
			} else {
				base = sub
			}
		}
		return []flatItem{{Base: base, Name: parts[len(parts)-1]}}
	}
	return []flatItem{{Base: prefix, Name: it.Name}}
}

func splitPath(p string) []string {
	var parts []string
	for _, seg := range strings.Split(p, "::") {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return parts
}

// sortWithSelfLast sorts items lexically, forcing the literal `self` to
// the end of the group.
func sortWithSelfLast(items []string) []string {
	hasSelf := false
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it == "self" {
			hasSelf = true
			continue
		}
		out = append(out, it)
	}
	sort.Strings(out)
	if hasSelf {
		out = append(out, "self")
	}
	return out
}

// sortLowerFirst sorts identifiers with lowercase-initial names before
// uppercase-initial ones, each half alphabetically. By Rust convention
// the lowercase half holds functions and modules, the uppercase half
// types.
func sortLowerFirst(items []string) []string {
	var lower, upper []string
	for _, it := range items {
		if it != "" && unicode.IsLower(rune(it[0])) {
			lower = append(lower, it)
		} else {
			upper = append(upper, it)
		}
	}
	sort.Strings(lower)
	sort.Strings(upper)
	return append(lower, upper...)
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for it := range set {
		out = append(out, it)
	}
	return out
}
