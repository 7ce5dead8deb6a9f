package rustimports

import (
	"sort"
	"strings"
)

// groupKey identifies a low-policy group: the most specific base path of
// an item, split by visibility so `use` and `pub use` never merge.
type groupKey struct {
	Base string
	Pub  bool
}

// lowGroups maps group key → attribute line → item set.
type lowGroups map[groupKey]map[string]map[string]struct{}

func collectLow(records []Record) (lowGroups, []Record) {
	groups := lowGroups{}
	var specials []Record

	for _, rec := range records {
		path := importPath(rec)
		if isSpecial(path) {
			specials = append(specials, rec)
			continue
		}
		for _, fi := range expandPath(path) {
			key := groupKey{Base: fi.Base, Pub: rec.Pub}
			if groups[key] == nil {
				groups[key] = map[string]map[string]struct{}{}
			}
			if groups[key][rec.Attr] == nil {
				groups[key][rec.Attr] = map[string]struct{}{}
			}
			groups[key][rec.Attr][fi.Name] = struct{}{}
		}
	}
	return groups, specials
}

func formatLow(groups lowGroups, specials []Record) string {
	var lines []string

	for _, rec := range specials {
		if rec.Attr != "" {
			lines = append(lines, rec.Attr)
		}
		lines = append(lines, rec.Text)
	}

	keys := make([]groupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Base != keys[j].Base {
			return keys[i].Base < keys[j].Base
		}
		return !keys[i].Pub && keys[j].Pub
	})

	for _, key := range keys {
		attrs := make([]string, 0, len(groups[key]))
		for attr := range groups[key] {
			attrs = append(attrs, attr)
		}
		sort.Strings(attrs)

		for _, attr := range attrs {
			if attr != "" {
				lines = append(lines, attr)
			}
			lines = append(lines, renderGroup(key, setToSlice(groups[key][attr]))...)
		}
	}
	return strings.Join(lines, "\n")
}

// renderGroup emits one use statement for a group. Items containing `::`
// are regrouped under their first segment and appended after the flat
// items, so `fmt::Display` collected under `std` joins a nested entry.
func renderGroup(key groupKey, items []string) []string {
	prefix := "use "
	if key.Pub {
		prefix = "pub use "
	}

	modules := map[string]map[string]struct{}{}
	var flat []string
	for _, it := range items {
		if idx := strings.Index(it, "::"); idx >= 0 {
			mod := it[:idx]
			rest := it[idx+2:]
			if modules[mod] == nil {
				modules[mod] = map[string]struct{}{}
			}
			modules[mod][rest] = struct{}{}
		} else {
			flat = append(flat, it)
		}
	}

	sorted := sortWithSelfLast(flat)
	mods := make([]string, 0, len(modules))
	for mod := range modules {
		mods = append(mods, mod)
	}
	sort.Strings(mods)
	for _, mod := range mods {
		inner := sortWithSelfLast(setToSlice(modules[mod]))
		if len(inner) == 1 {
			sorted = append(sorted, mod+"::"+inner[0])
		} else {
			sorted = append(sorted, mod+"::{"+strings.Join(inner, ", ")+"}")
		}
	}

	if len(sorted) == 1 {
		return []string{prefix + key.Base + "::" + sorted[0] + ";"}
	}
	if len(sorted) == 2 && !strings.Contains(sorted[0], "{") && !strings.Contains(sorted[1], "{") {
		return []string{prefix + key.Base + "::{" + sorted[0] + ", " + sorted[1] + "};"}
	}

	out := []string{prefix + key.Base + "::{"}
	for _, it := range sorted {
		out = append(out, "    "+it+",")
	}
	return append(out, "};")
}
