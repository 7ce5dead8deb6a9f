package rustimports

import (
	"sort"
	"strings"
)

// rootGroup collects everything imported under one root module. Subpath
// insertion order is preserved so the no-common-subpath rendering keeps
// the first-encountered order.
type rootGroup struct {
	order []string
	items map[string]map[string]struct{}
}

func newRootGroup() *rootGroup {
	return &rootGroup{items: map[string]map[string]struct{}{}}
}

func (g *rootGroup) add(sub, name string) {
	if g.items[sub] == nil {
		g.items[sub] = map[string]struct{}{}
		g.order = append(g.order, sub)
	}
	g.items[sub][name] = struct{}{}
}

// highKey identifies a high-policy group: root module, visibility, and
// attribute line, so cfg-gated imports merge only with each other.
type highKey struct {
	Root string
	Pub  bool
	Attr string
}

// collectHigh buckets records by root module, splitting groups on
// visibility and attribute. Globs and short paths pass through verbatim.
func collectHigh(records []Record) (map[highKey]*rootGroup, []Record) {
	groups := map[highKey]*rootGroup{}
	var specials []Record

	for _, rec := range records {
		path := importPath(rec)
		if isSpecial(path) {
			specials = append(specials, rec)
			continue
		}
		for _, fi := range expandPath(path) {
			parts := splitPath(fi.Base)
			key := highKey{Root: parts[0], Pub: rec.Pub, Attr: rec.Attr}
			if groups[key] == nil {
				groups[key] = newRootGroup()
			}
			groups[key].add(strings.Join(parts[1:], "::"), fi.Name)
		}
	}
	return groups, specials
}

// commonSubpath returns the longest segment-wise prefix shared by every
// subpath in the group. It requires at least two distinct subpaths, none
// of them empty: an empty subpath imports directly off the root, and
// hoisting a common subpath would misplace that item.
func commonSubpath(subs []string) string {
	distinct := map[string]struct{}{}
	for _, s := range subs {
		if s == "" {
			return ""
		}
		distinct[s] = struct{}{}
	}
	if len(distinct) < 2 {
		return ""
	}

	var common []string
	first := true
	for s := range distinct {
		parts := splitPath(s)
		if first {
			common = parts
			first = false
			continue
		}
		if len(parts) < len(common) {
			common = common[:len(parts)]
		}
		i := 0
		for i < len(common) && common[i] == parts[i] {
			i++
		}
		common = common[:i]
	}
	return strings.Join(common, "::")
}

// subRemainder strips the common subpath from sub at a segment boundary.
func subRemainder(sub, common string) string {
	if sub == common {
		return ""
	}
	if strings.HasPrefix(sub, common+"::") {
		return sub[len(common)+2:]
	}
	return sub
}

func formatHigh(groups map[highKey]*rootGroup, specials []Record) string {
	var lines []string

	for _, rec := range specials {
		if rec.Attr != "" {
			lines = append(lines, rec.Attr)
		}
		lines = append(lines, rec.Text)
	}

	// Same ordering as formatLow's keys: root first, private before
	// pub, bare imports before attributed ones.
	keys := make([]highKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Root != keys[j].Root {
			return keys[i].Root < keys[j].Root
		}
		if keys[i].Pub != keys[j].Pub {
			return !keys[i].Pub
		}
		return keys[i].Attr < keys[j].Attr
	})

	for _, key := range keys {
		if key.Attr != "" {
			lines = append(lines, key.Attr)
		}
		lines = append(lines, renderHighGroup(key.Pub, key.Root, groups[key])...)
	}
	return strings.Join(lines, "\n")
}

func renderHighGroup(pub bool, root string, g *rootGroup) []string {
	prefix := "use "
	if pub {
		prefix = "pub use "
	}

	total := 0
	for _, set := range g.items {
		total += len(set)
	}
	if total == 1 {
		sub := g.order[0]
		for name := range g.items[sub] {
			if sub == "" {
				return []string{prefix + root + "::" + name + ";"}
			}
			return []string{prefix + root + "::" + sub + "::" + name + ";"}
		}
	}

	common := commonSubpath(g.order)
	if common != "" {
		out := []string{prefix + root + "::" + common + "::{"}
		seen := map[string]struct{}{}
		for _, sub := range g.order {
			rem := subRemainder(sub, common)
			if _, dup := seen[rem]; dup {
				continue
			}
			seen[rem] = struct{}{}
			items := collectRemainder(g, common, rem)
			switch {
			case rem == "":
				for _, it := range items {
					out = append(out, "    "+it+",")
				}
			case len(items) == 1:
				out = append(out, "    "+rem+"::"+items[0]+",")
			default:
				out = append(out, "    "+rem+"::{"+strings.Join(items, ", ")+"},")
			}
		}
		return append(out, "};")
	}

	out := []string{prefix + root + "::{"}
	for _, sub := range g.order {
		items := sortLowerFirst(setToSlice(g.items[sub]))
		switch {
		case sub == "":
			for _, it := range items {
				out = append(out, "    "+it+",")
			}
		case len(items) == 1:
			out = append(out, "    "+sub+"::"+items[0]+",")
		default:
			out = append(out, "    "+sub+"::{"+strings.Join(items, ", ")+"},")
		}
	}
	return append(out, "};")
}

// collectRemainder merges items from every subpath that reduces to the
// same remainder under the common subpath.
func collectRemainder(g *rootGroup, common, rem string) []string {
	merged := map[string]struct{}{}
	for _, sub := range g.order {
		if subRemainder(sub, common) != rem {
			continue
		}
		for name := range g.items[sub] {
			merged[name] = struct{}{}
		}
	}
	return sortLowerFirst(setToSlice(merged))
}
