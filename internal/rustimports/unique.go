package rustimports

import (
	"strings"
)

// seenSet tracks the fully-qualified names and glob prefixes already
// emitted under one (attribute, visibility) scope.
type seenSet struct {
	names map[string]struct{}
	globs []string
}

func newSeenSet() *seenSet {
	return &seenSet{names: map[string]struct{}{}}
}

// covered reports whether every name and glob of a candidate statement is
// already accounted for. A glob prefix covers the prefix itself and
// anything below it. An empty candidate is never covered.
func (s *seenSet) covered(names, globs []string) bool {
	if len(names) == 0 && len(globs) == 0 {
		return false
	}
	for _, name := range names {
		if _, ok := s.names[name]; ok {
			continue
		}
		if !s.globCovers(name) {
			return false
		}
	}
	for _, g := range globs {
		found := false
		for _, p := range s.globs {
			if g == p || strings.HasPrefix(g, p+"::") {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (s *seenSet) globCovers(name string) bool {
	for _, p := range s.globs {
		if name == p || strings.HasPrefix(name, p+"::") {
			return true
		}
	}
	return false
}

func (s *seenSet) record(names, globs []string) {
	for _, name := range names {
		s.names[name] = struct{}{}
	}
	s.globs = append(s.globs, globs...)
}

// canonicalNames expands a statement into its fully-qualified name set
// plus any glob prefixes. `self` resolves to the base path itself.
func canonicalNames(rec Record) (names, globs []string) {
	path := importPath(rec)

	if !strings.Contains(path, "::") {
		return []string{path}, nil
	}
	if strings.HasSuffix(path, "::*") && !strings.Contains(path, "{") {
		return nil, []string{strings.TrimSuffix(path, "::*")}
	}

	for _, fi := range expandPath(path) {
		switch fi.Name {
		case "self":
			names = append(names, fi.Base)
		case "*":
			globs = append(globs, fi.Base)
		default:
			if fi.Base == "" {
				names = append(names, fi.Name)
			} else {
				names = append(names, fi.Base+"::"+fi.Name)
			}
		}
	}
	return names, globs
}

// normalizeAttr strips all whitespace so attribute lines differing only
// in spacing compare equal.
func normalizeAttr(attr string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, attr)
}

// StreamlineUnique removes import statements whose full name set is
// already covered by earlier statements in the same (attribute,
// visibility) scope. Kept statements retain their original lines; later
// globs never remove earlier specific imports.
func StreamlineUnique(text string) string {
	lines := strings.Split(text, "\n")
	seen := map[string]*seenSet{}
	var out []string

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		attr := ""
		start := i
		if strings.HasPrefix(line, attrMarker) && i+1 < len(lines) && isUse(strings.TrimSpace(lines[i+1])) {
			attr = line
			start = i + 1
		}

		if !isUse(strings.TrimSpace(lines[start])) {
			out = append(out, lines[i])
			i++
			continue
		}

		rec, consumed, ok := scanStatement(lines, start)
		if !ok {
			out = append(out, lines[i])
			i++
			continue
		}
		rec.Attr = attr

		scope := normalizeAttr(attr) + "|" + boolKey(rec.Pub)
		if seen[scope] == nil {
			seen[scope] = newSeenSet()
		}

		names, globs := canonicalNames(rec)
		if seen[scope].covered(names, globs) {
			i = start + consumed
			continue
		}
		seen[scope].record(names, globs)
		out = append(out, lines[i:start+consumed]...)
		i = start + consumed
	}

	return strings.Join(out, "\n")
}

func boolKey(b bool) string {
	if b {
		return "pub"
	}
	return ""
}
