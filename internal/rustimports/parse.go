// Package rustimports streamlines blocks of Rust use statements.
//
// Raw source lines are parsed into use-statement records, then regrouped
// under one of three policies: most-specific base path ("low"), root
// module ("high"), or duplicate elimination ("unique"). Anything that does
// not parse as a use statement passes through untouched — malformed input
// is never an error.
package rustimports

import "strings"

// Record is one parsed use statement.
type Record struct {
	// Attr is the verbatim attribute line bound to the statement
	// (e.g. a #[cfg(...)] annotation), empty if none. It is carried
	// through unparsed.
	Attr string

	// Text is the full statement text. Multi-line statements are joined
	// with single spaces, each line trimmed.
	Text string

	// Pub marks a re-exported `pub use` statement.
	Pub bool
}

const attrMarker = "#[cfg"

func isUse(line string) bool {
	return strings.HasPrefix(line, "use ") || strings.HasPrefix(line, "pub use ")
}

// Parse splits lines into use-statement records and passthrough lines.
//
// An attribute line immediately above an import binds to it. A statement
// is single-line if it ends with ";" on the same line; otherwise brace
// depth is tracked across lines until it returns to zero and the
// accumulated text ends with ";". Unterminated blocks and non-import
// lines are returned as passthrough, in their original relative order.
func Parse(lines []string) ([]Record, []string) {
	var records []Record
	var rest []string

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if strings.HasPrefix(line, attrMarker) && i+1 < len(lines) && isUse(strings.TrimSpace(lines[i+1])) {
			rec, consumed, ok := scanStatement(lines, i+1)
			if ok {
				rec.Attr = line
				records = append(records, rec)
				i += 1 + consumed
				continue
			}
			rest = append(rest, lines[i])
			i++
			continue
		}

		if isUse(line) {
			rec, consumed, ok := scanStatement(lines, i)
			if ok {
				records = append(records, rec)
				i += consumed
				continue
			}
		}

		rest = append(rest, lines[i])
		i++
	}

	return records, rest
}

// scanStatement consumes one use statement starting at lines[start],
// returning the record, the number of lines consumed, and whether the
// statement terminated properly.
func scanStatement(lines []string, start int) (Record, int, bool) {
	first := strings.TrimSpace(lines[start])
	pub := strings.HasPrefix(first, "pub use ")

	if strings.HasSuffix(first, ";") {
		return Record{Text: first, Pub: pub}, 1, true
	}
	if !strings.Contains(first, "{") {
		return Record{}, 0, false
	}

	text := first
	depth := strings.Count(first, "{") - strings.Count(first, "}")
	j := start + 1
	for j < len(lines) && depth > 0 {
		cur := strings.TrimSpace(lines[j])
		text += " " + cur
		depth += strings.Count(cur, "{") - strings.Count(cur, "}")
		j++
		if depth == 0 && strings.HasSuffix(text, ";") {
			break
		}
	}
	if depth == 0 && strings.HasSuffix(text, ";") {
		return Record{Text: text, Pub: pub}, j - start, true
	}
	return Record{}, 0, false
}
