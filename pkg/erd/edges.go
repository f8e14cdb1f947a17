package erd

import "strings"

// RenderEdges emits one "table:field -> table:field" statement per
// relationship, in input order, one per line. Repeated relationships are
// repeated in the output.
func RenderEdges(rels []Relationship) string {
	lines := make([]string, len(rels))
	for i, r := range rels {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
