package erd

import (
	"maps"
	"slices"
)

// DefaultColor is the header background used for tables without an entry.
const DefaultColor = "lightblue"

// Colors maps table names to Graphviz color values for node headers.
// It is built once with [NewColors] and never modified afterwards, so a single
// value may be shared by concurrent renders. The zero value has no entries.
type Colors struct {
	m map[string]string
}

// NewColors copies m into a Colors value. Table names are normalized the same
// way node headers are, so "Table A" and "Table_A" both match the Table_A
// node. Empty colors are ignored.
//
// When several keys name the same node, the key already spelled as the node
// identifier wins; otherwise the lexically smallest key wins.
func NewColors(m map[string]string) Colors {
	c := Colors{m: make(map[string]string, len(m))}
	for _, table := range slices.Sorted(maps.Keys(m)) {
		color := m[table]
		if color == "" {
			continue
		}
		key := colorKey(table)
		if _, taken := c.m[key]; taken && table != key {
			continue
		}
		c.m[key] = color
	}
	return c
}

// Lookup returns the color for table, or [DefaultColor].
func (c Colors) Lookup(table string) string {
	if color, ok := c.m[colorKey(table)]; ok {
		return color
	}
	return DefaultColor
}

// Len returns the number of configured tables.
func (c Colors) Len() int {
	return len(c.m)
}

func colorKey(table string) string {
	return nodeName(table)
}
