package erd

import "slices"

// Table is one entry of a [Mapping]: a table's node identifier (normalized,
// with "." rewritten to "__") and its normalized fields in first-seen order.
type Table struct {
	Name   string
	Fields []string
}

// Mapping is an insertion-ordered table → fields structure. Tables keep the
// order in which they were first added, and each table's fields keep their
// first-seen order with duplicates dropped.
//
// The zero value is not usable; create one with [NewMapping] or [BuildMapping].
type Mapping struct {
	tables []Table
	index  map[string]int
	fields []map[string]struct{}
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{index: make(map[string]int)}
}

// BuildMapping folds rels into a mapping, visiting relationships in order and
// the source before the destination of each.
func BuildMapping(rels []Relationship) *Mapping {
	m := NewMapping()
	for _, r := range rels {
		m.Add(r.Source)
		m.Add(r.Destination)
	}
	return m
}

// Add normalizes e and records it under the table's node identifier. The table is appended if new; the field is
// appended to the table if new. Adding a known endpoint is a no-op.
func (m *Mapping) Add(e Endpoint) {
	i := m.addTable(nodeName(e.Table))
	field := Normalize(e.Field)
	if _, ok := m.fields[i][field]; ok {
		return
	}
	m.fields[i][field] = struct{}{}
	m.tables[i].Fields = append(m.tables[i].Fields, field)
}

func (m *Mapping) addTable(name string) int {
	if i, ok := m.index[name]; ok {
		return i
	}
	m.index[name] = len(m.tables)
	m.tables = append(m.tables, Table{Name: name})
	m.fields = append(m.fields, make(map[string]struct{}))
	return len(m.tables) - 1
}

// Len returns the number of tables.
func (m *Mapping) Len() int {
	return len(m.tables)
}

// Tables returns a copy of the tables in first-seen order.
func (m *Mapping) Tables() []Table {
	out := make([]Table, len(m.tables))
	for i, t := range m.tables {
		out[i] = Table{Name: t.Name, Fields: slices.Clone(t.Fields)}
	}
	return out
}

// Fields returns a copy of the fields recorded for table. The name is
// converted to its node identifier before lookup.
func (m *Mapping) Fields(table string) ([]string, bool) {
	i, ok := m.index[nodeName(table)]
	if !ok {
		return nil, false
	}
	return slices.Clone(m.tables[i].Fields), true
}

// Has reports whether the (table, field) pair has been recorded.
func (m *Mapping) Has(table, field string) bool {
	i, ok := m.index[nodeName(table)]
	if !ok {
		return false
	}
	_, ok = m.fields[i][Normalize(field)]
	return ok
}
