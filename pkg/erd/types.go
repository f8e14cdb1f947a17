package erd

import "fmt"

// Endpoint identifies one field within one table.
type Endpoint struct {
	Table string
	Field string
}

// String returns the endpoint as "node:port": the table's node identifier
// and the normalized field.
func (e Endpoint) String() string {
	return nodeName(e.Table) + ":" + Normalize(e.Field)
}

// Relationship is a directed link from a source field to a destination field.
type Relationship struct {
	Source      Endpoint
	Destination Endpoint
}

// Rel is shorthand for building a Relationship from four names.
func Rel(srcTable, srcField, dstTable, dstField string) Relationship {
	return Relationship{
		Source:      Endpoint{Table: srcTable, Field: srcField},
		Destination: Endpoint{Table: dstTable, Field: dstField},
	}
}

// String returns the relationship in edge statement form.
func (r Relationship) String() string {
	return fmt.Sprintf("%s -> %s", r.Source, r.Destination)
}
