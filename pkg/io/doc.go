// Package io reads relationship lists and color tables from files and writes
// generated DOT documents back out.
//
// # Relationship Files
//
// A relationship file is a JSON or YAML list. Each element is either an
// object:
//
//	[
//	  {"source": {"table": "orders", "field": "customer_id"},
//	   "destination": {"table": "customers", "field": "id"}}
//	]
//
// or a compact pair of (table, field) pairs:
//
//	[
//	  [["Table A", "Field 1"], ["Table B", "Field 4"]]
//	]
//
// Both shapes may be mixed in one file. The same list in YAML:
//
//	- source: {table: orders, field: customer_id}
//	  destination: {table: customers, field: id}
//	- [[Table A, Field 1], [Table B, Field 4]]
//
// Use [ImportRelationships] to read a file (format chosen by extension) or
// [ReadRelationships] to read from any io.Reader. Every table and field name
// is checked with [errors.ValidateName]; the first bad name fails the whole
// read with INVALID_INPUT and the index of the offending relationship.
//
// # Color Files
//
// Header colors are configured in TOML:
//
//	[colors]
//	"Table A" = "lightyellow"
//	orders = "#ffcc00"
//
// Use [ImportColors] or [ReadColors]. A missing [colors] table yields an empty
// [erd.Colors], so every table falls back to [erd.DefaultColor].
//
// # Export
//
// [ExportDOT] writes a document to disk; [WriteDOT] writes to any io.Writer.
//
// [errors.ValidateName]: github.com/matzehuels/erdot/pkg/errors.ValidateName
package io
