package erd

import "strings"

// Normalize makes a raw table or field name usable as a DOT identifier by
// replacing every space with an underscore. Other characters pass through
// unchanged. Normalize is idempotent.
func Normalize(raw string) string {
	return strings.ReplaceAll(raw, " ", "_")
}

// tableID is the node identifier for a normalized table name. "." is the
// schema separator in qualified names and is not valid in a bare DOT ID.
func tableID(table string) string {
	return strings.ReplaceAll(table, ".", "__")
}

// nodeName is the identifier a raw table name takes in both node blocks and
// edge statements. Names that differ only by "." versus "__" (or " " versus
// "_") share one node.
func nodeName(table string) string {
	return tableID(Normalize(table))
}
