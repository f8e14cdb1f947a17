// Package erd builds Graphviz DOT documents for entity relationship diagrams.
//
// # Overview
//
// The input is an ordered list of [Relationship] values, each pointing from one
// (table, field) [Endpoint] to another. The output is a DOT document with one
// HTML-label node per table, one row per field, and one directed edge per
// relationship:
//
//	rels := []erd.Relationship{
//	    erd.Rel("orders", "customer_id", "customers", "id"),
//	}
//	dot := erd.ToDOT(rels, erd.Colors{})
//
// Each field row carries a port named after the field, so edges attach to the
// exact row (customers:id) rather than the table box.
//
// # Pipeline
//
// [ToDOT] is a composition of smaller steps that can be used on their own:
//
//	BuildMapping → RenderNodes ┐
//	                           ├→ Assemble → DOT
//	RenderEdges  ──────────────┘
//
// [BuildMapping] folds the relationships into an insertion-ordered
// table → fields [Mapping]. Tables and fields appear in the order they are first
// seen, scanning the source before the destination of each relationship. Fields
// are deduplicated per table; edges are not, so a relationship listed twice
// yields two edges.
//
// # Names
//
// Every identifier is passed through [Normalize], which replaces spaces with
// underscores. No other escaping is done: names containing quotes, colons, or
// angle brackets produce invalid DOT. Table names additionally have "." (the
// schema separator) rewritten to "__", in node blocks and edges alike, so
// public.orders becomes the node public__orders. As a consequence "a.b" and
// "a__b" name the same node and their fields are merged.
//
// # Colors
//
// Table header colors come from a [Colors] value passed to [RenderNodes] and
// [ToDOT]. Tables without an entry use [DefaultColor]. Colors is immutable once
// built and safe to share between goroutines.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use, provided callers do not
// mutate the relationship slice during a call.
package erd
