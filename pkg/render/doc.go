// Package render turns DOT documents into images using Graphviz.
//
// # Overview
//
// pkg/erd produces DOT text; this package lays it out and draws it. Layout and
// SVG/PNG drawing run in process through [github.com/goccy/go-graphviz], so no
// Graphviz installation is needed. PDF output converts the SVG with the
// external rsvg-convert tool (from librsvg).
//
//	dot := erd.ToDOT(rels, colors)
//	svg, err := render.Render(ctx, dot, render.FormatSVG)
//
// # Formats
//
//   - dot: the document itself, after checking that Graphviz can parse it
//   - svg: Graphviz SVG with a zero-origin viewBox
//   - png: Graphviz PNG
//   - pdf: SVG converted by rsvg-convert
//
// Use [ParseFormats] to read a comma separated --format flag.
//
// # Validation
//
// [Validate] parses a document without drawing it. erd does not escape names
// beyond replacing spaces, so a table called `a"b` yields DOT that fails
// here with INVALID_INPUT.
package render
