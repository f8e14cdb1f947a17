// Package pkg provides the libraries behind erdot.
//
// # Overview
//
// erdot turns a list of field-to-field relationships into a Graphviz DOT
// entity relationship diagram. The pkg directory is organized as:
//
//  1. [erd] - The diagram core: mapping, node and edge rendering, assembly
//  2. [io] - Relationship files (JSON, YAML), color files (TOML), export
//  3. [render] - DOT to SVG/PNG/PDF through the embedded Graphviz
//  4. [errors] - Coded errors shared by the CLI and HTTP server
//  5. [buildinfo] - Version information set at build time
//
// # Data Flow
//
//	relationships.json / .yaml
//	         ↓
//	    [io] (decode + validate names)
//	         ↓
//	    [erd] (BuildMapping → RenderNodes, RenderEdges → Assemble)
//	         ↓
//	    DOT ─→ [render] ─→ SVG/PNG/PDF
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/erdot/pkg/erd"
//	    "github.com/matzehuels/erdot/pkg/render"
//	)
//
//	rels := []erd.Relationship{
//	    erd.Rel("orders", "customer_id", "customers", "id"),
//	    erd.Rel("order items", "order id", "orders", "id"),
//	}
//	dot := erd.ToDOT(rels, erd.NewColors(map[string]string{"orders": "lightyellow"}))
//	svg, err := render.Render(ctx, dot, render.FormatSVG)
//
// [erd]: https://pkg.go.dev/github.com/matzehuels/erdot/pkg/erd
// [io]: https://pkg.go.dev/github.com/matzehuels/erdot/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/erdot/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/erdot/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/erdot/pkg/buildinfo
package pkg
