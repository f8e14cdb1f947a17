package erd

import "fmt"

const documentTemplate = `digraph {
    // --------------------------------------------------
    // Box for entities
    // --------------------------------------------------
    node [shape=none, margin=0.7]
    rankdir=LR;

    %s
    %s
}
`

// Assemble wraps the node and edge fragments in the document preamble, which
// sets left-to-right layout and borderless nodes.
func Assemble(nodes, edges string) string {
	return fmt.Sprintf(documentTemplate, nodes, edges)
}

// ToDOT renders rels as a complete DOT document. It is the composition of
// [BuildMapping], [RenderNodes], [RenderEdges] and [Assemble].
func ToDOT(rels []Relationship, colors Colors) string {
	nodes := RenderNodes(BuildMapping(rels), colors)
	return Assemble(nodes, RenderEdges(rels))
}
