// Package nodelink renders the target graph as a Graphviz node-link diagram.
//
// # Overview
//
// [Builder] is an alternate traverse.Observer: instead of a JSON document it
// accumulates a DOT digraph. The same filter applies, so the diagram shows
// exactly the nodes and edges the JSON export would contain.
//
// # Usage
//
//	b := nodelink.NewBuilder(project, f, s)
//	traverse.Run(project, b)
//	dot := b.DOT()
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0) // 2x scale
//
// # DOT Format
//
// Nodes get the ids node0, node1, ... in the order the traversal first
// reports them. The target kind picks the shape:
//
//	executable  egg        static    box
//	shared      ellipse    module    octagon
//	interface   pentagon   object    hexagon
//	unknown     septagon   utility   box
//
// The dependency kind picks the edge style: private links are dashed,
// interface links dotted, public links solid, object links dashed and gray,
// order-only links dotted with an empty arrowhead. Indirect edges are dotted
// and gray60.
//
// Labels show the target name followed by one "(alias)" line per alias.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
