// Package render holds the output conversions shared by the diagram
// renderers.
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// Use [Available] to check for the tool before offering these formats.
// Graphviz diagrams of the target graph live in the [nodelink] subpackage.
package render
