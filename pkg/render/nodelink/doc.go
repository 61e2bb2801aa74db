// Package nodelink renders steps as a Graphviz node-link diagram.
//
// # Overview
//
// This is the alternative to the hand-laid-out flowchart: Graphviz positions
// the nodes, while each node keeps its flowchart shape and fill. It is
// selected with the "nodelink" viz type.
//
// # Usage
//
// Convert steps to DOT format, then render:
//
//	dot := nodelink.ToDOT(steps, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// PDF output goes through SVG and requires librsvg (rsvg-convert):
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//
// # DOT Format
//
// The generated DOT uses a top-to-bottom layout (rankdir=TB), names nodes
// step-0, step-1, ... and connects consecutive steps only.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and PNG
// rendering.
package nodelink
