// Package render provides the output side of paraflow: drawing layouts and
// encoding the result.
//
// # Overview
//
//   - Flowcharts (in [flowchart] and its subpackages)
//   - Node-link diagrams (in [nodelink] subpackage)
//   - Export helpers: [DataURL] and [ToPDF]
//
// # Flowcharts
//
// [flowchart/layout] turns classified steps into sized, positioned nodes;
// [flowchart/styles] draws them onto any surface; [flowchart/sink] creates
// PNG, SVG, PDF and JSON output.
//
//	l := layout.Build(steps, metric)
//	png, err := sink.RenderPNG(l)
//	url := render.DataURL(png)
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF by running rsvg-convert (from librsvg).
// Both flowchart and node-link renderers use it; without the tool, PDF output
// fails with [ErrNoPDFConverter] and every other format still works.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the same steps as a Graphviz diagram.
//
//	dot := nodelink.ToDOT(steps, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [flowchart]: github.com/matzehuels/paraflow/pkg/render/flowchart
// [flowchart/layout]: github.com/matzehuels/paraflow/pkg/render/flowchart/layout
// [flowchart/styles]: github.com/matzehuels/paraflow/pkg/render/flowchart/styles
// [flowchart/sink]: github.com/matzehuels/paraflow/pkg/render/flowchart/sink
// [nodelink]: github.com/matzehuels/paraflow/pkg/render/nodelink
package render
