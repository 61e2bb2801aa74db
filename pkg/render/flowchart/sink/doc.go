// Package sink encodes flowchart layouts as PNG, SVG, PDF or JSON.
//
// Every sink creates a surface sized to the layout and paints it with
// flowchart.Draw, so all formats share one drawing path:
//
//	png, err := sink.RenderPNG(l)                  // github.com/fogleman/gg raster
//	svg := sink.RenderSVG(l)                       // recorded vector paths
//	pdf, err := sink.RenderPDF(ctx, l)             // SVG through rsvg-convert
//	data, err := sink.RenderJSON(l)                // graph.Layout serialization
//
// PNG output has a transparent background, like an HTML canvas export.
package sink
