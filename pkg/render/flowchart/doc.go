// Package flowchart paints a computed layout onto a drawing surface.
//
// The pipeline is:
//
//	steps := flow.Segment(text)
//	l := layout.Build(steps, metric)
//	flowchart.Draw(surface, l)
//
// [Draw] clears the surface, then draws every node top to bottom and an
// arrow between each consecutive pair. The surface is expected to be sized
// to the layout (see [Size]); sinks in the sink subpackage create suitably
// sized surfaces and encode them as PNG, SVG or PDF.
package flowchart
