// Package layout computes flowchart geometry: label wrapping, node sizes,
// surface size and the vertical placement of nodes and arrows.
//
// # Measuring
//
// [Measure] greedily wraps words onto lines no wider than a maximum width
// under a [Metric]. A word that is wider than the limit on its own still gets
// a line of its own; words are never split. Each line is [LineHeight] units
// tall.
//
// # Building
//
// [Build] sizes every step (text plus [TextPadding], floored at
// [MinNodeWidth]) and stacks the nodes top to bottom, centered on the
// surface's vertical midline, with [StepSpacing] between consecutive nodes
// and [Padding] around the whole chart:
//
//	height = 2*Padding + Σ(node.Height + StepSpacing)
//	width  = max(InitialWidth, widest node) + 2*Padding
//
// Consecutive nodes are joined by an [Arrow] that starts at the bottom edge of
// one and is half a [StepSpacing] long. Nodes are never branched or indented.
//
// The result is a plain value that sinks draw onto a surface; see the
// flowchart package for drawing.
package layout
