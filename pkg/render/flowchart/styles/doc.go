// Package styles draws flowchart nodes and arrows onto a [Surface].
//
// A [Surface] is an immediate-mode 2D path API. *gg.Context from
// github.com/fogleman/gg satisfies it directly, and the sink package provides
// an SVG implementation, so the same drawing code produces raster and vector
// output.
//
// # Shapes
//
// Each step category maps to one [Shape] in a [Theme]:
//
//	terminal  rounded rectangle, radius 20   #FF6B6B
//	process   rounded rectangle, radius 5    #4ECDC4
//	decision  diamond                        #FFD166
//	io        parallelogram, skew 20         #A5D8FF
//
// Shapes are filled, then outlined in #333333 at width 2. Labels are drawn
// in black, one wrapped line per row, centered on the node.
//
// # Arrows
//
// [DrawArrow] strokes a straight shaft and fills a triangular head of length
// [ArrowHeadLength] whose sides leave the tip at ±30° from the shaft.
package styles
