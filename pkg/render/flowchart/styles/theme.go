package styles

import "github.com/matzehuels/paraflow/pkg/flow"

// Outline selects the path used for a node.
type Outline int

const (
	RoundedRect Outline = iota
	Diamond
	Parallelogram
)

func (o Outline) String() string {
	switch o {
	case RoundedRect:
		return "rounded-rect"
	case Diamond:
		return "diamond"
	case Parallelogram:
		return "parallelogram"
	}
	return "unknown"
}

// Shape is the appearance of one category.
type Shape struct {
	Outline Outline
	Fill    string
	// Radius is the corner radius of rounded rectangles; Skew is the
	// horizontal offset of a parallelogram's slanted sides.
	Radius float64
	Skew   float64
}

// Theme maps categories to shapes and holds shared colors.
type Theme struct {
	Shapes    map[flow.Category]Shape
	Stroke    string
	LineWidth float64
	Text      string
}

// Default is the standard flowchart palette.
var Default = Theme{
	Shapes: map[flow.Category]Shape{
		flow.Terminal: {Outline: RoundedRect, Fill: "#FF6B6B", Radius: 20},
		flow.Process:  {Outline: RoundedRect, Fill: "#4ECDC4", Radius: 5},
		flow.Decision: {Outline: Diamond, Fill: "#FFD166"},
		flow.IO:       {Outline: Parallelogram, Fill: "#A5D8FF", Skew: 20},
	},
	Stroke:    "#333333",
	LineWidth: 2,
	Text:      "#000000",
}

// Shape returns the shape for c, falling back to the process shape.
func (t Theme) Shape(c flow.Category) Shape {
	if s, ok := t.Shapes[c]; ok {
		return s
	}
	return t.Shapes[flow.Process]
}
