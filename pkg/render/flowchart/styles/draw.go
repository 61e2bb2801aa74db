package styles

import (
	"math"

	"github.com/matzehuels/paraflow/pkg/render/flowchart/layout"
)

// ArrowHeadLength is the length of an arrowhead's sides.
const ArrowHeadLength = 10.0

const arrowHeadAngle = math.Pi / 6

// DrawNode draws n with the [Default] theme.
func DrawNode(s Surface, n layout.Node) { Default.DrawNode(s, n) }

// DrawArrow draws a with the [Default] theme.
func DrawArrow(s Surface, a layout.Arrow) { Default.DrawArrow(s, a) }

// DrawNode fills and outlines the node's shape, then draws its label.
func (t Theme) DrawNode(s Surface, n layout.Node) {
	if !Usable(s) {
		return
	}
	shape := t.Shape(n.Step.Category)
	x, y, w, h := n.Left(), n.Top, n.Width(), n.Height()

	switch shape.Outline {
	case Diamond:
		s.MoveTo(n.CenterX, y)
		s.LineTo(x+w, y+h/2)
		s.LineTo(n.CenterX, y+h)
		s.LineTo(x, y+h/2)
		s.ClosePath()
	case Parallelogram:
		s.MoveTo(x+shape.Skew, y)
		s.LineTo(x+w, y)
		s.LineTo(x+w-shape.Skew, y+h)
		s.LineTo(x, y+h)
		s.ClosePath()
	default:
		roundedRect(s, x, y, w, h, shape.Radius)
	}

	s.SetHexColor(shape.Fill)
	s.FillPreserve()
	s.SetHexColor(t.Stroke)
	s.SetLineWidth(t.LineWidth)
	s.Stroke()

	t.drawLabel(s, n)
}

func (t Theme) drawLabel(s Surface, n layout.Node) {
	if len(n.Lines) == 0 {
		return
	}
	s.SetHexColor(t.Text)
	first := n.CenterY() - float64(len(n.Lines)-1)*layout.LineHeight/2
	for i, line := range n.Lines {
		s.DrawStringAnchored(line, n.CenterX, first+float64(i)*layout.LineHeight, 0.5, 0.5)
	}
}

// DrawArrow strokes the shaft and fills the head at (X2, Y2).
func (t Theme) DrawArrow(s Surface, a layout.Arrow) {
	if !Usable(s) {
		return
	}
	s.SetHexColor(t.Stroke)
	s.SetLineWidth(t.LineWidth)
	s.MoveTo(a.X1, a.Y1)
	s.LineTo(a.X2, a.Y2)
	s.Stroke()

	angle := math.Atan2(a.Y2-a.Y1, a.X2-a.X1)
	s.SetHexColor(t.Text)
	s.MoveTo(a.X2, a.Y2)
	s.LineTo(a.X2-ArrowHeadLength*math.Cos(angle-arrowHeadAngle), a.Y2-ArrowHeadLength*math.Sin(angle-arrowHeadAngle))
	s.LineTo(a.X2-ArrowHeadLength*math.Cos(angle+arrowHeadAngle), a.Y2-ArrowHeadLength*math.Sin(angle+arrowHeadAngle))
	s.ClosePath()
	s.Fill()
}

// roundedRect traces a rectangle whose corners are quadratic curves with
// control points at the square corners.
func roundedRect(s Surface, x, y, w, h, r float64) {
	r = min(r, w/2, h/2)
	s.MoveTo(x+r, y)
	s.LineTo(x+w-r, y)
	s.QuadraticTo(x+w, y, x+w, y+r)
	s.LineTo(x+w, y+h-r)
	s.QuadraticTo(x+w, y+h, x+w-r, y+h)
	s.LineTo(x+r, y+h)
	s.QuadraticTo(x, y+h, x, y+h-r)
	s.LineTo(x, y+r)
	s.QuadraticTo(x, y, x+r, y)
	s.ClosePath()
}
