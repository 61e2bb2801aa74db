package layout

import (
	"github.com/matzehuels/paraflow/pkg/flow"
)

const (
	// Padding surrounds the whole chart.
	Padding = 40.0
	// StepSpacing is the vertical gap between consecutive nodes.
	StepSpacing = 60.0
	// TextPadding is added to the measured label size of every node.
	TextPadding = 40.0
	// InitialWidth seeds the running maximum node width.
	InitialWidth = 300.0
	// MinNodeWidth and MinNodeHeight floor every node's size.
	MinNodeWidth  = 120.0
	MinNodeHeight = 40.0
)

// Node is a sized and positioned step.
type Node struct {
	Step  flow.Step
	Lines []string
	// CenterX is the horizontal midpoint; Top is the upper edge.
	CenterX float64
	Top     float64
}

func (n Node) Width() float64  { return n.Step.Width }
func (n Node) Height() float64 { return n.Step.Height }
func (n Node) Left() float64   { return n.CenterX - n.Step.Width/2 }
func (n Node) Right() float64  { return n.CenterX + n.Step.Width/2 }
func (n Node) Bottom() float64 { return n.Top + n.Step.Height }
func (n Node) CenterY() float64 {
	return n.Top + n.Step.Height/2
}

// Arrow is a straight connector between consecutive nodes, pointing at (X2, Y2).
type Arrow struct {
	X1, Y1, X2, Y2 float64
}

// Layout is the complete geometry of one flowchart.
type Layout struct {
	Width    float64
	Height   float64
	Padding  float64
	Spacing  float64
	FontSize float64
	Nodes    []Node
	Arrows   []Arrow
}

// Steps returns the sized steps in order.
func (l Layout) Steps() []flow.Step {
	out := make([]flow.Step, len(l.Nodes))
	for i, n := range l.Nodes {
		out[i] = n.Step
	}
	return out
}

// Empty reports whether the layout has no nodes.
func (l Layout) Empty() bool { return len(l.Nodes) == 0 }

// Option configures [Build].
type Option func(*config)

type config struct {
	initialWidth float64
	padding      float64
	spacing      float64
	fontSize     float64
}

// WithInitialWidth overrides [InitialWidth].
func WithInitialWidth(w float64) Option { return func(c *config) { c.initialWidth = w } }

// WithPadding overrides [Padding].
func WithPadding(p float64) Option { return func(c *config) { c.padding = p } }

// WithSpacing overrides [StepSpacing].
func WithSpacing(s float64) Option { return func(c *config) { c.spacing = s } }

// WithFontSize records the font size the metric was built for.
func WithFontSize(size float64) Option { return func(c *config) { c.fontSize = size } }

// Build sizes and positions steps. The input slice is not modified.
func Build(steps []flow.Step, m Metric, opts ...Option) Layout {
	cfg := config{
		initialWidth: InitialWidth,
		padding:      Padding,
		spacing:      StepSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes := make([]Node, len(steps))
	maxWidth := cfg.initialWidth
	height := 2 * cfg.padding

	for i, s := range steps {
		meas := Measure(s.Text, maxWidth-TextPadding, m)
		s.Width = max(meas.Width+TextPadding, MinNodeWidth)
		s.Height = max(meas.Height+TextPadding, MinNodeHeight)
		maxWidth = max(maxWidth, s.Width)
		height += s.Height + cfg.spacing
		nodes[i] = Node{Step: s, Lines: meas.Lines}
	}

	width := maxWidth + 2*cfg.padding
	centerX := width / 2
	y := cfg.padding

	var arrows []Arrow
	for i := range nodes {
		nodes[i].CenterX = centerX
		nodes[i].Top = y
		next := y + nodes[i].Height() + cfg.spacing
		if i < len(nodes)-1 {
			bottom := nodes[i].Bottom()
			arrows = append(arrows, Arrow{X1: centerX, Y1: bottom, X2: centerX, Y2: bottom + cfg.spacing/2})
		}
		y = next
	}

	return Layout{
		Width:    width,
		Height:   height,
		Padding:  cfg.padding,
		Spacing:  cfg.spacing,
		FontSize: cfg.fontSize,
		Nodes:    nodes,
		Arrows:   arrows,
	}
}
