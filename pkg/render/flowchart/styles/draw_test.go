package styles

import (
	"math"
	"testing"

	"github.com/matzehuels/paraflow/pkg/flow"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/layout"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/styles/stylestest"
)

func node(c flow.Category, lines ...string) layout.Node {
	return layout.Node{
		Step:    flow.Step{Text: "x", Category: c, Width: 200, Height: 60},
		Lines:   lines,
		CenterX: 150,
		Top:     40,
	}
}

func TestDrawNodeFillColors(t *testing.T) {
	tests := []struct {
		category flow.Category
		fill     string
	}{
		{flow.Terminal, "#FF6B6B"},
		{flow.Process, "#4ECDC4"},
		{flow.Decision, "#FFD166"},
		{flow.IO, "#A5D8FF"},
	}
	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			r := stylestest.New(300, 200)
			DrawNode(r, node(tt.category, "x"))

			colors := r.Colors()
			want := []string{tt.fill, "#333333", "#000000"}
			if len(colors) != len(want) {
				t.Fatalf("colors = %v, want %v", colors, want)
			}
			for i := range want {
				if colors[i] != want[i] {
					t.Errorf("colors[%d] = %s, want %s", i, colors[i], want[i])
				}
			}
			if r.Shapes() != 1 || r.Count("Stroke") != 1 {
				t.Errorf("fill/stroke = %d/%d, want 1/1", r.Shapes(), r.Count("Stroke"))
			}
		})
	}
}

func TestDrawNodeOutlines(t *testing.T) {
	t.Run("Terminal", func(t *testing.T) {
		r := stylestest.New(300, 200)
		DrawNode(r, node(flow.Terminal))
		if got := r.Count("QuadraticTo"); got != 4 {
			t.Errorf("corners = %d, want 4", got)
		}
		// First point sits one radius in from the left edge.
		if first := r.Ops[0]; first.Name != "MoveTo" || first.Args[0] != 50+20 || first.Args[1] != 40 {
			t.Errorf("first op = %v", first)
		}
	})

	t.Run("Process", func(t *testing.T) {
		r := stylestest.New(300, 200)
		DrawNode(r, node(flow.Process))
		if first := r.Ops[0]; first.Args[0] != 50+5 {
			t.Errorf("first op = %v, want radius 5", first)
		}
	})

	t.Run("Decision", func(t *testing.T) {
		r := stylestest.New(300, 200)
		DrawNode(r, node(flow.Decision))
		want := [][]float64{{150, 40}, {250, 70}, {150, 100}, {50, 70}}
		for i, w := range want {
			op := r.Ops[i]
			if op.Args[0] != w[0] || op.Args[1] != w[1] {
				t.Errorf("vertex %d = %v, want %v", i, op.Args, w)
			}
		}
		if r.Count("QuadraticTo") != 0 {
			t.Error("diamond should have no curves")
		}
	})

	t.Run("IO", func(t *testing.T) {
		r := stylestest.New(300, 200)
		DrawNode(r, node(flow.IO))
		want := [][]float64{{70, 40}, {250, 40}, {230, 100}, {50, 100}}
		for i, w := range want {
			op := r.Ops[i]
			if op.Args[0] != w[0] || op.Args[1] != w[1] {
				t.Errorf("vertex %d = %v, want %v", i, op.Args, w)
			}
		}
	})
}

func TestDrawNodeLabel(t *testing.T) {
	r := stylestest.New(300, 200)
	n := node(flow.Process, "first line", "second line")
	DrawNode(r, n)

	texts := r.Texts()
	if len(texts) != 2 || texts[0] != "first line" || texts[1] != "second line" {
		t.Fatalf("texts = %q", texts)
	}
	var ys []float64
	for _, op := range r.Ops {
		if op.Name == "DrawStringAnchored" {
			if op.Args[0] != n.CenterX || op.Args[2] != 0.5 || op.Args[3] != 0.5 {
				t.Errorf("label not centered: %v", op)
			}
			ys = append(ys, op.Args[1])
		}
	}
	// Two lines straddle the node's vertical center.
	if ys[0] != 60 || ys[1] != 80 {
		t.Errorf("line ys = %v, want [60 80]", ys)
	}
}

func TestDrawArrow(t *testing.T) {
	r := stylestest.New(300, 300)
	DrawArrow(r, layout.Arrow{X1: 100, Y1: 100, X2: 100, Y2: 160})

	if r.Count("Stroke") != 1 || r.Count("Fill") != 1 {
		t.Fatalf("stroke/fill = %d/%d, want 1/1", r.Count("Stroke"), r.Count("Fill"))
	}

	var head []stylestest.Op
	for i, op := range r.Ops {
		if op.Name == "MoveTo" && op.Args[1] == 160 {
			head = r.Ops[i : i+3]
		}
	}
	if head == nil {
		t.Fatal("no arrowhead path starting at the tip")
	}
	// Pointing straight down, the head's base is 10·cos(30°) above the tip.
	wantY := 160 - ArrowHeadLength*math.Cos(math.Pi/6)
	for _, op := range head[1:] {
		if math.Abs(op.Args[1]-wantY) > 1e-9 {
			t.Errorf("head y = %v, want %v", op.Args[1], wantY)
		}
		if math.Abs(math.Abs(op.Args[0]-100)-ArrowHeadLength/2) > 1e-9 {
			t.Errorf("head x offset = %v, want ±5", op.Args[0]-100)
		}
	}
}

func TestUnusableSurface(t *testing.T) {
	DrawNode(nil, node(flow.Process, "x"))
	DrawArrow(nil, layout.Arrow{})

	r := stylestest.New(0, 0)
	DrawNode(r, node(flow.Process, "x"))
	DrawArrow(r, layout.Arrow{Y2: 10})
	if len(r.Ops) != 0 {
		t.Errorf("zero-size surface recorded %d ops", len(r.Ops))
	}
}

func TestThemeShapeFallback(t *testing.T) {
	if got := Default.Shape(flow.Category(42)); got.Fill != "#4ECDC4" {
		t.Errorf("fallback fill = %s, want process fill", got.Fill)
	}
}
