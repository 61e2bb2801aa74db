package flowchart

import (
	"testing"

	"github.com/matzehuels/paraflow/pkg/flow"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/layout"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/styles/stylestest"
)

type charMetric struct{}

func (charMetric) MeasureString(s string) (float64, float64) {
	return float64(len([]rune(s))) * 8, layout.LineHeight
}

func build(text string) layout.Layout {
	return layout.Build(flow.Segment(text), charMetric{})
}

func TestDrawScenarios(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantShapes int
		wantArrows int
		wantHeight float64
	}{
		{
			name:       "Empty",
			text:       "",
			wantShapes: 0,
			wantArrows: 0,
			wantHeight: 80,
		},
		{
			name:       "SingleIO",
			text:       "Print the result.",
			wantShapes: 1,
			wantArrows: 0,
			wantHeight: 80 + 60 + 60,
		},
		{
			name:       "StartCheckEnd",
			text:       "Start the process. Check if X. End.",
			wantShapes: 3,
			wantArrows: 2,
			wantHeight: 80 + 3*(60+60),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := build(tt.text)
			if l.Height != tt.wantHeight {
				t.Errorf("height = %v, want %v", l.Height, tt.wantHeight)
			}

			w, h := Size(l)
			r := stylestest.New(w, h)
			Draw(r, l)

			if r.Count("Clear") != 1 {
				t.Errorf("clears = %d, want 1", r.Count("Clear"))
			}
			if got := r.Shapes(); got != tt.wantShapes {
				t.Errorf("shapes = %d, want %d", got, tt.wantShapes)
			}
			// Arrowheads are the only plain fills.
			if got := r.Count("Fill"); got != tt.wantArrows {
				t.Errorf("arrows = %d, want %d", got, tt.wantArrows)
			}
		})
	}
}

func TestDrawOrder(t *testing.T) {
	l := build("Start. Read the file. End.")
	w, h := Size(l)
	r := stylestest.New(w, h)
	Draw(r, l)

	want := []string{"Start.", "Read the file.", "End."}
	got := r.Texts()
	if len(got) != len(want) {
		t.Fatalf("texts = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("texts[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	fills := 0
	for _, c := range r.Colors() {
		switch c {
		case "#FF6B6B", "#4ECDC4", "#FFD166", "#A5D8FF":
			fills++
		}
	}
	if fills != 3 {
		t.Errorf("shape fills = %d, want 3", fills)
	}
}

func TestDrawArrowShafts(t *testing.T) {
	l := build("Start the process. Check if X. End.")
	w, h := Size(l)
	r := stylestest.New(w, h)
	Draw(r, l)

	var shafts [][2]float64
	for i := 2; i < len(r.Ops); i++ {
		if r.Ops[i].Name == "Stroke" && r.Ops[i-1].Name == "LineTo" && r.Ops[i-2].Name == "MoveTo" {
			shafts = append(shafts, [2]float64{r.Ops[i-2].Args[1], r.Ops[i-1].Args[1]})
		}
	}
	if len(shafts) != 2 {
		t.Fatalf("shafts = %v, want 2", shafts)
	}
	for i, sh := range shafts {
		if sh[0] != l.Nodes[i].Bottom() {
			t.Errorf("shaft %d starts at %v, want node bottom %v", i, sh[0], l.Nodes[i].Bottom())
		}
		if got := sh[1] - sh[0]; got != layout.StepSpacing/2 {
			t.Errorf("shaft %d length = %v, want %v", i, got, layout.StepSpacing/2)
		}
	}
}

func TestDrawUnusableSurface(t *testing.T) {
	l := build("Start. End.")
	Draw(nil, l)

	r := stylestest.New(0, 100)
	Draw(r, l)
	if len(r.Ops) != 0 {
		t.Errorf("zero-width surface recorded %d ops", len(r.Ops))
	}
}

func TestSize(t *testing.T) {
	w, h := Size(layout.Layout{Width: 380.5, Height: 80})
	if w != 381 || h != 80 {
		t.Errorf("Size = %dx%d, want 381x80", w, h)
	}
}
