// Package stylestest provides a recording surface for drawing tests.
package stylestest

import "fmt"

// Op is one recorded surface call.
type Op struct {
	Name string
	Args []float64
	Text string
}

func (o Op) String() string {
	if o.Text != "" {
		return fmt.Sprintf("%s(%q, %v)", o.Name, o.Text, o.Args)
	}
	return fmt.Sprintf("%s%v", o.Name, o.Args)
}

// Recorder implements styles.Surface by recording every call.
type Recorder struct {
	W, H int
	Ops  []Op
}

// New returns a recorder of the given size.
func New(w, h int) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) record(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
}

func (r *Recorder) Width() int             { return r.W }
func (r *Recorder) Height() int            { return r.H }
func (r *Recorder) Clear()                 { r.record("Clear") }
func (r *Recorder) SetHexColor(hex string) { r.Ops = append(r.Ops, Op{Name: "SetHexColor", Text: hex}) }
func (r *Recorder) SetLineWidth(w float64) { r.record("SetLineWidth", w) }
func (r *Recorder) MoveTo(x, y float64)    { r.record("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64)    { r.record("LineTo", x, y) }
func (r *Recorder) ClosePath()             { r.record("ClosePath") }
func (r *Recorder) Fill()                  { r.record("Fill") }
func (r *Recorder) FillPreserve()          { r.record("FillPreserve") }
func (r *Recorder) Stroke()                { r.record("Stroke") }
func (r *Recorder) QuadraticTo(x1, y1, x2, y2 float64) {
	r.record("QuadraticTo", x1, y1, x2, y2)
}

func (r *Recorder) DrawStringAnchored(s string, x, y, ax, ay float64) {
	r.Ops = append(r.Ops, Op{Name: "DrawStringAnchored", Args: []float64{x, y, ax, ay}, Text: s})
}

// Count returns how many times the named operation was recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Colors returns the arguments of every SetHexColor call, in order.
func (r *Recorder) Colors() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Name == "SetHexColor" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Texts returns every drawn string, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Name == "DrawStringAnchored" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Shapes counts filled-and-stroked paths, which is how nodes are drawn.
func (r *Recorder) Shapes() int { return r.Count("FillPreserve") }

// Reset drops all recorded operations.
func (r *Recorder) Reset() { r.Ops = nil }
