package flowchart

import (
	"math"

	"github.com/matzehuels/paraflow/pkg/render/flowchart/layout"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/styles"
)

// Size returns the integer surface dimensions for l.
func Size(l layout.Layout) (w, h int) {
	return int(math.Ceil(l.Width)), int(math.Ceil(l.Height))
}

// Draw paints l onto s with the default theme. A nil or zero-size surface
// is left untouched.
func Draw(s styles.Surface, l layout.Layout) {
	DrawWithTheme(s, l, styles.Default)
}

// DrawWithTheme is [Draw] with an explicit theme.
func DrawWithTheme(s styles.Surface, l layout.Layout, t styles.Theme) {
	if !styles.Usable(s) {
		return
	}
	s.Clear()
	for i, n := range l.Nodes {
		t.DrawNode(s, n)
		if i < len(l.Arrows) {
			t.DrawArrow(s, l.Arrows[i])
		}
	}
}
