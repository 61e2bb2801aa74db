package styles

// Surface is the drawing target. Paths are built with MoveTo/LineTo/
// QuadraticTo/ClosePath and consumed by Fill or Stroke; FillPreserve keeps
// the path for a following Stroke.
type Surface interface {
	Width() int
	Height() int
	Clear()
	SetHexColor(hex string)
	SetLineWidth(w float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(x1, y1, x2, y2 float64)
	ClosePath()
	Fill()
	FillPreserve()
	Stroke()
	// DrawStringAnchored draws s at (x, y); ax and ay position the anchor
	// within the text box, so 0.5, 0.5 centers it.
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

// Usable reports whether s can be drawn on. A nil or zero-size surface is
// not usable.
func Usable(s Surface) bool {
	return s != nil && s.Width() > 0 && s.Height() > 0
}
