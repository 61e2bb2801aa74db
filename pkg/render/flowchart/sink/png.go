package sink

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/matzehuels/paraflow/pkg/fonts"
	"github.com/matzehuels/paraflow/pkg/render/flowchart"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/layout"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background string
	theme      styles.Theme
}

// WithScale sets the PNG scale factor (default 1.0). A scale of 2.0 produces
// a 2x resolution image.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithBackground paints an opaque background color (e.g. "#FFFFFF") instead
// of leaving the image transparent.
func WithBackground(hex string) PNGOption {
	return func(r *pngRenderer) { r.background = hex }
}

// WithPNGTheme overrides the default palette.
func WithPNGTheme(t styles.Theme) PNGOption {
	return func(r *pngRenderer) { r.theme = t }
}

// RenderPNG rasterizes the layout with the embedded Go font.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1.0, theme: styles.Default}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, fmt.Errorf("invalid PNG scale %v", r.scale)
	}

	c, err := newCanvas(l, r.scale, r.background)
	if err != nil {
		return nil, err
	}
	flowchart.DrawWithTheme(c, l, r.theme)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// canvas adapts *gg.Context to styles.Surface. Coordinates are layout units
// and are multiplied by scale before reaching gg, so strokes and glyphs stay
// crisp at any resolution.
type canvas struct {
	*gg.Context
	scale      float64
	background string
}

func newCanvas(l layout.Layout, scale float64, background string) (*canvas, error) {
	w, h := flowchart.Size(l)
	size := l.FontSize
	if size <= 0 {
		size = fonts.DefaultSize
	}
	face, err := fonts.Face(size * scale)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(int(float64(w)*scale), int(float64(h)*scale))
	dc.SetFontFace(face)
	return &canvas{Context: dc, scale: scale, background: background}, nil
}

func (c *canvas) Clear() {
	if c.background != "" {
		c.Context.SetHexColor(c.background)
	} else {
		c.Context.SetRGBA(0, 0, 0, 0)
	}
	c.Context.Clear()
}

func (c *canvas) SetLineWidth(w float64) { c.Context.SetLineWidth(w * c.scale) }
func (c *canvas) MoveTo(x, y float64)    { c.Context.MoveTo(x*c.scale, y*c.scale) }
func (c *canvas) LineTo(x, y float64)    { c.Context.LineTo(x*c.scale, y*c.scale) }

func (c *canvas) QuadraticTo(x1, y1, x2, y2 float64) {
	c.Context.QuadraticTo(x1*c.scale, y1*c.scale, x2*c.scale, y2*c.scale)
}

func (c *canvas) DrawStringAnchored(s string, x, y, ax, ay float64) {
	c.Context.DrawStringAnchored(s, x*c.scale, y*c.scale, ax, ay)
}
