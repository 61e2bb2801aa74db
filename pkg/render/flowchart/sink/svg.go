package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/paraflow/pkg/fonts"
	"github.com/matzehuels/paraflow/pkg/render/flowchart"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/layout"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme      styles.Theme
	background string
}

// WithSVGTheme overrides the default palette.
func WithSVGTheme(t styles.Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithSVGBackground adds a full-size background rectangle.
func WithSVGBackground(hex string) SVGOption { return func(r *svgRenderer) { r.background = hex } }

// RenderSVG renders the layout as a standalone SVG document.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{theme: styles.Default}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := flowchart.Size(l)
	size := l.FontSize
	if size <= 0 {
		size = fonts.DefaultSize
	}
	s := &svgSurface{w: w, h: h, fontSize: size, lineWidth: 1, color: "#000000"}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", w, h, w, h)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.background)
	}
	flowchart.DrawWithTheme(s, l, r.theme)
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// svgSurface records surface calls as SVG elements.
type svgSurface struct {
	w, h      int
	fontSize  float64
	color     string
	lineWidth float64
	path      strings.Builder
	body      bytes.Buffer
}

func (s *svgSurface) Width() int             { return s.w }
func (s *svgSurface) Height() int            { return s.h }
func (s *svgSurface) Clear()                 { s.body.Reset(); s.path.Reset() }
func (s *svgSurface) SetHexColor(hex string) { s.color = hex }
func (s *svgSurface) SetLineWidth(w float64) { s.lineWidth = w }
func (s *svgSurface) MoveTo(x, y float64)    { fmt.Fprintf(&s.path, "M%s %s ", num(x), num(y)) }
func (s *svgSurface) LineTo(x, y float64)    { fmt.Fprintf(&s.path, "L%s %s ", num(x), num(y)) }
func (s *svgSurface) ClosePath()             { s.path.WriteString("Z ") }
func (s *svgSurface) Fill()                  { s.FillPreserve(); s.path.Reset() }
func (s *svgSurface) QuadraticTo(x1, y1, x2, y2 float64) {
	fmt.Fprintf(&s.path, "Q%s %s %s %s ", num(x1), num(y1), num(x2), num(y2))
}

func (s *svgSurface) FillPreserve() {
	if d := s.d(); d != "" {
		fmt.Fprintf(&s.body, `  <path d="%s" fill="%s"/>`+"\n", d, s.color)
	}
}

func (s *svgSurface) Stroke() {
	if d := s.d(); d != "" {
		fmt.Fprintf(&s.body, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linejoin="round"/>`+"\n",
			d, s.color, num(s.lineWidth))
	}
	s.path.Reset()
}

func (s *svgSurface) DrawStringAnchored(text string, x, y, ax, ay float64) {
	anchor := "middle"
	switch {
	case ax <= 0:
		anchor = "start"
	case ax >= 1:
		anchor = "end"
	}
	baseline := "central"
	switch {
	case ay <= 0:
		baseline = "text-after-edge"
	case ay >= 1:
		baseline = "hanging"
	}
	fmt.Fprintf(&s.body, `  <text x="%s" y="%s" text-anchor="%s" dominant-baseline="%s" font-family="%s" font-size="%s" fill="%s">`,
		num(x), num(y), anchor, baseline, fonts.FontFamily, num(s.fontSize), s.color)
	_ = xml.EscapeText(&s.body, []byte(text))
	s.body.WriteString("</text>\n")
}

func (s *svgSurface) d() string { return strings.TrimSpace(s.path.String()) }

func num(v float64) string {
	out := fmt.Sprintf("%.2f", v)
	out = strings.TrimRight(out, "0")
	return strings.TrimSuffix(out, ".")
}
