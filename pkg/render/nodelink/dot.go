package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/paraflow/pkg/flow"
	"github.com/matzehuels/paraflow/pkg/graph"
	"github.com/matzehuels/paraflow/pkg/render"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/styles"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed appends the category and branch depth to each label.
	Detailed bool
	// FontSize is the Graphviz label size in points. Zero uses 16.
	FontSize float64
}

// ToDOT converts steps to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Each category keeps its flowchart shape and fill: terminals are rounded
// boxes, decisions diamonds and I/O steps parallelograms.
func ToDOT(steps []flow.Step, opts Options) string {
	size := opts.FontSize
	if size <= 0 {
		size = 16
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", color=%q, penwidth=2, fontsize=%g, margin=\"0.3,0.15\"];\n",
		styles.Default.Stroke, size)
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=2, arrowsize=0.8];\n", styles.Default.Stroke)
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("\n")

	for i, s := range steps {
		attrs := fmtAttrs(s, fmtLabel(s, opts.Detailed))
		fmt.Fprintf(&buf, "  %s [%s];\n", quote(graph.NodeID(i)), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i := 1; i < len(steps); i++ {
		fmt.Fprintf(&buf, "  %s -> %s;\n", quote(graph.NodeID(i-1)), quote(graph.NodeID(i)))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(s flow.Step, detailed bool) string {
	if !detailed {
		return s.Text
	}
	return fmt.Sprintf("%s\n%s, depth %d", s.Text, s.Category, s.Depth)
}

func fmtAttrs(s flow.Step, label string) []string {
	shape := styles.Default.Shape(s.Category)
	attrs := []string{
		"label=" + quote(label),
		"fillcolor=" + quote(shape.Fill),
	}
	switch shape.Outline {
	case styles.Diamond:
		attrs = append(attrs, "shape=diamond", `style="filled"`)
	case styles.Parallelogram:
		attrs = append(attrs, "shape=parallelogram", `style="filled"`)
	}
	return attrs
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r\n", `\n`, "\n", `\n`, "\r", `\n`)

// quote returns s as a DOT double-quoted string. Only backslashes, quotes
// and line breaks are escaped; every other rune is written as is.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := renderDOT(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph directly to PNG with Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

// RenderPDF renders a DOT graph to SVG and converts it with [render.ToPDF].
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// SVGSize reports the width and height from an SVG's viewBox.
func SVGSize(svg []byte) (w, h float64, ok bool) {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return 0, 0, false
	}
	w, _ = strconv.ParseFloat(string(match[3]), 64)
	h, _ = strconv.ParseFloat(string(match[4]), 64)
	return w, h, w > 0 && h > 0
}

func normalizeViewBox(svg []byte) []byte {
	w, h, ok := SVGSize(svg)
	if !ok {
		return svg
	}
	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
