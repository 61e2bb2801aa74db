package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/paraflow/pkg/graph"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/layout"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/sink"
	"github.com/matzehuels/paraflow/pkg/render/nodelink"
)

// RenderFromLayout renders output from a graph.Layout.
// This is the preferred entry point when the layout was computed elsewhere
// (cached, read from a JSON file, or posted to the API).
func RenderFromLayout(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, error) {
	if l.IsNodelink() {
		return RenderNodelink(ctx, l, opts)
	}
	fl, err := layout.Parse(l)
	if err != nil {
		return nil, fmt.Errorf("convert layout: %w", err)
	}
	return RenderFlowchart(ctx, fl, opts)
}

// RenderFlowchart generates flowchart outputs.
func RenderFlowchart(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithScale(opts.Scale), sink.WithBackground(opts.Background))
		case FormatSVG:
			data = sink.RenderSVG(l, sink.WithSVGBackground(opts.Background))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, sink.WithSVGBackground(opts.Background))
		case FormatJSON:
			data, err = sink.RenderJSON(l)
		case FormatDOT:
			data = []byte(nodelink.ToDOT(l.Steps(), nodelink.Options{FontSize: l.FontSize}))
		default:
			return nil, fmt.Errorf("unsupported flowchart format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// RenderNodelink generates nodelink outputs from a layout.
// The layout must be a nodelink layout (VizType = "nodelink") with a DOT string.
func RenderNodelink(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, error) {
	dot, err := nodelink.Parse(l)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot)
		case FormatPDF:
			data, err = nodelink.RenderPDF(ctx, dot)
		case FormatJSON:
			data, err = graph.MarshalLayout(l)
		case FormatDOT:
			data = []byte(dot)
		default:
			return nil, fmt.Errorf("unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
