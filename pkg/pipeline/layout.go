package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/paraflow/pkg/flow"
	"github.com/matzehuels/paraflow/pkg/fonts"
	"github.com/matzehuels/paraflow/pkg/graph"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/layout"
	"github.com/matzehuels/paraflow/pkg/render/nodelink"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout generates a complete layout for any visualization type.
// This is the unified entry point for generating serializable layout data.
func GenerateLayout(ctx context.Context, steps []flow.Step, opts Options) (graph.Layout, error) {
	if opts.IsNodelink() {
		return generateNodelinkLayout(ctx, steps, opts)
	}
	l, err := BuildFlowchart(steps, opts.FontSize)
	if err != nil {
		return graph.Layout{}, err
	}
	return l.Export(), nil
}

// BuildFlowchart measures steps with the embedded font at the given size and
// lays them out as a vertical flowchart.
func BuildFlowchart(steps []flow.Step, fontSize float64) (layout.Layout, error) {
	m, err := fonts.NewMetric(fontSize)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("load font: %w", err)
	}
	return layout.Build(steps, m, layout.WithFontSize(m.Size())), nil
}

// generateNodelinkLayout builds the DOT graph and sizes it by rendering
// once through Graphviz.
func generateNodelinkLayout(ctx context.Context, steps []flow.Step, opts Options) (graph.Layout, error) {
	dot := nodelink.ToDOT(steps, nodelink.Options{FontSize: opts.FontSize})

	var w, h float64
	if len(steps) > 0 {
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err != nil {
			return graph.Layout{}, fmt.Errorf("size nodelink layout: %w", err)
		}
		w, h, _ = nodelink.SVGSize(svg)
	}

	l := nodelink.Export(dot, steps, w, h)
	l.FontSize = opts.FontSize
	return l, nil
}
