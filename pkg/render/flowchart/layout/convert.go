package layout

import (
	"fmt"

	"github.com/matzehuels/paraflow/pkg/flow"
	"github.com/matzehuels/paraflow/pkg/graph"
)

// Export converts a layout to the serialization format.
//
// Use this when you need to serialize the layout for:
//   - JSON output (via graph.MarshalLayout)
//   - API responses
//   - Caching
func (l Layout) Export() graph.Layout {
	out := graph.Layout{
		VizType:  graph.VizTypeFlowchart,
		Width:    l.Width,
		Height:   l.Height,
		Padding:  l.Padding,
		Spacing:  l.Spacing,
		FontSize: l.FontSize,
		Nodes:    make([]graph.Node, len(l.Nodes)),
	}
	for i, n := range l.Nodes {
		out.Nodes[i] = graph.Node{
			ID:       graph.NodeID(i),
			Label:    n.Step.Text,
			Category: n.Step.Category.String(),
			Depth:    n.Step.Depth,
			X:        n.Left(),
			Y:        n.Top,
			Width:    n.Width(),
			Height:   n.Height(),
			Lines:    append([]string(nil), n.Lines...),
		}
	}
	for i, a := range l.Arrows {
		out.Edges = append(out.Edges, graph.Edge{
			From: graph.NodeID(i),
			To:   graph.NodeID(i + 1),
			X1:   a.X1,
			Y1:   a.Y1,
			X2:   a.X2,
			Y2:   a.Y2,
		})
	}
	return out
}

// Parse converts a serialized layout back to a drawable layout.
//
// Returns an error if the layout is not a flowchart (VizType must be
// "flowchart" or empty) or a node carries an unknown category.
func Parse(in graph.Layout) (Layout, error) {
	if in.VizType != "" && in.VizType != graph.VizTypeFlowchart {
		return Layout{}, fmt.Errorf("invalid viz_type for flowchart layout: %q", in.VizType)
	}

	l := Layout{
		Width:    in.Width,
		Height:   in.Height,
		Padding:  in.Padding,
		Spacing:  in.Spacing,
		FontSize: in.FontSize,
		Nodes:    make([]Node, len(in.Nodes)),
	}
	for i, n := range in.Nodes {
		cat, err := flow.ParseCategory(n.Category)
		if err != nil {
			return Layout{}, fmt.Errorf("node %s: %w", n.ID, err)
		}
		l.Nodes[i] = Node{
			Step: flow.Step{
				Text:     n.Label,
				Category: cat,
				Depth:    n.Depth,
				Width:    n.Width,
				Height:   n.Height,
			},
			Lines:   append([]string(nil), n.Lines...),
			CenterX: n.X + n.Width/2,
			Top:     n.Y,
		}
	}
	for _, e := range in.Edges {
		l.Arrows = append(l.Arrows, Arrow{X1: e.X1, Y1: e.Y1, X2: e.X2, Y2: e.Y2})
	}
	return l, nil
}
