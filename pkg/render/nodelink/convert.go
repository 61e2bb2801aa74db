package nodelink

import (
	"fmt"

	"github.com/matzehuels/paraflow/pkg/flow"
	"github.com/matzehuels/paraflow/pkg/graph"
)

// Export creates a serializable nodelink layout from a DOT string.
//
// Unlike flowchart layouts, nodelink layouts don't compute positions
// internally; Graphviz does that during rendering. Nodes carry labels and
// categories only. Width and height are taken from the rendered SVG when the
// caller has one, and are zero otherwise.
func Export(dot string, steps []flow.Step, width, height float64) graph.Layout {
	out := graph.Layout{
		VizType: graph.VizTypeNodelink,
		DOT:     dot,
		Engine:  "dot",
		Width:   width,
		Height:  height,
		Nodes:   make([]graph.Node, len(steps)),
	}
	for i, s := range steps {
		out.Nodes[i] = graph.Node{
			ID:       graph.NodeID(i),
			Label:    s.Text,
			Category: s.Category.String(),
			Depth:    s.Depth,
		}
		if i > 0 {
			out.Edges = append(out.Edges, graph.Edge{From: graph.NodeID(i - 1), To: graph.NodeID(i)})
		}
	}
	return out
}

// Parse extracts the DOT string from a serialized nodelink layout.
//
// Returns an error if the layout is not a nodelink type or is missing the DOT string.
func Parse(l graph.Layout) (string, error) {
	if l.VizType != "" && l.VizType != graph.VizTypeNodelink {
		return "", fmt.Errorf("invalid viz_type for nodelink layout: %q", l.VizType)
	}
	if l.DOT == "" {
		return "", fmt.Errorf("nodelink layout missing DOT string")
	}
	return l.DOT, nil
}
