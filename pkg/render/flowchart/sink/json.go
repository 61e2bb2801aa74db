package sink

import (
	"github.com/matzehuels/paraflow/pkg/graph"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/layout"
)

// RenderJSON serializes the layout in the graph.Layout wire format.
func RenderJSON(l layout.Layout) ([]byte, error) {
	return graph.MarshalLayout(l.Export())
}
