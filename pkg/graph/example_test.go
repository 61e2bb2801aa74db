package graph_test

import (
	"fmt"

	"github.com/matzehuels/paraflow/pkg/graph"
)

func ExampleUnmarshalLayout() {
	data := `{
		"viz_type": "flowchart",
		"width": 380,
		"height": 280,
		"nodes": [
			{"id": "step-0", "label": "Start.", "category": "terminal", "x": 130, "y": 40, "width": 120, "height": 60},
			{"id": "step-1", "label": "End.", "category": "terminal", "x": 130, "y": 160, "width": 120, "height": 60}
		],
		"edges": [{"from": "step-0", "to": "step-1", "x1": 190, "y1": 100, "x2": 190, "y2": 160}]
	}`

	l, err := graph.UnmarshalLayout([]byte(data))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, n := range l.Nodes {
		fmt.Printf("%s %-8s %s\n", n.ID, n.Category, n.Label)
	}
	// Output:
	// step-0 terminal Start.
	// step-1 terminal End.
}
