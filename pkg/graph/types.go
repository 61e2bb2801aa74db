package graph

import "fmt"

// Visualization types.
const (
	VizTypeFlowchart = "flowchart"
	VizTypeNodelink  = "nodelink"
)

// VizTypes lists every supported visualization type.
var VizTypes = []string{VizTypeFlowchart, VizTypeNodelink}

// NodeID returns the stable identifier of the step at index i.
func NodeID(i int) string { return fmt.Sprintf("step-%d", i) }

// Node is a positioned flowchart step.
type Node struct {
	ID       string   `json:"id" bson:"id"`
	Label    string   `json:"label" bson:"label"`
	Category string   `json:"category" bson:"category"`
	Depth    int      `json:"depth,omitempty" bson:"depth,omitempty"`
	X        float64  `json:"x" bson:"x"`
	Y        float64  `json:"y" bson:"y"`
	Width    float64  `json:"width" bson:"width"`
	Height   float64  `json:"height" bson:"height"`
	Lines    []string `json:"lines,omitempty" bson:"lines,omitempty"`
}

// Edge connects consecutive steps. The points are omitted for nodelink
// layouts, where Graphviz owns the geometry.
type Edge struct {
	From string  `json:"from" bson:"from"`
	To   string  `json:"to" bson:"to"`
	X1   float64 `json:"x1,omitempty" bson:"x1,omitempty"`
	Y1   float64 `json:"y1,omitempty" bson:"y1,omitempty"`
	X2   float64 `json:"x2,omitempty" bson:"x2,omitempty"`
	Y2   float64 `json:"y2,omitempty" bson:"y2,omitempty"`
}
