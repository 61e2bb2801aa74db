package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Layout is the serialized result of laying out a paragraph, shared by every
// renderer and stored in the layout cache.
//
// A flowchart layout carries geometry: the canvas size, the spacing it was
// built with and a box per node plus an arrow per edge. A nodelink layout
// leaves geometry to Graphviz and carries the DOT source instead.
type Layout struct {
	VizType string `json:"viz_type" bson:"viz_type"`

	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges,omitempty" bson:"edges,omitempty"`

	Padding  float64 `json:"padding,omitempty" bson:"padding,omitempty"`
	Spacing  float64 `json:"spacing,omitempty" bson:"spacing,omitempty"`
	FontSize float64 `json:"font_size,omitempty" bson:"font_size,omitempty"`

	DOT    string `json:"dot,omitempty" bson:"dot,omitempty"`
	Engine string `json:"engine,omitempty" bson:"engine,omitempty"`
}

// IsFlowchart reports whether l is a flowchart layout.
func (l *Layout) IsFlowchart() bool { return l.VizType == VizTypeFlowchart }

// IsNodelink reports whether l is a Graphviz layout.
func (l *Layout) IsNodelink() bool { return l.VizType == VizTypeNodelink }

// Validate reports every structural problem with l, joined into one error.
// Each step after the first has exactly one incoming edge from its
// predecessor, so n nodes need n-1 edges.
func (l *Layout) Validate() error {
	var errs []error
	if !slices.Contains(VizTypes, l.VizType) {
		errs = append(errs, fmt.Errorf("unknown viz type %q", l.VizType))
	}
	if l.IsNodelink() && l.DOT == "" && len(l.Nodes) > 0 {
		errs = append(errs, errors.New("nodelink layout has no DOT source"))
	}
	if l.IsFlowchart() && len(l.Nodes) > 0 && (l.Width <= 0 || l.Height <= 0) {
		errs = append(errs, fmt.Errorf("flowchart size %vx%v is not positive", l.Width, l.Height))
	}
	if want := max(len(l.Nodes)-1, 0); len(l.Edges) != want {
		errs = append(errs, fmt.Errorf("%d nodes need %d edges, got %d", len(l.Nodes), want, len(l.Edges)))
	}
	ids := make(map[string]bool, len(l.Nodes))
	for _, n := range l.Nodes {
		if ids[n.ID] {
			errs = append(errs, fmt.Errorf("duplicate node id %q", n.ID))
		}
		ids[n.ID] = true
	}
	for _, e := range l.Edges {
		if !ids[e.From] || !ids[e.To] {
			errs = append(errs, fmt.Errorf("edge %s -> %s references an unknown node", e.From, e.To))
		}
	}
	return errors.Join(errs...)
}

// MarshalLayout encodes l as indented JSON. A nil node list is written as [].
func MarshalLayout(l Layout) ([]byte, error) {
	if l.Nodes == nil {
		l.Nodes = []Node{}
	}
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout decodes and validates a layout. A missing viz type means
// flowchart.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	if l.VizType == "" {
		l.VizType = VizTypeFlowchart
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("invalid layout: %w", err)
	}
	return l, nil
}
