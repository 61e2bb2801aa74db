// Package graph provides the serialization types for flowchart layouts.
//
// This package defines the canonical wire format for paraflow's layout data,
// used for JSON files, API responses, caching, and cross-tool interoperability.
//
// # Architecture
//
// The package sits at the serialization boundary between internal
// representations and external formats:
//
//   - [Layout], [Node], [Edge]: serialization types (this package)
//   - pkg/flow.Step: classified steps
//   - pkg/render/flowchart/layout.Layout: internal geometry
//
// Use the layout package's Export and Parse functions to convert between them.
//
// # Constants
//
// This package is the single source of truth for visualization constants:
//
//	graph.VizTypeFlowchart  // "flowchart"
//	graph.VizTypeNodelink   // "nodelink"
//
// # Layout Serialization
//
// Layouts are discriminated by VizType:
//
//	layout, _ := graph.UnmarshalLayout(data)
//	if layout.IsNodelink() {
//	    // Use layout.DOT for Graphviz rendering
//	} else {
//	    // Use layout.Nodes and layout.Edges
//	}
//
// A flowchart node serializes its box (x and y are the top-left corner), its
// category and branch depth, and its wrapped label lines:
//
//	{
//	  "id": "step-0",
//	  "label": "Start the process.",
//	  "category": "terminal",
//	  "x": 180, "y": 40, "width": 180, "height": 60,
//	  "lines": ["Start the process."]
//	}
//
// Both json and bson tags are carried so the same values can be stored in
// MongoDB-backed caches without a second set of types.
package graph
