// Package pkg provides the libraries behind paraflow, which turns a
// paragraph of prose into a vertically stacked flowchart.
//
// # Overview
//
// Each sentence of the input becomes one node. Nodes are classified as
// terminal, process, decision or input/output, sized to fit their wrapped
// label, stacked top to bottom and joined by arrows. The pkg directory is
// organized into these areas:
//
//  1. [flow] - Sentence segmentation and classification
//  2. [render] - Layout and drawing (flowchart and Graphviz node-link)
//  3. [pipeline] - Orchestration (segment → layout → render) with caching
//  4. [graph] - Serializable layouts shared by every renderer
//  5. [cache] - Cache backends (file, memory, Redis, MongoDB)
//  6. [integrations] - Cached, retried clients for external services (LLMs)
//
// # Architecture
//
// The typical data flow:
//
//	paragraph (text, markdown, stdin, HTTP, LLM)
//	         ↓
//	    [flow] package (sentences → steps)
//	         ↓
//	    [render/flowchart/layout] package (measure, size and stack nodes)
//	         ↓
//	    [render/flowchart/sink] package (PNG, SVG, PDF, JSON)
//
// # Quick Start
//
//	steps := flow.Segment("Start. Read the file. Check if it is empty. End.")
//
//	metric, _ := fonts.NewMetric(fonts.DefaultSize)
//	l := layout.Build(steps, metric)
//
//	png, _ := sink.RenderPNG(l)
//
// Or run everything, with caching, through a [pipeline.Runner]:
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, nil)
//	res, _ := runner.Execute(ctx, pipeline.Options{Text: text, Formats: []string{"png", "svg"}})
//
// # Main Packages
//
// [flow] - Splits text on terminal punctuation and assigns each sentence a
// category with an ordered rule table. Depth is tracked but does not affect
// placement.
//
// [fonts] - Embedded Go fonts and a text metric for measuring labels.
//
// [render/flowchart] - The flowchart renderer: [render/flowchart/layout]
// computes node boxes, [render/flowchart/styles] draws the four shapes and
// arrows onto any surface and [render/flowchart/sink] produces output files.
//
// [render/nodelink] - The same steps as a Graphviz digraph (DOT, SVG, PNG, PDF).
//
// [render] - Data URLs and SVG to PDF conversion.
//
// [errors] - Error codes shared by the CLI and the HTTP API, plus input
// validation.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [io] - Reading paragraphs from files, markdown and stdin.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
//
// [flow]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/flow
// [fonts]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/fonts
// [render]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/render
// [render/flowchart]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/render/flowchart
// [render/flowchart/layout]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/render/flowchart/layout
// [render/flowchart/styles]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/render/flowchart/styles
// [render/flowchart/sink]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/render/flowchart/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/pipeline#Runner
// [graph]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/graph
// [cache]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/cache
// [integrations]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/integrations
// [errors]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/observability
// [io]: https://pkg.go.dev/github.com/matzehuels/paraflow/pkg/io
package pkg
