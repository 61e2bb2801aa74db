// Package flow turns a paragraph of prose into an ordered list of flowchart steps.
//
// # Overview
//
// [Segment] splits text into sentences on terminal punctuation (".", "!",
// "?") followed by whitespace, capitalizes each sentence and assigns it a
// [Category]:
//
//   - [Terminal]: the opening "start/begin" sentence or the closing
//     "end/stop/finish" sentence
//   - [Decision]: sentences containing "if", "when" or "check"
//   - [IO]: sentences mentioning input, output, read, write or print
//   - [Process]: everything else
//
// Classification is driven by an ordered rule table; the first matching rule
// wins and a step's category never changes afterwards.
//
// # Depth
//
// Each [Step] also records a nesting depth that grows on decisions and
// shrinks on "else/otherwise" sentences. Depth is informational: renderers
// lay steps out strictly top to bottom regardless of its value.
//
// # Usage
//
//	steps := flow.Segment("Start the process. Check if X. End.")
//	for _, s := range steps {
//	    fmt.Println(s.Category, s.Text)
//	}
package flow
