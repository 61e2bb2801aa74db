// Package llm turns a topic into a process paragraph using an
// OpenAI-compatible chat completion API.
//
// The paragraph is written so that it segments into a useful flowchart: it
// begins with a "Start" sentence, ends with an "End" sentence, and phrases
// branches as "If ..." or "Check ..." sentences.
//
//	o, err := llm.NewOpenAI(llm.Config{APIKey: key})
//	c := llm.NewClient(o, backend, nil)
//	text, err := c.Describe(ctx, "brewing coffee", false)
//
// Responses are cached per model and topic. Rate limits surface as
// [errors.RateLimitedError].
//
// [errors.RateLimitedError]: github.com/matzehuels/paraflow/pkg/errors.RateLimitedError
package llm
