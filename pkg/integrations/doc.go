// Package integrations provides shared plumbing for clients of external APIs.
//
// # Overview
//
// Each upstream service has its own subpackage:
//
//   - [llm]: OpenAI-compatible chat completions that write process descriptions
//
// # Client Pattern
//
// Subpackage clients embed [Client], which caches response bodies in a
// [cache.Cache] under [cache.Keyer.HTTPKey] and retries transient failures:
//
//	c := integrations.NewClient(backend, nil, "llm:gpt-4o-mini", cache.TTLHTTP)
//	body, err := c.Cached(ctx, cache.Hash([]byte(topic)), false, func() ([]byte, error) {
//	    return callUpstream(ctx, topic)
//	})
//
// fetch signals a transient failure by returning an
// [httputil.RetryableError]; [CheckStatus] does this for 5xx responses and
// rate limits.
//
// [llm]: github.com/matzehuels/paraflow/pkg/integrations/llm
package integrations
