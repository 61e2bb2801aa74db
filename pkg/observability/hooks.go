// Package observability lets binaries listen to pipeline, cache and
// outgoing HTTP events without the libraries depending on a logging or
// metrics backend.
//
// Libraries emit through the accessors, which are safe for concurrent use
// and never return nil:
//
//	observability.Pipeline().OnSegmentComplete(ctx, len(steps), time.Since(start))
//	observability.Cache().OnCacheHit(ctx, "layout")
//
// A binary installs its listeners once at startup:
//
//	observability.Register(observability.Hooks{Cache: myMetrics})
//
// [LogHooks] implements all three interfaces on a charmbracelet logger; the
// CLI registers it with --verbose.
package observability

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// PipelineHooks receives segment, layout and render stage events.
type PipelineHooks interface {
	OnSegmentStart(ctx context.Context, textLen int)
	OnSegmentComplete(ctx context.Context, stepCount int, duration time.Duration)
	OnLayoutStart(ctx context.Context, vizType string, stepCount int)
	OnLayoutComplete(ctx context.Context, vizType string, duration time.Duration, err error)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives cache lookups and writes. kind is the key kind
// ("layout", "artifact" or "http").
type CacheHooks interface {
	OnCacheHit(ctx context.Context, kind string)
	OnCacheMiss(ctx context.Context, kind string)
	OnCacheSet(ctx context.Context, kind string, size int)
}

// HTTPHooks receives outgoing HTTP calls. OnError is for failures without a
// response, such as timeouts.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, host, path string)
	OnResponse(ctx context.Context, method, host, path string, status int, duration time.Duration)
	OnError(ctx context.Context, method, host, path string, err error)
}

// Hooks bundles one listener per event category.
type Hooks struct {
	Pipeline PipelineHooks
	Cache    CacheHooks
	HTTP     HTTPHooks
}

// NoopPipelineHooks ignores every event. Embed it to implement a subset.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnSegmentStart(context.Context, int)                              {}
func (NoopPipelineHooks) OnSegmentComplete(context.Context, int, time.Duration)            {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int)                       {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, time.Duration, error)   {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

var noop = Hooks{
	Pipeline: NoopPipelineHooks{},
	Cache:    NoopCacheHooks{},
	HTTP:     NoopHTTPHooks{},
}

var (
	registered atomic.Pointer[Hooks]
	registerMu sync.Mutex
)

func current() *Hooks {
	if h := registered.Load(); h != nil {
		return h
	}
	return &noop
}

// Register installs the non-nil fields of h. Categories left nil keep their
// current listener.
func Register(h Hooks) {
	registerMu.Lock()
	defer registerMu.Unlock()

	next := *current()
	if h.Pipeline != nil {
		next.Pipeline = h.Pipeline
	}
	if h.Cache != nil {
		next.Cache = h.Cache
	}
	if h.HTTP != nil {
		next.HTTP = h.HTTP
	}
	registered.Store(&next)
}

// Reset restores the no-op listeners.
func Reset() {
	registerMu.Lock()
	defer registerMu.Unlock()
	registered.Store(nil)
}

// Pipeline returns the registered pipeline listener.
func Pipeline() PipelineHooks { return current().Pipeline }

// Cache returns the registered cache listener.
func Cache() CacheHooks { return current().Cache }

// HTTP returns the registered HTTP listener.
func HTTP() HTTPHooks { return current().HTTP }
