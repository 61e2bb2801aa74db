package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/paraflow/pkg/flow"
	"github.com/matzehuels/paraflow/pkg/observability"
)

// Segment splits text into classified steps and reports the stage to the
// registered pipeline hooks. Segmentation never fails; empty text yields nil.
func Segment(ctx context.Context, text string) []flow.Step {
	hooks := observability.Pipeline()
	hooks.OnSegmentStart(ctx, len(text))
	start := time.Now()
	steps := flow.Segment(text)
	hooks.OnSegmentComplete(ctx, len(steps), time.Since(start))
	return steps
}
