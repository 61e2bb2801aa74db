package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// withSpinner runs fn while animating msg on w, then erases the line. The
// context passed to fn is ctx; the animation never outlives fn.
func withSpinner[T any](ctx context.Context, w io.Writer, msg string, fn func(context.Context) (T, error)) (T, error) {
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		tick := time.NewTicker(spinnerInterval)
		defer tick.Stop()
		for frame := 0; ; frame++ {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-tick.C:
				fmt.Fprintf(w, "\r%s %s", styleIconSpinner.Render(spinnerFrames[frame%len(spinnerFrames)]), StyleDim.Render(msg))
			}
		}
	}()

	v, err := fn(ctx)
	close(done)
	<-stopped
	fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", len([]rune(msg))+2))
	return v, err
}
