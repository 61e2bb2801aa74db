package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Timestamps are only reported at debug
// level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: level <= log.DebugLevel,
		TimeFormat:      "15:04:05.000",
	})
}

// setLevel changes the level of l and toggles timestamps to match newLogger.
func setLevel(l *log.Logger, level log.Level) {
	l.SetLevel(level)
	l.SetReportTimestamp(level <= log.DebugLevel)
}

// timer measures one CLI stage and logs its duration when finished.
type timer struct {
	logger *log.Logger
	start  time.Time
}

func startTimer(l *log.Logger) timer {
	return timer{logger: l, start: time.Now()}
}

// finish logs msg at info level with the elapsed time and any extra
// key-value pairs.
func (t timer) finish(msg string, keyvals ...any) {
	elapsed := time.Since(t.start).Round(time.Millisecond)
	t.logger.Info(msg, append(keyvals, "took", elapsed)...)
}
