package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerFiltersByLevel(t *testing.T) {
	tests := []struct {
		level     log.Level
		wantDebug bool
		wantInfo  bool
	}{
		{log.DebugLevel, true, true},
		{log.InfoLevel, false, true},
		{log.WarnLevel, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, tt.level)
			l.Debug("segmenting")
			l.Info("rendered")

			assert.Equal(t, tt.wantDebug, strings.Contains(buf.String(), "segmenting"))
			assert.Equal(t, tt.wantInfo, strings.Contains(buf.String(), "rendered"))
		})
	}
}

func TestSetLevelTogglesTimestamps(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	l.Info("quiet")
	assert.True(t, strings.HasPrefix(buf.String(), "INFO"), "info output should start with the level: %q", buf.String())

	buf.Reset()
	setLevel(l, log.DebugLevel)
	l.Debug("loud")
	assert.False(t, strings.HasPrefix(buf.String(), "DEBU"), "debug output should start with a timestamp: %q", buf.String())
	assert.Contains(t, buf.String(), "loud")
}

func TestTimerFinish(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)

	startTimer(l).finish("Rendered", "steps", 6)

	out := buf.String()
	assert.Contains(t, out, "Rendered")
	assert.Contains(t, out, "steps=6")
	assert.Contains(t, out, "took=")
}
