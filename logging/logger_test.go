package logging_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlath-ift/logging"
)

func TestLogGrowth_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewTextLogger(&buf, slog.LevelWarn)

	l.LogGrowth(context.Background(), 256, 10300, 0, 300, false)
	assert.Empty(t, buf.String(), "ordinary growth must stay below Warn")

	l.LogGrowth(context.Background(), 256, 1010300, 0, 1000300, true)
	assert.Contains(t, buf.String(), "bucket queue is becoming huge")
	assert.Contains(t, buf.String(), "maximum=1000300")
}

func TestLogRunFailed(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewTextLogger(&buf, slog.LevelDebug).With("component", "test")

	l.LogRunStart(context.Background(), 10, 2, true)
	l.LogRunFailed(context.Background(), 7, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "forest run started")
	assert.Contains(t, out, "node=7")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "component=test")
}

func TestNoopLogger_Discards(t *testing.T) {
	l := logging.NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogRunComplete(context.Background(), 3, false)
}
