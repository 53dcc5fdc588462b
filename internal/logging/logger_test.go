package logging

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New()
	l.SetLevel(level)
	l.SetOutput(log.New(&buf, "", 0))
	return l, &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger(LevelWarn)

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	out := buf.String()
	assert.NotContains(t, out, "DEBUG: d")
	assert.NotContains(t, out, "INFO: i")
	assert.Contains(t, out, "WARN: w")
	assert.Contains(t, out, "ERROR: e")
}

func TestLogger_KeyValues(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger(LevelDebug)

	l.Info("spin done", "iteration", 3, "result", "win")
	assert.Contains(t, buf.String(), "INFO: spin done iteration=3 result=win")
}

func TestLogger_With(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger(LevelDebug)
	child := l.With("component", "spin")

	child.Warn("skipped", "iteration", 2)
	assert.Contains(t, buf.String(), "WARN: skipped component=spin iteration=2")

	// Parent is unchanged.
	buf.Reset()
	l.Warn("plain")
	assert.Contains(t, buf.String(), "WARN: plain")
	assert.NotContains(t, buf.String(), "component=spin")
}

func TestLogger_ValueFormatting(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger(LevelDebug)

	l.Info("msg",
		"plain", "bare",
		"spaced", "two words",
		"err", errors.New("element not found"),
	)

	out := buf.String()
	assert.Contains(t, out, "plain=bare")
	assert.Contains(t, out, `spaced="two words"`)
	assert.Contains(t, out, `err="element not found"`)
}

func TestLevel_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}
