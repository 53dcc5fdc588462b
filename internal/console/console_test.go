package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_PlainLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewPlain(&buf)

	c.Success("spin %d done", 3)
	c.Failure("session lost")
	c.Warn("skipping spin")
	c.Info("loss recorded")
	c.Step("waiting")
	c.Prize("0.00001 WBTC")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"✓ spin 3 done",
		"✗ session lost",
		"⚠ skipping spin",
		"ℹ loss recorded",
		"➤ waiting",
		"💰 0.00001 WBTC",
	}, lines)
}

func TestConsole_ColorWrapsLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := New(&buf)
	c.Success("done")

	out := buf.String()
	assert.Contains(t, out, FgBrightGreen)
	assert.Contains(t, out, Bold)
	assert.Contains(t, out, "✓ done")
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), Reset))
}

func TestStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", Style("plain"))
	assert.Equal(t, FgRed+Bold+"x"+Reset, Style("x", FgRed, Bold))
}
