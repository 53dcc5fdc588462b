// Package console renders user-facing event lines for the spin cycle:
// glyph-prefixed, color-coded progress output on the terminal. It is
// presentation only; the run's outcome is carried by the controller's
// Result, not by anything printed here.
package console

import (
	"fmt"
	"io"
	"sync"
)

// ANSI escape sequences.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	FgRed     = "\033[31m"
	FgGreen   = "\033[32m"
	FgYellow  = "\033[33m"
	FgBlue    = "\033[34m"
	FgMagenta = "\033[35m"
	FgCyan    = "\033[36m"

	FgBrightRed     = "\033[91m"
	FgBrightGreen   = "\033[92m"
	FgBrightYellow  = "\033[93m"
	FgBrightBlue    = "\033[94m"
	FgBrightMagenta = "\033[95m"
	FgBrightCyan    = "\033[96m"
)

// Event line glyphs.
const (
	GlyphSuccess = "✓"
	GlyphFailure = "✗"
	GlyphWarn    = "⚠"
	GlyphInfo    = "ℹ"
	GlyphStep    = "➤"
	GlyphPrize   = "💰"
)

// Console writes styled event lines to a writer. Safe for use from a
// single goroutine per the controller's execution model; the mutex only
// guards against interleaving with shutdown messages from signal handlers.
type Console struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
}

// New creates a Console writing colored output to out.
func New(out io.Writer) *Console {
	return &Console{out: out, color: true}
}

// NewPlain creates a Console that writes without ANSI styling, for tests
// and non-terminal sinks.
func NewPlain(out io.Writer) *Console {
	return &Console{out: out}
}

// Style wraps s in the given ANSI codes followed by a reset.
func Style(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	prefix := ""
	for _, c := range codes {
		prefix += c
	}
	return prefix + s + Reset
}

func (c *Console) line(glyph, color, format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if c.color {
		fmt.Fprintln(c.out, Style(glyph+" "+msg, color, Bold))
		return
	}
	fmt.Fprintln(c.out, glyph+" "+msg)
}

// Success reports a completed operation.
func (c *Console) Success(format string, args ...any) {
	c.line(GlyphSuccess, FgBrightGreen, format, args...)
}

// Failure reports a failed operation.
func (c *Console) Failure(format string, args ...any) {
	c.line(GlyphFailure, FgBrightRed, format, args...)
}

// Warn reports a recoverable condition.
func (c *Console) Warn(format string, args ...any) {
	c.line(GlyphWarn, FgBrightYellow, format, args...)
}

// Info reports context the operator may care about.
func (c *Console) Info(format string, args ...any) {
	c.line(GlyphInfo, FgBrightCyan, format, args...)
}

// Step reports the start of a process step.
func (c *Console) Step(format string, args ...any) {
	c.line(GlyphStep, FgBrightBlue, format, args...)
}

// Prize reports a winnings line.
func (c *Console) Prize(format string, args ...any) {
	c.line(GlyphPrize, FgBrightMagenta, format, args...)
}
