package ui

import (
	"fmt"
	"io"
	"os"
)

// Console prints themed status lines. All generator output that is meant
// for the user (rather than structured logs) goes through here.
type Console struct {
	theme *Theme
	out   io.Writer
	err   io.Writer
}

// NewConsole creates a Console writing to stdout and stderr.
func NewConsole(theme *Theme) *Console {
	return &Console{theme: theme, out: os.Stdout, err: os.Stderr}
}

// NewConsoleWriter creates a Console with custom writers (for testing).
func NewConsoleWriter(theme *Theme, out, errw io.Writer) *Console {
	return &Console{theme: theme, out: out, err: errw}
}

// Success prints a green checkmark line.
func (c *Console) Success(format string, args ...any) {
	c.line(c.out, c.theme.Colors.Success, "✓", format, args...)
}

// Info prints a neutral status line.
func (c *Console) Info(format string, args ...any) {
	c.line(c.out, c.theme.Colors.Secondary, "•", format, args...)
}

// Warn prints a warning line to stderr.
func (c *Console) Warn(format string, args ...any) {
	c.line(c.err, c.theme.Colors.Warning, "!", format, args...)
}

// Error prints an error line to stderr.
func (c *Console) Error(format string, args ...any) {
	c.line(c.err, c.theme.Colors.Error, "✗", format, args...)
}

// Plain prints an unstyled line.
func (c *Console) Plain(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) line(w io.Writer, color, mark, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, c.theme.style(color).Render(mark)+" "+msg)
}
