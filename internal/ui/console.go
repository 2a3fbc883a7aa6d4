// Package ui renders the tagged status lines the bootstrap prints while
// it works. Lines are colored only when the destination is a terminal,
// so captured output stays grep-friendly.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Console writes leveled status lines to a single writer.
type Console struct {
	w       io.Writer
	colored bool
}

// NewConsole returns a Console writing to w. Color is decided once, at
// construction, from whether w is a terminal.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, colored: isTerminal(w)}
}

// Info reports routine progress.
func (c *Console) Info(format string, args ...any) {
	c.emit(infoTag, infoStyle, format, args...)
}

// Success reports a completed operation.
func (c *Console) Success(format string, args ...any) {
	c.emit(successTag, successStyle, format, args...)
}

// Warning reports a condition the operator should look at; the run
// continues.
func (c *Console) Warning(format string, args ...any) {
	c.emit(warningTag, warningStyle, format, args...)
}

// Error reports a failed operation.
func (c *Console) Error(format string, args ...any) {
	c.emit(errorTag, errorStyle, format, args...)
}

// Header prints a bold section heading with a rule beneath it.
func (c *Console) Header(text string) {
	width := len(text)
	if c.colored {
		text = headerStyle.Render(text)
	}
	fmt.Fprintf(c.w, "\n%s\n", text)
	fmt.Fprintln(c.w, rule(width))
}

// Plain prints an untagged line, used for indented detail output.
func (c *Console) Plain(format string, args ...any) {
	fmt.Fprintf(c.w, format+"\n", args...)
}

func (c *Console) emit(tag string, style lipgloss.Style, format string, args ...any) {
	if c.colored {
		tag = style.Render(tag)
	}
	fmt.Fprintf(c.w, "%s %s\n", tag, fmt.Sprintf(format, args...))
}

func rule(width int) string {
	const line = "============================================================"
	if width <= 0 || width > len(line) {
		return line
	}
	return line[:width]
}

// isTerminal reports whether w is an interactive terminal. Everything
// that is not an *os.File (pipes, buffers in tests) is not.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
