// Package term renders playback frames to a plain ANSI terminal: clear
// the screen, print the grid, print the step label. It is the
// non-interactive counterpart of the TUI viewer and the only renderer
// used for static and piped output.
package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xterm "golang.org/x/term"

	"traceview/internal/playback"
)

const clearScreen = "\x1b[2J\x1b[H"

// Style selects the glyphs for the two markers.
type Style struct {
	Trail  string
	Cursor string
}

// Sink writes one full grid per frame.
type Sink struct {
	out         io.Writer
	style       Style
	cursorStyle lipgloss.Style
}

func NewSink(out io.Writer, style Style) *Sink {
	if style.Trail == "" {
		style.Trail = "."
	}
	if style.Cursor == "" {
		style.Cursor = "@"
	}
	return &Sink{
		out:         out,
		style:       style,
		cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true),
	}
}

func (s *Sink) Flush(f playback.Frame) error {
	var b strings.Builder
	b.WriteString(clearScreen)
	t := f.Trail
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			switch {
			case f.OnGrid && x == f.CursorX && y == f.CursorY:
				b.WriteString(s.cursorStyle.Render(s.style.Cursor))
			case t.Marked(x, y):
				b.WriteString(s.style.Trail)
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\nstep: %d\n", f.Step)
	_, err := io.WriteString(s.out, b.String())
	return err
}

// Size reports the terminal extent with an 80x24 fallback for pipes.
func Size() (cols, rows int) {
	cols, rows, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return 80, 24
	}
	return cols, rows
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return xterm.IsTerminal(int(os.Stdout.Fd()))
}
