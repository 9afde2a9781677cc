package term

import (
	"bytes"
	"strings"
	"testing"

	"traceview/internal/playback"
	"traceview/internal/surface"
)

func TestSinkFlush(t *testing.T) {
	trail := surface.NewTrail(surface.Geometry{Width: 3, Height: 2})
	trail.Mark(0, 0)
	f := playback.Frame{
		Trail:   trail,
		CursorX: 2,
		CursorY: 1,
		OnGrid:  true,
		Step:    9,
	}

	var buf bytes.Buffer
	sink := NewSink(&buf, Style{})
	if err := sink.Flush(f); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, clearScreen) {
		t.Error("frame does not start with a screen clear")
	}
	if !strings.Contains(out, "step: 9") {
		t.Errorf("missing step label in %q", out)
	}
	if !strings.Contains(out, ".") {
		t.Error("trail marker missing")
	}
	if !strings.Contains(out, "@") {
		t.Error("cursor marker missing")
	}

	// grid rows plus blank line plus label
	body := strings.TrimPrefix(out, clearScreen)
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("got %d lines, want 4 (2 rows, spacer, label)", len(lines))
	}
}

func TestSinkOffGridCursorNotDrawn(t *testing.T) {
	trail := surface.NewTrail(surface.Geometry{Width: 2, Height: 2})
	f := playback.Frame{Trail: trail, CursorX: 5, CursorY: 5, OnGrid: false, Step: 0}

	var buf bytes.Buffer
	if err := NewSink(&buf, Style{}).Flush(f); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "@") {
		t.Error("off-grid cursor was drawn")
	}
}
