package tui

import (
	"strings"
	"testing"

	"traceview/internal/config"
	"traceview/internal/playback"
	"traceview/internal/surface"
	"traceview/internal/trace"
)

func playedModel(t *testing.T) Model {
	t.Helper()
	states := trace.Trace{
		{Coords: []float64{0, 0}},
		{Coords: []float64{10, 0}},
		{Coords: []float64{10, 10}},
	}
	b := trace.ComputeBounds(states, 1.0)
	m := New("trace.json", states, b, config.Default(), playback.Options{Scale: 1, Skip: 1})
	m.width, m.height = 40, 13
	m.rebuild()
	for {
		f, ok := m.driver.Next()
		if !ok {
			break
		}
		m.frame = f
		m.hasFrame = true
		m.path = append(m.path, [2]float64{f.X, f.Y})
	}
	return m
}

func TestRenderGridTrailAndCursor(t *testing.T) {
	m := playedModel(t)
	lines := strings.Split(m.renderGrid(), "\n")
	if len(lines) != m.geom.Height {
		t.Fatalf("got %d grid lines, want %d", len(lines), m.geom.Height)
	}

	proj := surface.Projector{Bounds: m.bounds, Geom: m.geom}

	// first state leaves a trail dot on the bottom row
	gx, gy := proj.Cell(0, 0)
	if []rune(lines[gy])[gx] != '.' {
		t.Errorf("no trail marker at (%d, %d)", gx, gy)
	}

	// last state is the cursor, on a different row
	_, cy := proj.Cell(10, 10)
	if !strings.Contains(lines[cy], "@") {
		t.Errorf("no cursor marker on row %d", cy)
	}
}

func TestRenderGridPathOverlay(t *testing.T) {
	m := playedModel(t)
	m.showPath = true
	out := m.renderGrid()
	found := false
	for _, r := range out {
		if r >= 0x2800 && r <= 0x28FF {
			found = true
			break
		}
	}
	if !found {
		t.Error("path overlay drew no braille cells")
	}
}

func TestRebuildResetsRun(t *testing.T) {
	m := playedModel(t)
	gen := m.gen
	m.rebuild()
	if m.gen == gen {
		t.Error("rebuild did not invalidate the tick chain")
	}
	if m.hasFrame || m.done || m.paused {
		t.Error("rebuild left stale run state")
	}
	// fresh trail: nothing marked yet
	tr := m.driver.Trail()
	for y := 0; y < tr.Height(); y++ {
		for x := 0; x < tr.Width(); x++ {
			if tr.Marked(x, y) {
				t.Fatal("rebuild reused a dirty trail")
			}
		}
	}
}
