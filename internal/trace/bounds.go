package trace

// Bounds is the axis-aligned extent of a scaled trace. It is computed
// once before playback and never recomputed mid-run, so the framing of
// the whole animation is fixed up front.
type Bounds struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// ComputeBounds scans the full trace once and takes per-axis min/max of
// the scaled first two coordinate components. A collapsed axis (all
// points equal on it, including a single-state trace) is widened by
// exactly 1.0 so projection never divides by zero.
func ComputeBounds(tr Trace, scale float64) Bounds {
	var b Bounds
	for i, s := range tr {
		x := s.Coords[0] * scale
		y := s.Coords[1] * scale
		if i == 0 {
			b = Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y}
			continue
		}
		if x < b.MinX {
			b.MinX = x
		}
		if x > b.MaxX {
			b.MaxX = x
		}
		if y < b.MinY {
			b.MinY = y
		}
		if y > b.MaxY {
			b.MaxY = y
		}
	}
	if b.MaxX == b.MinX {
		b.MaxX = b.MinX + 1.0
	}
	if b.MaxY == b.MinY {
		b.MaxY = b.MinY + 1.0
	}
	return b
}
