package surface

// Trail is the persistent visited mask for one playback run. Cells only
// ever flip false to true; restarting playback means building a fresh
// Trail.
type Trail struct {
	w, h  int
	cells []bool
}

func NewTrail(g Geometry) *Trail {
	return &Trail{w: g.Width, h: g.Height, cells: make([]bool, g.Width*g.Height)}
}

// Mark records a visit. Marking an already visited cell is a no-op.
// The caller must bounds-check (x, y) first; Trail is a pure grid with
// no error path.
func (t *Trail) Mark(x, y int) {
	t.cells[y*t.w+x] = true
}

// Marked reports whether any sampled state has landed on (x, y).
func (t *Trail) Marked(x, y int) bool {
	return t.cells[y*t.w+x]
}

func (t *Trail) Width() int  { return t.w }
func (t *Trail) Height() int { return t.h }
