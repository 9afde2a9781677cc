// Package surface maps world coordinates onto a bounded cell grid and
// tracks the cells a playback run has visited.
package surface

// Geometry is the discrete extent of the output surface, fixed for one
// playback run.
type Geometry struct {
	Width  int
	Height int
}

// Fit derives a surface from the terminal extent and the configured
// caps. Two rows are reserved below the grid for the step label.
func Fit(termCols, termRows, maxWidth, maxHeight int) Geometry {
	w := min(maxWidth, termCols)
	h := min(maxHeight, max(4, termRows-2))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Geometry{Width: w, Height: h}
}
