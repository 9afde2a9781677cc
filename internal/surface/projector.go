package surface

import "traceview/internal/trace"

// Projector maps scaled world coordinates onto the surface using a
// fixed Bounds. Coordinates exactly at the bounds land on the first and
// last cell by construction; the projector never clamps. Entry-validity
// policy belongs to the caller.
type Projector struct {
	Bounds trace.Bounds
	Geom   Geometry
}

func (p Projector) normalize(x, y float64) (float64, float64) {
	nx := (x - p.Bounds.MinX) / (p.Bounds.MaxX - p.Bounds.MinX)
	ny := (y - p.Bounds.MinY) / (p.Bounds.MaxY - p.Bounds.MinY)
	return nx, ny
}

// Point maps onto continuous surface coordinates in
// [0, width-1] x [0, height-1]. The vertical axis is inverted so that
// increasing world y moves toward the top of the raster.
func (p Projector) Point(x, y float64) (float64, float64) {
	nx, ny := p.normalize(x, y)
	return nx * float64(p.Geom.Width-1), (1.0 - ny) * float64(p.Geom.Height-1)
}

// Cell truncates Point to the containing grid cell.
func (p Projector) Cell(x, y float64) (int, int) {
	px, py := p.Point(x, y)
	return int(px), int(py)
}

// Micro maps onto the 2x4-per-cell braille micro-grid.
func (p Projector) Micro(x, y float64) (int, int) {
	nx, ny := p.normalize(x, y)
	mw := p.Geom.Width * 2
	mh := p.Geom.Height * 4
	return int(nx * float64(mw-1)), int((1.0 - ny) * float64(mh-1))
}
