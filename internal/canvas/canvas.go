// Package canvas renders a finished playback onto a raster image: the
// sampled path is drawn as a stroked polyline with a marker at the
// final position, then written out as a PNG.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"traceview/internal/playback"
	"traceview/internal/surface"
	"traceview/internal/trace"
)

var (
	background  = color.White
	pathColor   = color.RGBA{R: 0x44, G: 0x4B, B: 0x55, A: 0xFF}
	cursorColor = color.RGBA{R: 0x7C, G: 0x3A, B: 0xED, A: 0xFF}
)

// Sink accumulates sampled positions during playback and rasterizes
// them on Close. Flush itself draws nothing, so the sink works with a
// zero inter-frame delay.
type Sink struct {
	path   string
	width  int
	height int
	proj   surface.Projector
	pts    [][2]float64
}

// NewSink creates a PNG canvas sink writing to path. Bounds must be the
// bounds the playback run was built with so both map world coordinates
// identically.
func NewSink(path string, bounds trace.Bounds, widthPx, heightPx int) *Sink {
	return &Sink{
		path:   path,
		width:  widthPx,
		height: heightPx,
		proj: surface.Projector{
			Bounds: bounds,
			Geom:   surface.Geometry{Width: widthPx, Height: heightPx},
		},
	}
}

// Flush records the frame's position using the floating projection.
func (s *Sink) Flush(f playback.Frame) error {
	px, py := s.proj.Point(f.X, f.Y)
	s.pts = append(s.pts, [2]float64{px, py})
	return nil
}

// Close rasterizes the accumulated polyline plus the final-position
// marker and writes the PNG.
func (s *Sink) Close() error {
	dst := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	if len(s.pts) > 1 {
		r := vector.NewRasterizer(s.width, s.height)
		for i := 0; i+1 < len(s.pts); i++ {
			strokeSegment(r, s.pts[i], s.pts[i+1], 1.6)
		}
		r.Draw(dst, dst.Bounds(), image.NewUniform(pathColor), image.Point{})
	}
	if len(s.pts) > 0 {
		r := vector.NewRasterizer(s.width, s.height)
		fillDiamond(r, s.pts[len(s.pts)-1], 4)
		r.Draw(dst, dst.Bounds(), image.NewUniform(cursorColor), image.Point{})
	}

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// strokeSegment adds a filled quad covering the segment with the given
// thickness. The rasterizer only fills, so stroking is done by hand.
func strokeSegment(r *vector.Rasterizer, a, b [2]float64, t float64) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := math.Hypot(dx, dy)
	if l == 0 {
		fillDiamond(r, a, t/2)
		return
	}
	nx := -dy / l * t / 2
	ny := dx / l * t / 2
	r.MoveTo(float32(a[0]+nx), float32(a[1]+ny))
	r.LineTo(float32(b[0]+nx), float32(b[1]+ny))
	r.LineTo(float32(b[0]-nx), float32(b[1]-ny))
	r.LineTo(float32(a[0]-nx), float32(a[1]-ny))
	r.ClosePath()
}

func fillDiamond(r *vector.Rasterizer, c [2]float64, radius float64) {
	r.MoveTo(float32(c[0]), float32(c[1]-radius))
	r.LineTo(float32(c[0]+radius), float32(c[1]))
	r.LineTo(float32(c[0]), float32(c[1]+radius))
	r.LineTo(float32(c[0]-radius), float32(c[1]))
	r.ClosePath()
}
