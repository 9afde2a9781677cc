// Package playback drives one run of a loaded trace against a render
// sink: it walks the states in order, applies the sampling stride,
// projects each sampled state onto the surface and accumulates the
// trail.
package playback

import (
	"context"
	"time"

	"traceview/internal/surface"
	"traceview/internal/trace"
)

// Options configure one playback run.
type Options struct {
	Scale      float64       // multiplies every raw coordinate
	Delay      time.Duration // pause between animated frames
	Skip       int           // sampling stride; 1 plays every state
	StaticOnly bool          // render only the final state
}

// Frame is one render step handed to a Sink.
type Frame struct {
	Trail   *surface.Trail
	X, Y    float64 // scaled world coordinates of the sampled state
	CursorX int
	CursorY int
	OnGrid  bool // cursor lies within the surface
	Step    int  // step label
	Index   int  // ordinal index within the full trace
}

// Sink consumes frames and performs one opaque display refresh per
// Flush. Nothing it returns feeds back into the run except the error,
// which aborts playback.
type Sink interface {
	Flush(Frame) error
}

// Driver iterates the trace in temporal order. Skipped states
// contribute nothing, not even a trail mark. A Driver is good for
// exactly one run; restarting playback means constructing a new one so
// the trail starts fresh.
type Driver struct {
	states trace.Trace
	opts   Options
	proj   surface.Projector
	trail  *surface.Trail
	next   int
}

func New(states trace.Trace, bounds trace.Bounds, geom surface.Geometry, opts Options) *Driver {
	if opts.Skip < 1 {
		opts.Skip = 1
	}
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	return &Driver{
		states: states,
		opts:   opts,
		proj:   surface.Projector{Bounds: bounds, Geom: geom},
		trail:  surface.NewTrail(geom),
	}
}

// Trail exposes the accumulated mask. Emitted frames share it.
func (d *Driver) Trail() *surface.Trail { return d.trail }

// Len returns the full, unskipped trace length.
func (d *Driver) Len() int { return len(d.states) }

// Next advances to the next sampled state and returns its frame.
// ok is false once the trace is spent.
func (d *Driver) Next() (f Frame, ok bool) {
	for d.next < len(d.states) {
		i := d.next
		d.next++
		if i%d.opts.Skip != 0 {
			continue
		}
		return d.frame(i, true), true
	}
	return Frame{}, false
}

// Final returns the frame for the last state of the full trace,
// regardless of the stride, so the end position is always visible even
// under aggressive sampling. Only the cursor moves; the trail stays
// exactly as sampled.
func (d *Driver) Final() Frame {
	return d.frame(len(d.states)-1, false)
}

func (d *Driver) frame(i int, mark bool) Frame {
	st := d.states[i]
	x := st.Coords[0] * d.opts.Scale
	y := st.Coords[1] * d.opts.Scale
	gx, gy := d.proj.Cell(x, y)
	g := d.proj.Geom
	on := gx >= 0 && gx < g.Width && gy >= 0 && gy < g.Height
	if on && mark {
		d.trail.Mark(gx, gy)
	}
	return Frame{
		Trail:   d.trail,
		X:       x,
		Y:       y,
		CursorX: gx,
		CursorY: gy,
		OnGrid:  on,
		Step:    st.Step,
		Index:   i,
	}
}

// Run plays the whole trace against sink. In animated mode it flushes
// one frame per sampled state and pauses for the configured delay
// between frames. In static mode it accumulates the trail silently and
// flushes exactly one final frame. The context only interrupts the
// inter-frame pause; there is no other suspension point.
func Run(ctx context.Context, d *Driver, sink Sink) error {
	if d.opts.StaticOnly {
		for {
			if _, ok := d.Next(); !ok {
				break
			}
		}
		return sink.Flush(d.Final())
	}
	for {
		f, ok := d.Next()
		if !ok {
			return nil
		}
		if err := sink.Flush(f); err != nil {
			return err
		}
		if d.opts.Delay <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.opts.Delay):
		}
	}
}
