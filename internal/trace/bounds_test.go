package trace

import "testing"

func TestComputeBounds(t *testing.T) {
	tr := Trace{
		{Coords: []float64{0, 0}},
		{Coords: []float64{10, 0}},
		{Coords: []float64{10, 10}},
		{Coords: []float64{-2, 5}},
	}
	b := ComputeBounds(tr, 1.0)
	want := Bounds{MinX: -2, MaxX: 10, MinY: 0, MaxY: 10}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
}

func TestComputeBoundsScale(t *testing.T) {
	tr := Trace{
		{Coords: []float64{1, 2}},
		{Coords: []float64{3, 4}},
	}
	b := ComputeBounds(tr, 2.0)
	want := Bounds{MinX: 2, MaxX: 6, MinY: 4, MaxY: 8}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
}

func TestComputeBoundsSingleState(t *testing.T) {
	b := ComputeBounds(Trace{{Coords: []float64{3, 5}}}, 1.0)
	want := Bounds{MinX: 3, MaxX: 4, MinY: 5, MaxY: 6}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
}

func TestComputeBoundsCollapsedAxis(t *testing.T) {
	// all points share y: only that axis gets widened
	tr := Trace{
		{Coords: []float64{0, 7}},
		{Coords: []float64{4, 7}},
	}
	b := ComputeBounds(tr, 1.0)
	want := Bounds{MinX: 0, MaxX: 4, MinY: 7, MaxY: 8}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
}
