package surface

import "testing"

func TestBrailleSetPixel(t *testing.T) {
	b := NewBraille(2, 1)
	b.SetPixel(0, 0)
	rows := b.Rows()
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	r := []rune(rows[0])
	if r[0] != rune(0x2801) {
		t.Errorf("cell 0 = %U, want U+2801", r[0])
	}
	if r[1] != ' ' {
		t.Errorf("cell 1 = %q, want space", r[1])
	}
}

func TestBrailleIgnoresOutOfRange(t *testing.T) {
	b := NewBraille(1, 1)
	b.SetPixel(-1, 0)
	b.SetPixel(0, -3)
	b.SetPixel(2, 0)
	b.SetPixel(0, 4)
	if b.Rows()[0] != " " {
		t.Errorf("out-of-range pixels landed: %q", b.Rows()[0])
	}
}

func TestBrailleLineEndpoints(t *testing.T) {
	b := NewBraille(4, 2)
	b.Line(0, 0, 7, 7)
	rows := b.Rows()
	first := []rune(rows[0])
	last := []rune(rows[1])
	if first[0] == ' ' {
		t.Error("line start not drawn")
	}
	if last[3] == ' ' {
		t.Error("line end not drawn")
	}
}
