package cardpress

import (
	"math"
	"testing"
)

func TestGridSnap(t *testing.T) {
	g := NewGrid(96, 8) // eighth-inch ticks, step 12px

	tests := []struct {
		x, y         float64
		wantX, wantY float64
	}{
		{0, 0, 0, 0},
		{5, 5, 0, 0},
		{6, 6, 12, 12}, // exactly half a step rounds up
		{7, 18, 12, 24},
		{11.9, 12.1, 12, 12},
		{-5, -7, 0, -12},
		{24, 36, 24, 36}, // already on the grid
	}
	for _, tt := range tests {
		gotX, gotY := g.Snap(tt.x, tt.y)
		if gotX != tt.wantX || gotY != tt.wantY {
			t.Errorf("Snap(%v, %v) = (%v, %v), want (%v, %v)",
				tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
		}
	}
}

func TestGridSnapIdempotent(t *testing.T) {
	g := NewGrid(300, 4)
	for _, v := range []float64{0, 13, 37.5, 74.999, 150, 1000.1} {
		x1, y1 := g.Snap(v, v*2)
		x2, y2 := g.Snap(x1, y1)
		if x1 != x2 || y1 != y2 {
			t.Errorf("snap not idempotent: (%v, %v) -> (%v, %v)", x1, y1, x2, y2)
		}
	}
}

func TestGridSnapDistance(t *testing.T) {
	g := NewGrid(96, 8)
	half := g.Step() / 2
	for v := -30.0; v < 30; v += 0.7 {
		x, y := g.Snap(v, -v)
		if math.Abs(x-v) > half || math.Abs(y+v) > half {
			t.Errorf("Snap(%v, %v) = (%v, %v), moved more than half a step", v, -v, x, y)
		}
	}
}

func TestNewGridSubdivisionFloor(t *testing.T) {
	g := NewGrid(96, 0)
	if g.Step() != 96 {
		t.Errorf("Step() = %v, want 96 for non-positive subdivisions", g.Step())
	}
}
