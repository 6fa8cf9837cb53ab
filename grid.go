package cardpress

import "math"

// Grid quantizes canvas coordinates to a subdivided snapping grid.
// The minor increment is one inch in pixels divided by the subdivision
// count, e.g. ppi=96 with 8 subdivisions snaps to eighth-inch ticks.
type Grid struct {
	step float64
}

// NewGrid derives a snapping grid from a pixels-per-inch scale and the
// number of minor ticks per inch. Non-positive subdivisions fall back to 1.
func NewGrid(ppi float64, subdivisions int) Grid {
	if subdivisions < 1 {
		subdivisions = 1
	}
	return Grid{step: ppi / float64(subdivisions)}
}

// Step returns the minor grid increment in pixels.
func (g Grid) Step() float64 { return g.step }

// Snap returns the grid point nearest to (x, y). Values already on the
// grid are returned unchanged; the snapped point is never further than
// half a step from the input.
func (g Grid) Snap(x, y float64) (float64, float64) {
	if g.step <= 0 {
		return x, y
	}
	return math.Round(x/g.step) * g.step, math.Round(y/g.step) * g.step
}
