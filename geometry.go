package cardpress

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Contains reports whether the design-space point (x, y) lies inside the
// shape's silhouette. Degenerate boxes (a zero-size dimension) are never
// hit. For all variants except Rectangle the bounding-box corners are
// outside the silhouette.
func (s *Shape) Contains(x, y float64) bool {
	x0, y0, x1, y1 := s.Bounds()

	switch s.Kind {
	case Rectangle:
		return x >= x0 && x <= x1 && y >= y0 && y <= y1

	case Oval:
		rx, ry := (x1-x0)/2, (y1-y0)/2
		if rx == 0 || ry == 0 {
			return false
		}
		cx, cy := (x0+x1)/2, (y0+y1)/2
		dx, dy := (x-cx)/rx, (y-cy)/ry
		return dx*dx+dy*dy <= 1

	case Triangle:
		// Vertices: bottom-left, top-center apex, bottom-right. The two
		// base corners are single-point columns of the silhouette, so a
		// strict horizontal bound excludes exactly those corner points.
		if x <= x0 || x >= x1 || y < y0 || y > y1 {
			return false
		}
		cx := (x0 + x1) / 2
		var edgeY float64
		if x <= cx {
			if cx == x0 {
				return true
			}
			slope := (y0 - y1) / (cx - x0)
			edgeY = y1 + slope*(x-x0)
		} else {
			if x1 == cx {
				return true
			}
			slope := (y1 - y0) / (x1 - cx)
			edgeY = y0 + slope*(x-cx)
		}
		return y >= edgeY

	case Hexagon:
		hw, hh := (x1-x0)/2, (y1-y0)/2
		if hw == 0 || hh == 0 {
			return false
		}
		cx, cy := (x0+x1)/2, (y0+y1)/2
		// Normalize into the unit-circle space the vertices live on.
		dx, dy := (x-cx)/hw, (y-cy)/hh
		for i := 0; i < 6; i++ {
			a1 := hexAngle(i)
			a2 := hexAngle(i + 1)
			ex1, ey1 := math.Cos(a1), math.Sin(a1)
			ex2, ey2 := math.Cos(a2), math.Sin(a2)
			// Cross product sign test: positive means outside this edge.
			if (dx-ex1)*(ey2-ey1)-(dy-ey1)*(ex2-ex1) > 0 {
				return false
			}
		}
		return true
	}
	return false
}

// hexAngle returns the angle of hexagon vertex i: 60°·i − 30°, in radians.
func hexAngle(i int) float64 {
	return float64(60*i-30) * math.Pi / 180
}

// hexVertices lists the six hexagon vertices for the box centered at
// (cx, cy) with half-extents (rx, ry).
func hexVertices(cx, cy, rx, ry float64) [6][2]float64 {
	var pts [6][2]float64
	for i := 0; i < 6; i++ {
		a := hexAngle(i)
		pts[i] = [2]float64{cx + rx*math.Cos(a), cy + ry*math.Sin(a)}
	}
	return pts
}

// tracePath appends the shape's outline path for the pixel-space box
// (x0, y0)-(x1, y1) to the context's current path.
func (s *Shape) tracePath(dc *gg.Context, x0, y0, x1, y1 float64) {
	w, h := x1-x0, y1-y0
	switch s.Kind {
	case Rectangle:
		dc.DrawRectangle(x0, y0, w, h)
	case Oval:
		dc.DrawEllipse(x0+w/2, y0+h/2, w/2, h/2)
	case Triangle:
		dc.MoveTo(x0, y1)
		dc.LineTo(x0+w/2, y0)
		dc.LineTo(x1, y1)
		dc.ClosePath()
	case Hexagon:
		pts := hexVertices(x0+w/2, y0+h/2, w/2, h/2)
		dc.MoveTo(pts[0][0], pts[0][1])
		for _, p := range pts[1:] {
			dc.LineTo(p[0], p[1])
		}
		dc.ClosePath()
	}
}

// ClipMask rasterizes the shape's silhouette at the given pixel size:
// opaque (255) inside the outline, transparent (0) elsewhere. Applied to
// an image's alpha channel it clips the image to the shape geometry.
// Degenerate sizes produce a 1x1 transparent mask.
func (s *Shape) ClipMask(width, height int) *image.Alpha {
	if width <= 0 || height <= 0 {
		return image.NewAlpha(image.Rect(0, 0, 1, 1))
	}
	dc := gg.NewContext(width, height)
	s.tracePath(dc, 0, 0, float64(width), float64(height))
	mask := dc.AsMask()

	out := image.NewAlpha(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.SetAlpha(x, y, color.Alpha{A: mask.At(x, y)})
		}
	}
	return out
}

// StrokeOutline strokes the shape's boundary into dc. The design-space
// bounding box is translated by (-offX, -offY) and scaled by scale into
// pixel space, then inset by half the scaled stroke width so the stroke
// never spills outside the declared box. A zero stroke width draws
// nothing, as does a box that vanishes after the inset.
func (s *Shape) StrokeOutline(dc *gg.Context, offX, offY, scale float64) {
	lw := s.LineWidth * scale
	if lw <= 0 {
		return
	}
	bx0, by0, bx1, by1 := s.Bounds()
	x0 := (bx0-offX)*scale + lw/2
	y0 := (by0-offY)*scale + lw/2
	x1 := (bx1-offX)*scale - lw/2
	y1 := (by1-offY)*scale - lw/2
	if x1-x0 <= 0 || y1-y0 <= 0 {
		return
	}

	col, _ := ParseColor(s.Color)
	dc.SetColor(col)
	dc.SetLineWidth(lw)
	s.tracePath(dc, x0, y0, x1, y1)
	_ = dc.Stroke()
}
