// Package render flattens one card: it binds a record's values into the
// document's named shapes, regenerates their payload rasters at the render
// density, and composites every shape into a single RGBA image.
package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/cardpress"
	"github.com/gogpu/cardpress/fontscan"
)

// DefaultPPI is the export render density. It is deliberately independent
// of any on-screen display density; design units stay at 72 per inch.
const DefaultPPI = 300

// designPPI is the nominal resolution of design units.
const designPPI = 72

// Flattener renders cards at a fixed density. Flatten binds record values
// onto the shared shape tree in place, so a Flattener must not be used
// from multiple goroutines against the same document; clone the document
// per worker instead.
type Flattener struct {
	// PPI is the render density in pixels per inch. Zero means DefaultPPI.
	PPI float64

	// Fonts resolves font families for text payloads.
	Fonts *fontscan.Library
}

// Scale returns the design-unit to render-pixel factor.
func (f *Flattener) Scale() float64 {
	ppi := f.PPI
	if ppi <= 0 {
		ppi = DefaultPPI
	}
	return ppi / designPPI
}

// Flatten composites the whole document, with the record's values bound
// into matching shapes, into one card raster. Per-shape resource failures
// (missing image files, unloadable fonts) clear that shape's payload and
// are logged; they never abort the flatten.
func (f *Flattener) Flatten(doc *cardpress.Document, rec cardpress.Record) (*image.NRGBA, error) {
	f.bind(doc, rec)

	x0, y0, x1, y1 := doc.Bounds()
	s := f.Scale()
	w := max(1, int(math.Round((x1-x0)*s)))
	h := max(1, int(math.Round((y1-y0)*s)))

	dc := gg.NewContext(w, h)
	doc.Walk(func(_ *cardpress.Layer, sh *cardpress.Shape) {
		f.drawShape(dc, sh, x0, y0, s)
	})
	return toNRGBA(dc.Image()), nil
}

// bind pushes record values into every shape whose name matches a record
// key, dropping the stale payload raster so it regenerates at draw time.
func (f *Flattener) bind(doc *cardpress.Document, rec cardpress.Record) {
	for key, val := range rec {
		doc.Walk(func(_ *cardpress.Layer, sh *cardpress.Shape) {
			if !sh.BindsTo(key) {
				return
			}
			switch sh.Container {
			case cardpress.ContainerText:
				sh.SetText(val)
			case cardpress.ContainerImage:
				sh.SetPath(val)
			}
		})
	}
}

// drawShape composites one shape: payload first, inset by the stroke
// width on all sides, then the outline on the un-inset bounding box.
func (f *Flattener) drawShape(dc *gg.Context, sh *cardpress.Shape, offX, offY, scale float64) {
	bx0, by0, bx1, by1 := sh.Bounds()
	inset := sh.LineWidth

	rx0 := (bx0 + inset - offX) * scale
	ry0 := (by0 + inset - offY) * scale
	rx1 := (bx1 - inset - offX) * scale
	ry1 := (by1 - inset - offY) * scale
	w := int(math.Round(rx1 - rx0))
	h := int(math.Round(ry1 - ry0))

	if w > 0 && h > 0 {
		if content := f.payload(sh, w, h); content != nil {
			dc.DrawImageEx(gg.ImageBufFromImage(content), gg.DrawImageOptions{
				X:         rx0,
				Y:         ry0,
				DstWidth:  float64(w),
				DstHeight: float64(h),
				Opacity:   1.0,
			})
		}
	}

	sh.StrokeOutline(dc, offX, offY, scale)
}

// payload returns the shape's rendered content at exactly w x h pixels,
// regenerating it when the cache is missing or the wrong size. Text is
// always rendered at the target size rather than stretched, to avoid
// blur.
func (f *Flattener) payload(sh *cardpress.Shape, w, h int) *image.NRGBA {
	if c := sh.Content(); c != nil && c.Bounds().Dx() == w && c.Bounds().Dy() == h {
		return c
	}

	switch sh.Container {
	case cardpress.ContainerText:
		img := f.renderText(sh, w, h)
		sh.SetContent(img)
		return img
	case cardpress.ContainerImage:
		img := f.loadImage(sh, w, h)
		sh.SetContent(img)
		return img
	}
	return nil
}

// loadImage reads the shape's image file, resamples it to the payload
// size and clips it to the shape geometry when requested. A missing or
// unreadable file leaves the shape blank.
func (f *Flattener) loadImage(sh *cardpress.Shape, w, h int) *image.NRGBA {
	if sh.Path == "" {
		return nil
	}
	buf, err := gg.LoadImage(sh.Path)
	if err != nil {
		cardpress.Logger().Warn("image payload unavailable, leaving shape blank",
			"shape", sh.ID, "path", sh.Path, "error", err)
		return nil
	}
	img := Resample(buf.ToStdImage(), w, h)
	if sh.ClipToShape {
		applyMask(img, sh.ClipMask(w, h))
	}
	return img
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	out := image.NewNRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
