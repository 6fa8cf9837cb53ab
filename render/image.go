package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Resample scales an image to exactly w x h pixels with Catmull-Rom
// interpolation. The source is returned unchanged when it already has the
// target size.
func Resample(src image.Image, w, h int) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Bounds().Dx() == w && n.Bounds().Dy() == h {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// applyMask multiplies the image's alpha channel by the mask, clipping
// the image to the mask's opaque region. Image and mask must have the
// same dimensions.
func applyMask(img *image.NRGBA, mask *image.Alpha) {
	b := img.Bounds()
	if mask.Bounds().Dx() != b.Dx() || mask.Bounds().Dy() != b.Dy() {
		return
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			m := mask.AlphaAt(mask.Bounds().Min.X+x, mask.Bounds().Min.Y+y).A
			img.Pix[i+3] = uint8(uint16(img.Pix[i+3]) * uint16(m) / 255)
		}
	}
}

// Rotate90CW returns the image rotated a quarter turn clockwise. Used by
// the 8-up page layout, which rotates each card after flattening so the
// per-shape content alignment is preserved.
func Rotate90CW(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Source (x, y) lands at (h-1-y, x) after a clockwise turn.
			si := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			di := dst.PixOffset(h-1-y, x)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}
