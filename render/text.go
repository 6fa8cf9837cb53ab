package render

import (
	"image"
	"strings"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/cardpress"
)

// textPadding keeps wrapped lines off the very edge of the payload region.
const textPadding = 2

// renderText rasterizes the shape's text payload at exactly w x h pixels:
// greedy word wrap by measured advance, horizontal justification per line,
// vertical justification of the whole block. Lines that do not fit the
// height are dropped. A shape with no text, or whose font cannot be
// resolved, stays blank.
func (f *Flattener) renderText(sh *cardpress.Shape, w, h int) *image.NRGBA {
	if sh.Text == "" || w <= 0 || h <= 0 {
		return nil
	}
	if f.Fonts == nil {
		cardpress.Logger().Warn("no font library configured, leaving text shape blank",
			"shape", sh.ID)
		return nil
	}
	face, err := f.Fonts.Face(sh.FontName, sh.FontWeight, sh.FontSize*f.Scale())
	if err != nil {
		cardpress.Logger().Warn("font unavailable, leaving text shape blank",
			"shape", sh.ID, "font", sh.FontName, "error", err)
		return nil
	}

	lines := wrapText(face, sh.Text, float64(w-textPadding))
	metrics := face.Metrics()
	lineH := metrics.LineHeight()
	if lineH <= 0 {
		lineH = sh.FontSize * f.Scale()
	}
	maxLines := max(1, int(float64(h)/lineH))
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	blockH := float64(len(lines)) * lineH
	var yTop float64
	switch sh.VJustify {
	case cardpress.VJustifyCenter:
		yTop = (float64(h) - blockH) / 2
	case cardpress.VJustifyBottom:
		yTop = float64(h) - blockH
	}
	if yTop < 0 {
		yTop = 0
	}

	// Text always draws opaque; the shape color's alpha is ignored.
	col, _ := cardpress.ParseColor(sh.Color)
	col.A = 255

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, line := range lines {
		adv := face.Advance(line)
		var x float64
		switch sh.Justify {
		case cardpress.JustifyCenter:
			x = (float64(w) - adv) / 2
		case cardpress.JustifyRight:
			x = float64(w) - adv - textPadding
		}
		if x < textPadding {
			x = textPadding
		}
		baseline := yTop + float64(i)*lineH + metrics.Ascent
		text.Draw(img, line, face, x, baseline, col)
	}
	return img
}

// wrapText splits text into lines no wider than maxWidth by measured
// advance. Explicit newlines are honored; a single word wider than the
// limit stays on its own line rather than being broken.
func wrapText(face text.Face, s string, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if face.Advance(candidate) <= maxWidth {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}
