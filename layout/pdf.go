package layout

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfimage "seehuhn.de/go/pdf/graphics/image"

	"github.com/gogpu/cardpress"
	"github.com/gogpu/cardpress/render"
)

// Exporter renders a record set into a multi-page PDF of card grids.
type Exporter struct {
	Flattener *render.Flattener
	Page      PageSize
	Options   Options
}

// Export flattens every record into a card, tiles the cards into page
// grids and writes the result to path. Configuration problems fail before
// any rendering; per-record flatten failures leave that cell empty and
// are logged.
func (e *Exporter) Export(path string, doc *cardpress.Document, records []cardpress.Record) error {
	grid, err := PlanGrid(e.Page, e.Options)
	if err != nil {
		return err
	}
	if doc.NumShapes() == 0 {
		return fmt.Errorf("layout: nothing to export: %w", cardpress.ErrEmptyDocument)
	}
	if len(records) == 0 {
		// One page showing the unbound design.
		records = []cardpress.Record{{}}
	}

	ppi := e.Flattener.PPI
	if ppi <= 0 {
		ppi = render.DefaultPPI
	}
	cellW := cellPixels(grid.CellW, ppi)
	cellH := cellPixels(grid.CellH, ppi)

	out, err := document.CreateMultiPage(path, &pdf.Rectangle{URx: e.Page.Width, URy: e.Page.Height}, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("layout: creating %s: %w", path, err)
	}

	per := grid.PerPage()
	pages := 0
	for start := 0; start < len(records); start += per {
		batch := records[start:min(start+per, len(records))]
		pageImg := e.renderPage(doc, batch, grid, cellW, cellH)
		if err := e.emitPage(out, pageImg, grid); err != nil {
			return err
		}
		pages++
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("layout: closing %s: %w", path, err)
	}
	cardpress.Logger().Info("PDF export complete",
		"path", path, "pages", pages, "grid", fmt.Sprintf("%dx%d", grid.Cols, grid.Rows))
	return nil
}

// renderPage composites one batch of cards into a grid-sized raster.
// Cells without a record stay empty.
func (e *Exporter) renderPage(doc *cardpress.Document, batch []cardpress.Record, grid Grid, cellW, cellH int) *image.NRGBA {
	pageImg := image.NewNRGBA(image.Rect(0, 0, grid.Cols*cellW, grid.Rows*cellH))
	for i, rec := range batch {
		card, err := e.Flattener.Flatten(doc, rec)
		if err != nil {
			cardpress.Logger().Warn("card render failed, leaving cell empty",
				"record", i, "error", err)
			continue
		}
		if grid.Rotate {
			card = render.Rotate90CW(card)
		}
		card = render.Resample(card, cellW, cellH)

		x := (i % grid.Cols) * cellW
		y := (i / grid.Cols) * cellH
		dst := image.Rect(x, y, x+cellW, y+cellH)
		draw.Draw(pageImg, dst, card, card.Bounds().Min, draw.Over)
	}
	return pageImg
}

// emitPage embeds the page raster as a single image XObject spanning the
// grid extent, centered on the page.
func (e *Exporter) emitPage(out *document.MultiPage, pageImg *image.NRGBA, grid Grid) error {
	gw, gh := grid.ExtentW(), grid.ExtentH()
	left := (e.Page.Width - gw) / 2
	bottom := (e.Page.Height - gh) / 2

	page := out.AddPage()
	page.PushGraphicsState()
	// Negative y scale: PDF user space is y-up, the raster is y-down.
	m := matrix.Scale(gw, -gh)
	m = m.Mul(matrix.Translate(left, bottom+gh))
	page.Transform(m)
	page.DrawXObject(&pdfimage.PNG{Data: pageImg})
	page.PopGraphicsState()
	if err := page.Close(); err != nil {
		return fmt.Errorf("layout: writing page: %w", err)
	}
	return nil
}

// cellPixels converts a cell dimension in points to render-density pixels.
func cellPixels(pt, ppi float64) int {
	return max(1, int(math.Round(pt*ppi/72)))
}
