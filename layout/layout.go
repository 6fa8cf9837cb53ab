// Package layout partitions a record set into pages, computes the card
// grid for standard 8-up/9-up or auto-fit layouts, and writes the
// composited page rasters into a multi-page PDF.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Standard playing-card cell in points: 2.5 x 3.5 inches, portrait.
const (
	CardWidthPt  = 2.5 * 72
	CardHeightPt = 3.5 * 72
)

// ErrInvalidLayout reports an export configuration that cannot produce a
// page grid. It is raised before any rendering begins.
var ErrInvalidLayout = errors.New("layout: invalid export configuration")

// PageSize is a PDF page in points. The values match the seehuhn.de/go/pdf
// document paper sizes.
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

var (
	Letter = PageSize{Name: "LETTER", Width: 612, Height: 792}
	A4     = PageSize{Name: "A4", Width: 595.276, Height: 841.890}
)

// ParsePageSize accepts "LETTER" or "A4", case-insensitively.
func ParsePageSize(s string) (PageSize, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LETTER":
		return Letter, nil
	case "A4":
		return A4, nil
	}
	return PageSize{}, fmt.Errorf("%w: page size %q (want LETTER or A4)", ErrInvalidLayout, s)
}

// Options selects the card-grid layout for an export.
type Options struct {
	// UseStandardCard lays out 2.5x3.5in card cells.
	UseStandardCard bool

	// CardsPerPage is 8 or 9 for the fixed standard-card grids, 0 for
	// auto-fit. Any other value is rejected.
	CardsPerPage int

	// CustomSizeInches overrides the auto-fit cell size. Nil means the
	// standard card (when UseStandardCard) or the full page.
	CustomSizeInches *[2]float64
}

// Grid is a resolved page layout: the cell matrix, the cell size in
// points, and whether cards are rotated a quarter turn clockwise after
// flattening (8-up landscape cells only).
type Grid struct {
	Cols, Rows   int
	CellW, CellH float64
	Rotate       bool
}

// PerPage returns the number of card cells on one page.
func (g Grid) PerPage() int { return g.Cols * g.Rows }

// ExtentW returns the grid's total width in points.
func (g Grid) ExtentW() float64 { return float64(g.Cols) * g.CellW }

// ExtentH returns the grid's total height in points.
func (g Grid) ExtentH() float64 { return float64(g.Rows) * g.CellH }

// PlanGrid resolves the export options into a page grid.
//
// 9-up is a 3x3 matrix of portrait card cells. 8-up is a 2x4 matrix of
// landscape cells (the portrait card rotated 90° clockwise after
// flattening); 2x4 is the one consistent definition that fits both LETTER
// and A4. Anything else auto-fits: the largest whole number of requested
// cells per axis, then the cell is rescaled so the cells tile the page
// exactly, with no rotation.
func PlanGrid(page PageSize, opts Options) (Grid, error) {
	if opts.UseStandardCard {
		switch opts.CardsPerPage {
		case 9:
			return Grid{Cols: 3, Rows: 3, CellW: CardWidthPt, CellH: CardHeightPt}, nil
		case 8:
			return Grid{Cols: 2, Rows: 4, CellW: CardHeightPt, CellH: CardWidthPt, Rotate: true}, nil
		case 0:
			return autoFit(page, CardWidthPt, CardHeightPt)
		default:
			return Grid{}, fmt.Errorf("%w: cards per page must be 8 or 9, got %d",
				ErrInvalidLayout, opts.CardsPerPage)
		}
	}

	cw, ch := page.Width, page.Height
	if opts.CustomSizeInches != nil {
		cw, ch = opts.CustomSizeInches[0]*72, opts.CustomSizeInches[1]*72
	}
	return autoFit(page, cw, ch)
}

// autoFit packs as many cw x ch cells as fit, then stretches the cell so
// the grid spans the page with no gaps.
func autoFit(page PageSize, cw, ch float64) (Grid, error) {
	if cw <= 0 || ch <= 0 {
		return Grid{}, fmt.Errorf("%w: cell size %.1fx%.1fpt", ErrInvalidLayout, cw, ch)
	}
	cols := max(int(page.Width/cw), 1)
	rows := max(int(page.Height/ch), 1)
	return Grid{
		Cols:  cols,
		Rows:  rows,
		CellW: page.Width / float64(cols),
		CellH: page.Height / float64(rows),
	}, nil
}

// NumPages returns how many pages a record count needs on the grid. Zero
// records still produce one page holding a single unbound card.
func (g Grid) NumPages(records int) int {
	if records == 0 {
		return 1
	}
	per := g.PerPage()
	return (records + per - 1) / per
}
