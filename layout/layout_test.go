package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageSize(t *testing.T) {
	for _, in := range []string{"LETTER", "letter", " Letter "} {
		got, err := ParsePageSize(in)
		require.NoError(t, err)
		assert.Equal(t, Letter, got)
	}
	got, err := ParsePageSize("a4")
	require.NoError(t, err)
	assert.Equal(t, A4, got)

	_, err = ParsePageSize("legal")
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestPlanGridNineUp(t *testing.T) {
	grid, err := PlanGrid(Letter, Options{UseStandardCard: true, CardsPerPage: 9})
	require.NoError(t, err)
	assert.Equal(t, 3, grid.Cols)
	assert.Equal(t, 3, grid.Rows)
	assert.Equal(t, CardWidthPt, grid.CellW)
	assert.Equal(t, CardHeightPt, grid.CellH)
	assert.False(t, grid.Rotate)
	assert.Equal(t, 9, grid.PerPage())
}

func TestPlanGridEightUp(t *testing.T) {
	for _, page := range []PageSize{Letter, A4} {
		grid, err := PlanGrid(page, Options{UseStandardCard: true, CardsPerPage: 8})
		require.NoError(t, err)
		assert.Equal(t, 2, grid.Cols)
		assert.Equal(t, 4, grid.Rows)
		// Landscape cells: the portrait card turned a quarter turn.
		assert.Equal(t, CardHeightPt, grid.CellW)
		assert.Equal(t, CardWidthPt, grid.CellH)
		assert.True(t, grid.Rotate)

		// The grid must actually fit the page.
		assert.LessOrEqual(t, grid.ExtentW(), page.Width)
		assert.LessOrEqual(t, grid.ExtentH(), page.Height)
	}
}

func TestPlanGridStandardAutoFit(t *testing.T) {
	grid, err := PlanGrid(Letter, Options{UseStandardCard: true})
	require.NoError(t, err)
	// 612/180 -> 3 columns, 792/252 -> 3 rows, cells stretched to tile
	// the page exactly.
	assert.Equal(t, 3, grid.Cols)
	assert.Equal(t, 3, grid.Rows)
	assert.InDelta(t, 204, grid.CellW, 1e-9)
	assert.InDelta(t, 264, grid.CellH, 1e-9)
	assert.False(t, grid.Rotate)
	assert.InDelta(t, Letter.Width, grid.ExtentW(), 1e-9)
	assert.InDelta(t, Letter.Height, grid.ExtentH(), 1e-9)
}

func TestPlanGridInvalidCardsPerPage(t *testing.T) {
	for _, n := range []int{1, 7, 10, -3} {
		_, err := PlanGrid(Letter, Options{UseStandardCard: true, CardsPerPage: n})
		assert.ErrorIs(t, err, ErrInvalidLayout, "cards per page %d", n)
	}
}

func TestPlanGridCustomSize(t *testing.T) {
	size := [2]float64{3, 4} // 216 x 288 pt cells
	grid, err := PlanGrid(Letter, Options{CustomSizeInches: &size})
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Cols)
	assert.Equal(t, 2, grid.Rows)
	assert.InDelta(t, 306, grid.CellW, 1e-9)
	assert.InDelta(t, 396, grid.CellH, 1e-9)
}

func TestPlanGridFullPage(t *testing.T) {
	grid, err := PlanGrid(A4, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, grid.Cols)
	assert.Equal(t, 1, grid.Rows)
	assert.Equal(t, A4.Width, grid.CellW)
	assert.Equal(t, A4.Height, grid.CellH)
}

func TestPlanGridOversizedCustomCell(t *testing.T) {
	size := [2]float64{20, 30} // larger than any page: still one cell
	grid, err := PlanGrid(Letter, Options{CustomSizeInches: &size})
	require.NoError(t, err)
	assert.Equal(t, 1, grid.Cols)
	assert.Equal(t, 1, grid.Rows)
	assert.Equal(t, Letter.Width, grid.CellW)
	assert.Equal(t, Letter.Height, grid.CellH)
}

func TestPlanGridInvalidCustomCell(t *testing.T) {
	size := [2]float64{0, 3}
	_, err := PlanGrid(Letter, Options{CustomSizeInches: &size})
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestNumPages(t *testing.T) {
	nineUp, err := PlanGrid(Letter, Options{UseStandardCard: true, CardsPerPage: 9})
	require.NoError(t, err)

	tests := []struct {
		records int
		want    int
	}{
		{0, 1}, // an empty set still previews one unbound card
		{1, 1},
		{9, 1},
		{10, 2},
		{18, 2},
		{19, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nineUp.NumPages(tt.records), "%d records", tt.records)
	}
}
