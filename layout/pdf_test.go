package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/cardpress"
	"github.com/gogpu/cardpress/render"
)

func testDocument(t *testing.T) *cardpress.Document {
	t.Helper()
	doc := cardpress.NewDocument()
	sh, err := doc.AddShape(doc.Layers[0], cardpress.Rectangle, "border", 0, 0, 180, 252)
	require.NoError(t, err)
	sh.Color = "blue"
	sh.LineWidth = 3
	sh.SetContainer(cardpress.ContainerNone)
	return doc
}

func TestExportWritesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.pdf")
	e := &Exporter{
		Flattener: &render.Flattener{PPI: 72},
		Page:      Letter,
		Options:   Options{UseStandardCard: true, CardsPerPage: 9},
	}

	records := make([]cardpress.Record, 10) // 9-up: two pages
	err := e.Export(path, testDocument(t), records)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 100)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportEightUpRotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards8.pdf")
	e := &Exporter{
		Flattener: &render.Flattener{PPI: 72},
		Page:      A4,
		Options:   Options{UseStandardCard: true, CardsPerPage: 8},
	}
	err := e.Export(path, testDocument(t), make([]cardpress.Record, 8))
	require.NoError(t, err)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())
}

func TestExportNoRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.pdf")
	e := &Exporter{
		Flattener: &render.Flattener{PPI: 72},
		Page:      Letter,
		Options:   Options{},
	}
	// No records: a single page with the unbound design.
	err := e.Export(path, testDocument(t), nil)
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestExportInvalidConfigFailsEarly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.pdf")
	e := &Exporter{
		Flattener: &render.Flattener{PPI: 72},
		Page:      Letter,
		Options:   Options{UseStandardCard: true, CardsPerPage: 5},
	}
	err := e.Export(path, testDocument(t), nil)
	require.ErrorIs(t, err, ErrInvalidLayout)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no output file on a config error")
}

func TestExportEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	e := &Exporter{
		Flattener: &render.Flattener{PPI: 72},
		Page:      Letter,
		Options:   Options{},
	}
	err := e.Export(path, cardpress.NewDocument(), nil)
	require.ErrorIs(t, err, cardpress.ErrEmptyDocument)
}

func TestRenderPagePlacesCards(t *testing.T) {
	e := &Exporter{Flattener: &render.Flattener{PPI: 72}}
	grid := Grid{Cols: 2, Rows: 2, CellW: 100, CellH: 140}

	doc := testDocument(t)
	batch := []cardpress.Record{{}, {}, {}}
	img := e.renderPage(doc, batch, grid, 100, 140)

	require.Equal(t, 200, img.Bounds().Dx())
	require.Equal(t, 280, img.Bounds().Dy())

	// Three cards fill cells 0..2; the stroke shows near each cell's edge.
	for _, origin := range [][2]int{{0, 0}, {100, 0}, {0, 140}} {
		found := false
		for d := 0; d < 6 && !found; d++ {
			if img.NRGBAAt(origin[0]+d, origin[1]+70).A > 0 {
				found = true
			}
		}
		assert.True(t, found, "no card content near cell origin %v", origin)
	}
	// The fourth cell had no record and stays empty.
	assert.Zero(t, img.NRGBAAt(150, 210).A)
}
