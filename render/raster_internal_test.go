package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightpaths/board"
	"github.com/katalvlaran/knightpaths/knight"
)

func TestLegendLayout(t *testing.T) {
	side := 80 * board.Size // 640px: 7 entries per row
	assert.Equal(t, 7, legendColumns(side))
	assert.Equal(t, 1, legendColumns(64))

	assert.Equal(t, 2*legendPad+legendLine*2, legendHeight(side, 1))
	assert.Equal(t, 2*legendPad+legendLine*17, legendHeight(side, 108))

	first := legendSwatchAt(side, side, 0)
	eighth := legendSwatchAt(side, side, 7)
	assert.Equal(t, first.Min.X, eighth.Min.X, "wraps to the next row")
	assert.Equal(t, first.Min.Y+legendLine, eighth.Min.Y)
}

func TestDrawBoard_Legend(t *testing.T) {
	ps, err := knight.Enumerate(board.MustParseSquare("e4"), board.MustParseSquare("e5"))
	require.NoError(t, err)
	require.Equal(t, 12, ps.Len())

	opts := DefaultOptions()
	opts.SquareSize = 40
	img, err := DrawBoard(ps, opts)
	require.NoError(t, err)

	side := 40 * board.Size
	require.Equal(t, side+legendHeight(side, 12), img.Bounds().Dy())

	for i := 0; i < ps.Len(); i++ {
		sw := legendSwatchAt(side, side, i)
		mid := image.Pt((sw.Min.X+sw.Max.X)/2, (sw.Min.Y+sw.Max.Y)/2)
		assert.Equal(t, PathPalette[i%len(PathPalette)], img.RGBAAt(mid.X, mid.Y), "swatch %d", i)
	}

	// strip background and some title ink
	assert.Equal(t, ColorPaper, img.RGBAAt(side-1, img.Bounds().Max.Y-1))
	var ink int
	for y := side + legendPad; y < side+legendPad+legendLine; y++ {
		for x := 0; x < side; x++ {
			if img.RGBAAt(x, y) == ColorInk {
				ink++
			}
		}
	}
	assert.Positive(t, ink, "title text is drawn")
}
