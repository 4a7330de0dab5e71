package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/katalvlaran/knightpaths/knight"
)

// Legend strip layout in pixels.
const (
	legendPad    = 6
	legendLine   = 16
	legendEntry  = 84
	legendSwatch = 10
)

// DrawBoard renders every path of ps over the board, followed by a strip
// below it holding a title and one "Path N" legend entry per colour line.
// Paths cycle through PathPalette in PathSet.Sorted order; endpoints are
// drawn last so they stay visible.
func DrawBoard(ps knight.PathSet, opts Options) (*image.RGBA, error) {
	if err := checkSet(ps); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	sorted := ps.Sorted()
	area := boardRect(opts.SquareSize)
	img := image.NewRGBA(image.Rect(0, 0, area.Dx(), area.Dy()+legendHeight(area.Dx(), sorted.Len())))

	c := newCanvas(img, opts.SquareSize)
	c.squares()
	for i, p := range sorted.Paths {
		c.polyline(p, PathPalette[i%len(PathPalette)])
	}
	c.endpoints(ps.Start, ps.End)
	if opts.ShowLabels {
		c.labels()
	}
	c.legend(sorted, area.Max.Y)
	return img, nil
}

// WritePNG encodes DrawBoard's image as PNG.
func WritePNG(w io.Writer, ps knight.PathSet, opts Options) error {
	img, err := DrawBoard(ps, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// legendColumns is the number of entries per legend row for a strip of width side.
func legendColumns(side int) int {
	return max(1, (side-2*legendPad)/legendEntry)
}

// legendHeight is the strip height for n paths: one title line plus the entry rows.
func legendHeight(side, n int) int {
	cols := legendColumns(side)
	rows := (n + cols - 1) / cols
	return 2*legendPad + legendLine*(1+rows)
}

// legendSwatchAt returns the swatch rectangle of entry i in a strip starting at top.
func legendSwatchAt(side, top, i int) image.Rectangle {
	cols := legendColumns(side)
	x := legendPad + (i%cols)*legendEntry
	y := top + legendPad + legendLine*(1+i/cols) + 3
	return image.Rect(x, y, x+legendSwatch, y+legendSwatch)
}

// legend paints the strip below the board starting at row top.
func (c *canvas) legend(ps knight.PathSet, top int) {
	b := c.img.Bounds()
	c.fill(image.Rect(b.Min.X, top, b.Max.X, b.Max.Y), ColorPaper)

	title := fmt.Sprintf("Knight's Shortest Paths %v -> %v", ps.Start, ps.End)
	c.textAt(title, legendPad, top+legendPad+12, ColorInk)

	for i := range ps.Paths {
		sw := legendSwatchAt(b.Dx(), top, i)
		c.fill(sw, PathPalette[i%len(PathPalette)])
		c.textAt(fmt.Sprintf("Path %d", i+1), sw.Max.X+4, sw.Max.Y, ColorInk)
	}
}
