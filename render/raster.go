package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/knightpaths/board"
)

// Board and marker colours.
var (
	ColorLight  = color.RGBA{R: 0xF0, G: 0xD9, B: 0xB5, A: 0xFF}
	ColorDark   = color.RGBA{R: 0xB5, G: 0x88, B: 0x63, A: 0xFF}
	ColorStart  = color.RGBA{G: 0x80, A: 0xFF}
	ColorEnd    = color.RGBA{R: 0xFF, A: 0xFF}
	ColorTrail  = color.RGBA{B: 0xFF, A: 0xFF}
	ColorInk    = color.RGBA{A: 0xFF}
	ColorPaper  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	PathPalette = []color.RGBA{
		{R: 0xFF, A: 0xFF},          // red
		{B: 0xFF, A: 0xFF},          // blue
		{G: 0x80, A: 0xFF},          // green
		{R: 0xFF, G: 0xA5, A: 0xFF}, // orange
		{R: 0x80, B: 0x80, A: 0xFF}, // purple
		{G: 0xFF, B: 0xFF, A: 0xFF}, // cyan
		{R: 0xFF, B: 0xFF, A: 0xFF}, // magenta
		{R: 0xFF, G: 0xFF, A: 0xFF}, // yellow
	}
)

// canvas draws board geometry at a fixed square size onto an RGBA or paletted
// image whose top-left square is a8. Rank 1 is at the bottom.
type canvas struct {
	img  draw.Image
	size int
}

func newCanvas(img draw.Image, size int) *canvas {
	return &canvas{img: img, size: size}
}

// boardRect is the pixel area covered by the 8×8 squares.
func boardRect(size int) image.Rectangle {
	side := size * board.Size
	return image.Rect(0, 0, side, side)
}

// centre returns the pixel centre of sq.
func (c *canvas) centre(sq board.Square) image.Point {
	return image.Pt(sq.Col*c.size+c.size/2, (board.Size-1-sq.Row)*c.size+c.size/2)
}

// squares paints the checkerboard; a1 is dark.
func (c *canvas) squares() {
	for _, sq := range board.AllSquares() {
		col := ColorLight
		if (sq.Row+sq.Col)%2 == 0 {
			col = ColorDark
		}
		x, y := sq.Col*c.size, (board.Size-1-sq.Row)*c.size
		c.fill(image.Rect(x, y, x+c.size, y+c.size), col)
	}
}

// labels writes each square's algebraic name at its centre.
func (c *canvas) labels() {
	for _, sq := range board.AllSquares() {
		c.text(sq.String(), c.centre(sq), ColorInk)
	}
}

// text draws s centred on p using the 7×13 bitmap face.
func (c *canvas) text(s string, p image.Point, col color.Color) {
	d := c.drawer(col)
	width := d.MeasureString(s).Round()
	ascent := basicfont.Face7x13.Metrics().Ascent.Round()
	d.Dot = fixed.P(p.X-width/2, p.Y+ascent/2)
	d.DrawString(s)
}

// textAt draws s with its baseline starting at (x, baseline).
func (c *canvas) textAt(s string, x, baseline int, col color.Color) {
	d := c.drawer(col)
	d.Dot = fixed.P(x, baseline)
	d.DrawString(s)
}

func (c *canvas) drawer(col color.Color) *font.Drawer {
	return &font.Drawer{Dst: c.img, Src: image.NewUniform(col), Face: basicfont.Face7x13}
}

// fill paints r with col.
func (c *canvas) fill(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// disc fills a circle of radius r around p.
func (c *canvas) disc(p image.Point, r int, col color.Color) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				c.img.Set(p.X+x, p.Y+y, col)
			}
		}
	}
}

// ring draws a filled disc with a one-pixel-wide ink outline.
func (c *canvas) ring(p image.Point, r int, fill color.Color) {
	c.disc(p, r, ColorInk)
	c.disc(p, r-max(1, r/6), fill)
}

// line draws a segment of the given width by stamping discs along it.
func (c *canvas) line(a, b image.Point, width int, col color.Color) {
	r := max(1, width/2)
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		c.disc(a, r, col)
		return
	}
	for i := 0; i <= steps; i++ {
		c.disc(image.Pt(a.X+dx*i/steps, a.Y+dy*i/steps), r, col)
	}
}

// polyline joins the centres of p's squares, with a dot on each vertex.
func (c *canvas) polyline(p board.Path, col color.Color) {
	width := max(2, c.size/20)
	for i := 0; i+1 < len(p); i++ {
		c.line(c.centre(p[i]), c.centre(p[i+1]), width, col)
	}
	for _, sq := range p {
		c.disc(c.centre(sq), width+1, col)
	}
}

// endpoints marks start in green and end in red.
func (c *canvas) endpoints(start, end board.Square) {
	r := max(4, c.size/6)
	c.ring(c.centre(start), r, ColorStart)
	c.ring(c.centre(end), r, ColorEnd)
}

// knight draws the moving piece marker on sq.
func (c *canvas) knight(sq board.Square) {
	p := c.centre(sq)
	c.ring(p, max(6, c.size*3/10), ColorPaper)
	c.text("N", p, ColorInk)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
