package render

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"io"
	"iter"

	"github.com/katalvlaran/knightpaths/knight"
)

// animationPalette holds every colour an animation frame uses.
var animationPalette = color.Palette{
	ColorLight, ColorDark, ColorInk, ColorPaper, ColorStart, ColorEnd, ColorTrail,
}

// Frames yields one frame per square of every path in sorted order:
// the board, the route travelled so far in blue, start/end markers, and the
// knight on its current square. The yielded image is reused between
// iterations; copy it to keep it.
func Frames(ps knight.PathSet, opts Options) (iter.Seq[*image.Paletted], error) {
	if err := checkSet(ps); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	base := image.NewPaletted(boardRect(opts.SquareSize), animationPalette)
	bc := newCanvas(base, opts.SquareSize)
	bc.squares()
	if opts.ShowLabels {
		bc.labels()
	}
	bc.endpoints(ps.Start, ps.End)
	sorted := ps.Sorted()

	return func(yield func(*image.Paletted) bool) {
		frame := image.NewPaletted(base.Rect, animationPalette)
		c := newCanvas(frame, opts.SquareSize)
		for _, p := range sorted.Paths {
			for i := range p {
				copy(frame.Pix, base.Pix)
				c.polyline(p[:i+1], ColorTrail)
				c.knight(p[i])
				if !yield(frame) {
					return
				}
			}
		}
	}, nil
}

// WriteGIF encodes Frames as a looping GIF with opts.FrameDelay per frame.
// The first frame covers the whole board; each later one holds only the
// rectangle that changed and is drawn over its predecessor.
func WriteGIF(w io.Writer, ps knight.PathSet, opts Options) error {
	frames, err := Frames(ps, opts)
	if err != nil {
		return err
	}
	delay := int(opts.FrameDelay.Milliseconds() / 10)

	anim := &gif.GIF{LoopCount: 0}
	var prev *image.Paletted
	for f := range frames {
		r := f.Rect
		if prev == nil {
			prev = image.NewPaletted(f.Rect, f.Palette)
		} else {
			r = changed(prev, f)
		}
		copy(prev.Pix, f.Pix)
		anim.Image = append(anim.Image, crop(f, r))
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalNone)
	}
	return gif.EncodeAll(w, anim)
}

// changed returns the bounding box of the pixels that differ between a and b,
// which share bounds and stride. Identical frames yield a single pixel.
func changed(a, b *image.Paletted) image.Rectangle {
	var r image.Rectangle
	w := b.Rect.Dx()
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		off := b.PixOffset(b.Rect.Min.X, y)
		ra, rb := a.Pix[off:off+w], b.Pix[off:off+w]
		if bytes.Equal(ra, rb) {
			continue
		}
		lo, hi := 0, w-1
		for ra[lo] == rb[lo] {
			lo++
		}
		for ra[hi] == rb[hi] {
			hi--
		}
		r = r.Union(image.Rect(b.Rect.Min.X+lo, y, b.Rect.Min.X+hi+1, y+1))
	}
	if r.Empty() {
		return image.Rect(0, 0, 1, 1).Add(b.Rect.Min)
	}
	return r
}

// crop copies the r part of src into a new image.
func crop(src *image.Paletted, r image.Rectangle) *image.Paletted {
	dst := image.NewPaletted(r, src.Palette)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		copy(dst.Pix[dst.PixOffset(r.Min.X, y):], src.Pix[src.PixOffset(r.Min.X, y):src.PixOffset(r.Max.X, y)])
	}
	return dst
}
