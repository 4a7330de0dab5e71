package render

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/knightpaths/knight"
)

// Sentinel errors for rendering.
var (
	// ErrEmptyPathSet indicates a PathSet with no paths.
	ErrEmptyPathSet = errors.New("render: path set is empty")
	// ErrInvalidOptions indicates out-of-range rendering options.
	ErrInvalidOptions = errors.New("render: invalid options")
	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("render: unknown format")
)

// Format names an output artifact kind; its value is also the file extension.
type Format string

const (
	FormatDOT  Format = "dot"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "txt"
)

// Formats lists every supported format.
var Formats = []Format{FormatDOT, FormatPNG, FormatGIF, FormatJSON, FormatYAML, FormatText}

// ParseFormat resolves a case-insensitive format name. "text" and "yml" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "text":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options tunes raster output.
type Options struct {
	// SquareSize is the edge length of one board square in pixels.
	SquareSize int
	// FrameDelay is the display time of each GIF frame.
	FrameDelay time.Duration
	// ShowLabels draws the algebraic name of every square.
	ShowLabels bool
}

// DefaultOptions returns 80px squares, one-second frames and square labels.
func DefaultOptions() Options {
	return Options{
		SquareSize: 80,
		FrameDelay: time.Second,
		ShowLabels: true,
	}
}

// Validate reports ErrInvalidOptions for unusable values.
func (o Options) Validate() error {
	if o.SquareSize < 8 {
		return fmt.Errorf("%w: square size %d (want >= 8)", ErrInvalidOptions, o.SquareSize)
	}
	if o.FrameDelay < 0 {
		return fmt.Errorf("%w: frame delay %v", ErrInvalidOptions, o.FrameDelay)
	}
	return nil
}

func checkSet(ps knight.PathSet) error {
	if ps.Len() == 0 {
		return ErrEmptyPathSet
	}
	return nil
}
