package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knightpaths/knight"
)

// Write renders ps to w in format f.
func Write(w io.Writer, f Format, ps knight.PathSet, opts Options) error {
	switch f {
	case FormatDOT:
		return WriteDOT(w, ps)
	case FormatPNG:
		return WritePNG(w, ps, opts)
	case FormatGIF:
		return WriteGIF(w, ps, opts)
	case FormatJSON:
		return WriteJSON(w, ps)
	case FormatYAML:
		return WriteYAML(w, ps)
	case FormatText:
		return WriteText(w, ps)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Files writes ps to "<base>.<format>" for each format concurrently and
// returns the written file names in sorted order. Duplicate formats are
// written once. The first failure cancels the remaining writers.
func Files(ctx context.Context, ps knight.PathSet, base string, formats []Format, opts Options) ([]string, error) {
	if err := checkSet(ps); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	formats = slices.Clone(formats)
	slices.Sort(formats)
	formats = slices.Compact(formats)

	sorted := ps.Sorted()
	names := make([]string, len(formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		name := fmt.Sprintf("%s.%s", base, f)
		names[i] = name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return writeFile(name, f, sorted, opts)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.Sort(names)
	return names, nil
}

func writeFile(name string, f Format, ps knight.PathSet, opts Options) (err error) {
	out, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", name, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", name, cerr)
		}
	}()
	if err := Write(out, f, ps, opts); err != nil {
		return fmt.Errorf("render: write %s: %w", name, err)
	}
	return nil
}
