package cli

import (
	"context"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/knightpaths/board"
)

// Prompter fills in whichever of start and end is empty.
type Prompter func(ctx context.Context, start, end *string) error

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptSquares asks for the missing squares with an interactive form.
func promptSquares(ctx context.Context, start, end *string) error {
	a, b := exampleSquares(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	var fields []huh.Field
	if *start == "" {
		fields = append(fields, huh.NewInput().
			Title("Start square").
			Placeholder(a.String()).
			Value(start).
			Validate(validateSquare))
	}
	if *end == "" {
		fields = append(fields, huh.NewInput().
			Title("End square").
			Placeholder(b.String()).
			Value(end).
			Validate(validateSquare))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).RunWithContext(ctx)
}

// exampleSquares picks two distinct squares for placeholders.
func exampleSquares(r *rand.Rand) (board.Square, board.Square) {
	a := r.IntN(board.Squares)
	b := r.IntN(board.Squares - 1)
	if b >= a {
		b++
	}
	return board.FromIndex(a), board.FromIndex(b)
}

func validateSquare(s string) error {
	_, err := board.ParseSquare(s)
	return err
}
