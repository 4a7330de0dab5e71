package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/knightpaths/board"
)

func (a *app) distancesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distances <square>",
		Short: "Print the knight distance from a square to every other square",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sq, err := board.ParseSquare(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("distance grid", zap.Stringer("square", sq))
			return writeDistances(cmd.OutOrStdout(), sq)
		},
	}
}

// writeDistances prints an 8x8 grid with rank 8 on top.
func writeDistances(w io.Writer, from board.Square) error {
	table := board.DistanceTable()
	row := table[from.Index()]

	var b strings.Builder
	for r := board.Size - 1; r >= 0; r-- {
		fmt.Fprintf(&b, "%d", r+1)
		for c := 0; c < board.Size; c++ {
			sq := board.Square{Row: r, Col: c}
			cell := fmt.Sprintf("%3d", row[sq.Index()])
			if sq == from {
				cell = styles.Origin.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
	b.WriteByte(' ')
	for c := 0; c < board.Size; c++ {
		fmt.Fprintf(&b, "  %c", 'a'+c)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
