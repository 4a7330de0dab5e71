package render_test

import (
	"os"

	"github.com/katalvlaran/knightpaths/board"
	"github.com/katalvlaran/knightpaths/knight"
	"github.com/katalvlaran/knightpaths/render"
)

// ExampleWriteText lists the shortest routes between two squares.
func ExampleWriteText() {
	ps, _ := knight.Enumerate(board.MustParseSquare("a1"), board.MustParseSquare("b1"))
	_ = render.WriteText(os.Stdout, ps)
	// Output:
	// 2 shortest path(s) from a1 to b1, 3 move(s) each
	// Path 1: a1 → c2 → a3 → b1
	// Path 2: a1 → b3 → d2 → b1
}
