package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/knightpaths/knight"
)

// WriteDOT writes ps as a Graphviz digraph. Each path becomes a
// "cluster_<i>" subgraph labelled "Path <i+1>" holding its move edges;
// the start square is coloured green and the end square red.
func WriteDOT(w io.Writer, ps knight.PathSet) error {
	if err := checkSet(ps); err != nil {
		return err
	}
	_, err := io.WriteString(w, generateDOT(ps.Sorted()))
	return err
}

func generateDOT(ps knight.PathSet) string {
	var sb strings.Builder

	sb.WriteString("// Knight's Shortest Paths\n")
	sb.WriteString("digraph {\n")
	for i, p := range ps.Paths {
		sb.WriteString(fmt.Sprintf("\tsubgraph cluster_%d {\n", i))
		sb.WriteString(fmt.Sprintf("\t\tlabel=%q\n", fmt.Sprintf("Path %d", i+1)))
		for j := 0; j+1 < len(p); j++ {
			sb.WriteString(fmt.Sprintf("\t\t%s -> %s\n", p[j], p[j+1]))
		}
		sb.WriteString(fmt.Sprintf("\t\t%s [color=green]\n", p[0]))
		sb.WriteString(fmt.Sprintf("\t\t%s [color=red]\n", p[len(p)-1]))
		sb.WriteString("\t}\n")
	}
	sb.WriteString("}\n")

	return sb.String()
}
