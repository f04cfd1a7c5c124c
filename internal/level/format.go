package level

import (
	"fmt"
	"strings"
)

const separator = "===="

// Format renders a definition back into the level document format.
// Parse(Format(d)) yields a definition equal to d.
func Format(d *Definition) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %d %d\n%s\n", d.Name, d.Width(), d.Height(), separator)

	for _, t := range d.Tiles.tiles {
		flag := "o"
		if t.Solid {
			flag = "s"
		}
		fmt.Fprintf(&sb, "%s %s %d %d %d %d\n", t.Symbol, flag, t.Region.X, t.Region.Y, t.Region.W, t.Region.H)
	}
	sb.WriteString(separator + "\n")

	for _, row := range d.Grid.Rows() {
		syms := make([]string, len(row))
		for x, id := range row {
			syms[x] = d.Tiles.tiles[id].Symbol
		}
		sb.WriteString(strings.Join(syms, " "))
		sb.WriteByte('\n')
	}
	sb.WriteString(separator + "\n")

	for _, p := range d.Placements {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
