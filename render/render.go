package render

import (
	"strings"

	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/octile"
)

// Overlay renders g's character grid with path traced as '*', and start and
// goal marked 'S' and 'G' (drawn last, so they always win over a '*' at the
// same cell). path may be empty, in which case only start and goal are
// marked.
func Overlay(g *grid.UnweightedGrid, path []octile.Cell, start, goal octile.Cell) string {
	rows := make([][]rune, g.Height)
	for y := 0; y < g.Height; y++ {
		rows[y] = append([]rune(nil), g.Chars[y]...)
	}

	for _, c := range path {
		rows[c.Y][c.X] = '*'
	}
	rows[start.Y][start.X] = 'S'
	rows[goal.Y][goal.X] = 'G'

	var b strings.Builder
	for y, row := range rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}

	return b.String()
}
