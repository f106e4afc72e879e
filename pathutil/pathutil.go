package pathutil

import "github.com/lathkin/octopath/octile"

// ReconstructPath walks parent backward from goal to the start (the cell
// whose hasParent entry is false or absent) and returns the forward path,
// start first.
// hasParent distinguishes "no parent recorded" from "parent is the zero
// Cell", since Cell{0,0} is itself a valid grid coordinate.
func ReconstructPath(parent map[octile.Cell]octile.Cell, hasParent map[octile.Cell]bool, goal octile.Cell) []octile.Cell {
	var reversed []octile.Cell
	node := goal
	for {
		reversed = append(reversed, node)
		if !hasParent[node] {
			break
		}
		node = parent[node]
	}

	path := make([]octile.Cell, len(reversed))
	for i, c := range reversed {
		path[len(reversed)-1-i] = c
	}

	return path
}

// ExpandPath inserts every intermediate cell between consecutive entries of
// a jump-point path, turning it into a full step-by-step path where every
// consecutive pair is one octile move apart.
func ExpandPath(jumpPath []octile.Cell) []octile.Cell {
	if len(jumpPath) == 0 {
		return nil
	}

	expanded := []octile.Cell{jumpPath[0]}
	for i := 0; i+1 < len(jumpPath); i++ {
		a, b := jumpPath[i], jumpPath[i+1]
		dx, dy := octile.NormalizeDirection(b.X-a.X, b.Y-a.Y)
		cur := a
		for cur != b {
			cur = octile.Cell{X: cur.X + dx, Y: cur.Y + dy}
			expanded = append(expanded, cur)
		}
	}

	return expanded
}
