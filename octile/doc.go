// Package octile provides the geometry primitives shared by every search
// kernel in octopath: step costs, the octile distance heuristic, and the
// eight unit directions of grid movement.
//
// A cell is a pair of integer coordinates with the origin at the top-left
// and y growing downward. A move is "straight" when exactly one of dx, dy
// is zero, and "diagonal" when both are nonzero. Straight moves cost 1;
// diagonal moves cost √2.
//
// octile has no dependency on grid, astar, or jps — it sits at the bottom
// of the module's dependency graph so every other package can share one
// definition of "distance" and "direction".
package octile
