// Package grid implements the two grid data models octopath's search
// kernels run over: UnweightedGrid, a rectangular array of walkable cells,
// and WeightedGrid, the same shape with a per-cell traversal weight and a
// transition-cost kernel for non-uniform terrain.
//
// Both models share the same "valid step" rule: a diagonal move is legal
// only if the destination and both flanking orthogonal cells are walkable,
// which forbids squeezing diagonally between two obstacles. This rule is
// shared by every search kernel in the module; changing it in one grid
// type without changing it in the other breaks the cost-equivalence
// contract between A* and JPS (see package astar and package jps).
//
// grid also loads the external formats the module's collaborators produce:
// ASCII test grids, MovingAI .map octile files, MovingAI .scen scenario
// files, and an optional terrain-weights JSON file for WeightedGrid.
package grid
