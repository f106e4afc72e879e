// Package pathutil reconstructs paths from a search's parent map and
// expands a jump-point-only path (as produced by package jps) into the
// full sequence of intermediate cells a walker would actually take.
package pathutil
