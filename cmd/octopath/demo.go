package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/jps"
	"github.com/lathkin/octopath/octile"
	"github.com/lathkin/octopath/render"
)

var demoRows = []string{
	"..........",
	".####.....",
	"......#...",
	"...##.....",
	"...##.....",
	"...##.....",
	"...##.....",
	"...##.....",
	"...##.....",
	"..........",
}

// runDemo runs JPS on a small built-in grid and prints the result, the way
// a first-time user can try the tool with no flags or input files.
func runDemo(log *zap.Logger) error {
	g, err := grid.FromASCII(demoRows)
	if err != nil {
		return fmt.Errorf("building demo grid: %w", err)
	}

	start, goal := octile.Cell{X: 0, Y: 0}, octile.Cell{X: 9, Y: 9}
	result, err := jps.Search(g, start, goal)
	if err != nil {
		return fmt.Errorf("running demo search: %w", err)
	}

	fmt.Println("Demo grid 10x10")
	fmt.Printf("Path cost: %.3f, expanded nodes: %d\n", result.Cost, result.Expanded)
	if len(result.Path) == 0 {
		fmt.Println("No path found.")
		log.Info("demo found no path")

		return nil
	}

	fmt.Println(render.Overlay(g, result.Path, start, goal))
	log.Info("demo completed", zap.Float64("cost", result.Cost), zap.Int("expanded", result.Expanded))

	return nil
}
