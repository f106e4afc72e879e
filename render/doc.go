// Package render draws a text overlay of a grid with a path traced across
// it — the same ASCII visualization the CLI's --show-path flag produces,
// without the matplotlib-based plotting the original tool also offered.
package render
