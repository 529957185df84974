/*
Package maze provides tools for generating and solving rectangular grid mazes.

It defines the GridMaze structure, a grid of Wall and Passage cells carved by
a randomized depth-first Generator. Generated mazes are perfect: every pair of
passage cells is connected by exactly one route.

The package also includes a breadth-first PathSolver for shortest routes
between passage cells, a Validate check for the perfectness invariant, and
ASCII visualization of the grid.
*/
package maze

import "strings"

// Grid is the read surface of a maze. Consumers that only inspect cells,
// such as the solver and the validator, depend on this instead of the
// concrete GridMaze.
type Grid interface {
	Width() int
	Height() int
	InBounds(c Cell) bool
	IsPassage(c Cell) bool
}

// GridMaze is a rectangular maze of Wall and Passage cells. Instances are
// built by a Generator and never mutated afterwards; a new layout means a
// new GridMaze.
type GridMaze struct {
	width  int           // Number of columns, always odd.
	height int           // Number of rows, always odd.
	grid   [][]CellState // Row-major cell states, grid[y][x].
}

var _ Grid = &GridMaze{}

// Width returns the number of columns.
func (m *GridMaze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *GridMaze) Height() int {
	return m.height
}

// InBounds reports whether c lies inside the grid.
func (m *GridMaze) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// IsPassage reports whether c is a walkable cell. Out-of-bounds cells are
// never walkable.
func (m *GridMaze) IsPassage(c Cell) bool {
	return m.InBounds(c) && m.grid[c.Y][c.X] == Passage
}

// PassageCount returns the number of walkable cells.
func (m *GridMaze) PassageCount() int {
	count := 0
	for _, row := range m.grid {
		for _, state := range row {
			if state == Passage {
				count++
			}
		}
	}
	return count
}

// String provides a textual representation of the maze, one rune per cell.
func (m *GridMaze) String() string {
	var output strings.Builder
	for _, row := range m.grid {
		for _, state := range row {
			if state == Passage {
				output.WriteRune(' ')
			} else {
				output.WriteRune('█')
			}
		}
		output.WriteByte('\n')
	}
	return output.String()
}
