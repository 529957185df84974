package game

import "github.com/Mtar786/maze-runner/maze"

// Maze defines the methods a session needs from a generated maze.
type Maze interface {
	Width() int
	Height() int
	InBounds(c maze.Cell) bool
	IsPassage(c maze.Cell) bool
	String() string
}

// PathFinder defines the methods for searching a maze.
type PathFinder interface {
	Solve(g maze.Grid, start, goal maze.Cell) (maze.PredecessorMap, error)
	Reconstruct(preds maze.PredecessorMap, goal maze.Cell) (maze.Path, error)
}

// MazeFactory builds a fresh maze with the given dimensions.
type MazeFactory func(width, height int) Maze
