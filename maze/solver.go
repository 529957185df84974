package maze

import (
	"errors"
	"fmt"
)

// Solver-related errors.
var (
	ErrCellOutOfBounds = errors.New("cell outside maze bounds")
	ErrGoalNotFound    = errors.New("goal missing from predecessor map")
)

// solveOffsets is the fixed neighbor visit order: north, south, east, west.
// A fixed order keeps shortest routes repeatable for a given maze.
var solveOffsets = [4][2]int{
	{0, -1}, // North
	{0, 1},  // South
	{1, 0},  // East
	{-1, 0}, // West
}

// PredecessorMap records, for every cell discovered by a search, the cell it
// was first reached from. The search origin maps to itself.
type PredecessorMap map[Cell]Cell

// Path is an ordered walk between two cells, inclusive of both ends.
type Path []Cell

// PathSolver finds shortest routes between passage cells with breadth-first
// search.
type PathSolver struct{}

// NewPathSolver returns a ready to use solver.
func NewPathSolver() *PathSolver {
	return &PathSolver{}
}

// Solve searches g from start and returns the predecessor map of every cell
// discovered before and including goal. The map is empty when goal is
// unreachable from start. Start and goal must both lie inside the grid;
// out-of-bounds cells fail with ErrCellOutOfBounds.
func (s *PathSolver) Solve(g Grid, start, goal Cell) (PredecessorMap, error) {
	if !g.InBounds(start) {
		return nil, fmt.Errorf("start %s: %w", start, ErrCellOutOfBounds)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("goal %s: %w", goal, ErrCellOutOfBounds)
	}

	preds := PredecessorMap{start: start}
	queue := []Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			break
		}

		for _, offset := range solveOffsets {
			next := current.Step(offset[0], offset[1])
			if !g.IsPassage(next) {
				continue
			}
			if _, discovered := preds[next]; discovered {
				continue
			}
			preds[next] = current
			queue = append(queue, next)
		}
	}

	if _, discovered := preds[goal]; !discovered {
		return PredecessorMap{}, nil
	}
	return preds, nil
}

// Reconstruct walks predecessor links back from goal and returns the route
// in start-to-goal order. A search whose start equals its goal yields a
// single-cell path. The goal must be a key of preds; reconstructing toward
// a cell the search never discovered is a caller bug, not a no-route
// outcome, and fails with ErrGoalNotFound.
func (s *PathSolver) Reconstruct(preds PredecessorMap, goal Cell) (Path, error) {
	if _, discovered := preds[goal]; !discovered {
		return nil, fmt.Errorf("%s: %w", goal, ErrGoalNotFound)
	}

	var path Path
	current := goal
	for {
		path = append(path, current)
		parent, ok := preds[current]
		if !ok {
			return nil, fmt.Errorf("predecessor chain broken at %s", current)
		}
		if parent == current {
			break
		}
		current = parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
