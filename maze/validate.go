package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Validation errors.
var (
	ErrDisconnected = errors.New("maze has unreachable passage cells")
	ErrCyclic       = errors.New("maze passage graph contains a cycle")
)

// Validate checks the perfect-maze invariant: every passage cell reachable
// from every other through exactly one route. Grids with no passage cells
// at all are vacuously valid.
func Validate(g Grid) error {
	var (
		origin    Cell
		hasOrigin bool
		passages  int
		edges     int
	)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := Cell{X: x, Y: y}
			if !g.IsPassage(c) {
				continue
			}
			passages++
			if !hasOrigin {
				origin = c
				hasOrigin = true
			}
			// Count undirected edges once by looking only east and south.
			if g.IsPassage(c.Step(1, 0)) {
				edges++
			}
			if g.IsPassage(c.Step(0, 1)) {
				edges++
			}
		}
	}
	if passages == 0 {
		return nil
	}

	reached := mapset.New[Cell]()
	reached.Put(origin)
	queue := []Cell{origin}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, offset := range solveOffsets {
			next := current.Step(offset[0], offset[1])
			if !g.IsPassage(next) || reached.Has(next) {
				continue
			}
			reached.Put(next)
			queue = append(queue, next)
		}
	}

	if reached.Size() != passages {
		return fmt.Errorf("%w: %d of %d", ErrDisconnected, passages-reached.Size(), passages)
	}
	if edges != passages-1 {
		return fmt.Errorf("%w: %d edges across %d cells", ErrCyclic, edges, passages)
	}
	return nil
}
