package maze

import (
	"math/rand"
	"time"
)

// carveOffsets are the four two-cell jumps the carver explores from the top
// of its stack. Jumping two cells keeps a wall between corridors until the
// midpoint is deliberately carved.
var carveOffsets = [4][2]int{
	{0, -2}, // North
	{0, 2},  // South
	{2, 0},  // East
	{-2, 0}, // West
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed fixes the generator's randomness stream. Equal seeds and equal
// dimensions produce identical mazes.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the randomness source directly.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// Generator carves perfect mazes with randomized depth-first backtracking.
// It owns its randomness source; nothing reads the global one.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded from the wall clock, unless an
// option overrides the randomness source.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a maze with the requested dimensions. Dimensions below one
// are raised to one, and even dimensions are raised to the next odd number so
// the outer ring of cells stays solid wall.
func (g *Generator) Generate(width, height int) *GridMaze {
	width = normalizeDimension(width)
	height = normalizeDimension(height)

	grid := make([][]CellState, height)
	for y := range grid {
		grid[y] = make([]CellState, width)
	}
	m := &GridMaze{width: width, height: height, grid: grid}

	start := Cell{X: 1, Y: 1}
	if !m.InBounds(start) {
		// Degenerate single-row or single-column maze. Nothing to carve.
		return m
	}
	grid[start.Y][start.X] = Passage

	offsets := carveOffsets
	stack := []Cell{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		g.rng.Shuffle(len(offsets), func(i, j int) {
			offsets[i], offsets[j] = offsets[j], offsets[i]
		})

		carved := false
		for _, offset := range offsets {
			next := current.Step(offset[0], offset[1])
			if next.X < 1 || next.X > width-2 || next.Y < 1 || next.Y > height-2 {
				continue
			}
			if grid[next.Y][next.X] != Wall {
				continue
			}

			between := current.Step(offset[0]/2, offset[1]/2)
			grid[between.Y][between.X] = Passage
			grid[next.Y][next.X] = Passage
			stack = append(stack, next)
			carved = true
			break
		}

		if !carved {
			stack = stack[:len(stack)-1]
		}
	}

	return m
}

// normalizeDimension forces a requested dimension to a usable odd value.
func normalizeDimension(d int) int {
	if d < 1 {
		d = 1
	}
	if d%2 == 0 {
		d++
	}
	return d
}
