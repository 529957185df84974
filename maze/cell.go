package maze

import "fmt"

// CellState classifies a single grid cell. The zero value is Wall, so a
// freshly allocated grid is solid until the generator carves it.
type CellState uint8

const (
	// Wall is a solid cell the player can never occupy.
	Wall CellState = iota
	// Passage is a walkable cell.
	Passage
)

// String returns a human readable state name.
func (s CellState) String() string {
	switch s {
	case Wall:
		return "wall"
	case Passage:
		return "passage"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Cell is a grid coordinate. Cells are plain values, so they compare with ==
// and can key maps directly.
type Cell struct {
	// X is the column, zero indexed, growing rightward.
	X int
	// Y is the row, zero indexed, growing downward.
	Y int
}

// Step returns the cell dx columns and dy rows away from c.
func (c Cell) Step(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
