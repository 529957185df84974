package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	t.Run("deltas move exactly one cell", func(t *testing.T) {
		cases := []struct {
			dir    Direction
			dx, dy int
		}{
			{Up, 0, -1},
			{Down, 0, 1},
			{Left, -1, 0},
			{Right, 1, 0},
		}

		for _, c := range cases {
			dx, dy := c.dir.Delta()
			assert.Equal(t, c.dx, dx, c.dir)
			assert.Equal(t, c.dy, dy, c.dir)
		}
	})

	t.Run("names are stable", func(t *testing.T) {
		assert.Equal(t, "up", Up.String())
		assert.Equal(t, "down", Down.String())
		assert.Equal(t, "left", Left.String())
		assert.Equal(t, "right", Right.String())
	})
}
