package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("accepts a generated maze", func(t *testing.T) {
		m := NewGenerator(WithSeed(5)).Generate(13, 13)
		assert.NoError(t, Validate(m))
	})

	t.Run("accepts an all wall grid", func(t *testing.T) {
		m := buildMaze([]string{
			"###",
			"###",
			"###",
		})
		assert.NoError(t, Validate(m))
	})

	t.Run("accepts a single passage cell", func(t *testing.T) {
		m := buildMaze([]string{
			"###",
			"# #",
			"###",
		})
		assert.NoError(t, Validate(m))
	})

	t.Run("flags unreachable passage cells", func(t *testing.T) {
		m := buildMaze([]string{
			"#####",
			"# # #",
			"#####",
		})
		assert.ErrorIs(t, Validate(m), ErrDisconnected)
	})

	t.Run("flags cycles", func(t *testing.T) {
		m := buildMaze([]string{
			"#####",
			"#   #",
			"# # #",
			"#   #",
			"#####",
		})
		assert.ErrorIs(t, Validate(m), ErrCyclic)
	})
}
