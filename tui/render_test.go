package tui

import (
	"strings"
	"testing"

	"github.com/Mtar786/maze-runner/game"
	"github.com/Mtar786/maze-runner/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMaze serves rows of '#' (wall) and ' ' (passage) as a game.Maze.
type stubMaze struct {
	rows []string
}

func (f *stubMaze) Width() int  { return len(f.rows[0]) }
func (f *stubMaze) Height() int { return len(f.rows) }

func (f *stubMaze) InBounds(c maze.Cell) bool {
	return c.X >= 0 && c.X < f.Width() && c.Y >= 0 && c.Y < f.Height()
}

func (f *stubMaze) IsPassage(c maze.Cell) bool {
	return f.InBounds(c) && f.rows[c.Y][c.X] == ' '
}

func (f *stubMaze) String() string {
	return strings.Join(f.rows, "\n") + "\n"
}

// newCorridorSession builds a 5x3 session whose only route is two steps right.
func newCorridorSession(t *testing.T) *game.Session {
	t.Helper()
	s, err := game.NewSession(game.Config{
		Width:  5,
		Height: 3,
		Factory: func(width, height int) game.Maze {
			return &stubMaze{rows: []string{
				"#####",
				"#   #",
				"#####",
			}}
		},
	})
	require.NoError(t, err)
	return s
}

// winSession walks the corridor session onto its goal.
func winSession(t *testing.T) *game.Session {
	t.Helper()
	s := newCorridorSession(t)
	require.True(t, s.AttemptMove(game.Right))
	require.True(t, s.AttemptMove(game.Right))
	require.Equal(t, game.Won, s.Status())
	return s
}

func TestRenderSession(t *testing.T) {
	t.Run("draws the player, the goal, and the key help", func(t *testing.T) {
		frame := renderSession(newCorridorSession(t), 80)

		assert.Equal(t, 1, strings.Count(frame, glyphPlayer))
		assert.Equal(t, 1, strings.Count(frame, glyphGoal))
		assert.Equal(t, 0, strings.Count(frame, glyphSolution))
		for _, line := range instructions {
			assert.Contains(t, frame, line+"\r\n")
		}
	})

	t.Run("draws the route only while the solution is shown", func(t *testing.T) {
		s := newCorridorSession(t)
		s.ToggleSolution()
		frame := renderSession(s, 80)

		// Player and goal cover the route ends, leaving a single dot between.
		assert.Equal(t, 1, strings.Count(frame, glyphSolution))
		assert.Equal(t, 1, strings.Count(frame, glyphPlayer))
		assert.Equal(t, 1, strings.Count(frame, glyphGoal))

		s.ToggleSolution()
		assert.Equal(t, 0, strings.Count(renderSession(s, 80), glyphSolution))
	})

	t.Run("frames use carriage returns for raw mode", func(t *testing.T) {
		frame := renderSession(newCorridorSession(t), 80)
		assert.NotContains(t, strings.ReplaceAll(frame, "\r\n", ""), "\n")
	})

	t.Run("centers the congratulation after a win", func(t *testing.T) {
		frame := renderSession(winSession(t), 80)

		assert.NotContains(t, frame, glyphWall)
		assert.NotContains(t, frame, glyphPlayer)
		assert.Contains(t, frame, strings.Repeat(" ", 18)+ansiBold+ansiGreen+winMessage[0])
		assert.Contains(t, frame, strings.Repeat(" ", 20)+winMessage[1])
	})

	t.Run("skips centering on narrow terminals", func(t *testing.T) {
		frame := renderSession(winSession(t), 10)

		assert.Contains(t, frame, "\r\n"+ansiBold+ansiGreen+winMessage[0])
		assert.Contains(t, frame, "\r\n"+winMessage[1]+"\r\n")
	})
}
