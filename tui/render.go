package tui

import (
	"strings"

	"github.com/Mtar786/maze-runner/game"
	"github.com/Mtar786/maze-runner/maze"
)

// Glyphs drawn for each kind of cell.
const (
	glyphWall     = "█"
	glyphPassage  = " "
	glyphSolution = "."
	glyphPlayer   = "@"
	glyphGoal     = "X"
)

// instructions are drawn one line below the maze.
var instructions = [4]string{
	"Use arrow keys to move",
	"Press 's' to toggle solution",
	"Press 'n' to generate new maze",
	"Press 'q' to quit",
}

// winMessage replaces the maze once the goal is reached.
var winMessage = [2]string{
	"Congratulations! You've completed the maze.",
	"Press 'n' for a new maze or 'q' to quit.",
}

// renderSession builds the full frame for the current session state.
func renderSession(s *game.Session, termWidth int) string {
	if s.Status() == game.Won {
		return renderWin(s, termWidth)
	}
	return renderMaze(s)
}

// renderMaze draws the maze grid with the player, the goal, and optionally
// the solution route, followed by the key help. The player and the goal are
// never overdrawn by the route.
func renderMaze(s *game.Session) string {
	var sb strings.Builder
	sb.WriteString(ansiClear)

	onRoute := make(map[maze.Cell]bool, len(s.Solution()))
	if s.ShowingSolution() {
		for _, c := range s.Solution() {
			onRoute[c] = true
		}
	}

	m := s.Maze()
	player, goal := s.Player(), s.Goal()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := maze.Cell{X: x, Y: y}
			switch {
			case c == player:
				sb.WriteString(ansiBold + ansiYellow + glyphPlayer + ansiReset)
			case c == goal:
				sb.WriteString(ansiBold + ansiGreen + glyphGoal + ansiReset)
			case onRoute[c]:
				sb.WriteString(ansiCyan + glyphSolution + ansiReset)
			case m.IsPassage(c):
				sb.WriteString(glyphPassage)
			default:
				sb.WriteString(glyphWall)
			}
		}
		sb.WriteString("\r\n")
	}

	sb.WriteString("\r\n")
	for _, line := range instructions {
		sb.WriteString(line)
		sb.WriteString("\r\n")
	}
	return sb.String()
}

// renderWin centers the congratulation text on the rows where the maze was.
func renderWin(s *game.Session, termWidth int) string {
	var sb strings.Builder
	sb.WriteString(ansiClear)

	for i := 0; i < s.Maze().Height()/2; i++ {
		sb.WriteString("\r\n")
	}
	for i, line := range winMessage {
		pad := (termWidth - len(line)) / 2
		if pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		if i == 0 {
			sb.WriteString(ansiBold + ansiGreen + line + ansiReset)
		} else {
			sb.WriteString(line)
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
