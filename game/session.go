/*
Package game coordinates a single player's run through generated mazes.

It defines the Session aggregate that owns the current maze, the player and
goal cells, the solution path, and the Playing/Won lifecycle. Sessions depend
on narrow Maze and PathFinder interfaces so the maze engine and the search
can be swapped in tests.
*/
package game

import (
	"errors"
	"io"

	"github.com/Mtar786/maze-runner/maze"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session-related errors.
var (
	ErrNotBigEnoughDimension = errors.New("dimension is not big enough")
	ErrInvalidPlayerPosition = errors.New("player start cell is not a passage")
)

const (
	minDimension = 3 // Minimum maze dimension (width or height).

	startX = 1 // Player start column.
	startY = 1 // Player start row.
)

var _ PathFinder = &maze.PathSolver{}

// Status tracks the session lifecycle.
type Status uint8

const (
	// Playing means the session accepts moves and toggles.
	Playing Status = iota
	// Won means the player reached the goal. Only a new maze leaves this
	// state.
	Won
)

// String returns a human readable status name.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Config carries everything NewSession needs. Zero fields fall back to
// working defaults, except the dimensions.
type Config struct {
	Width         int           // Requested maze width.
	Height        int           // Requested maze height.
	Factory       MazeFactory   // Builds mazes. Defaults to a wall-clock seeded generator.
	Solver        PathFinder    // Shortest-route search. Defaults to the breadth-first solver.
	Logger        *logrus.Entry // Destination for session events. Defaults to discard.
	ValidateMazes bool          // Re-check the perfectness invariant after every generation.
}

// Session is a single player's run through a sequence of mazes. It keeps the
// shortest route from player to goal current after every accepted move, and
// transitions from Playing to Won when a move lands exactly on the goal.
// Sessions are not safe for concurrent use.
type Session struct {
	id           uuid.UUID     // Identity of the current round, fresh for every maze.
	width        int           // Requested width, reused for every new maze.
	height       int           // Requested height, reused for every new maze.
	factory      MazeFactory   // Source of fresh mazes.
	solver       PathFinder    // Shortest-route search.
	maze         Maze          // Current maze.
	player       maze.Cell     // Player position.
	goal         maze.Cell     // Goal position, always (width-2, height-2).
	status       Status        // Playing or Won.
	showSolution bool          // Whether the renderer should reveal the solution.
	solution     maze.Path     // Shortest route from player to goal, empty if none.
	moves        int           // Accepted moves in the current maze.
	validate     bool          // Run maze.Validate after every generation.
	baseLogger   *logrus.Entry // Injected logger, untagged.
	logger       *logrus.Entry // baseLogger tagged with the current round identity.
}

// NewSession builds a session with its first maze, the player at the start
// cell, and the solution path precomputed. Returns an error if the produced
// maze is too small to hold a player.
func NewSession(c Config) (*Session, error) {
	if c.Factory == nil {
		gen := maze.NewGenerator()
		c.Factory = func(width, height int) Maze {
			return gen.Generate(width, height)
		}
	}
	if c.Solver == nil {
		c.Solver = maze.NewPathSolver()
	}
	if c.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		c.Logger = logrus.NewEntry(discard)
	}

	s := &Session{
		width:      c.Width,
		height:     c.Height,
		factory:    c.Factory,
		solver:     c.Solver,
		validate:   c.ValidateMazes,
		baseLogger: c.Logger,
	}

	m := s.factory(s.width, s.height)
	if m.Width() < minDimension || m.Height() < minDimension {
		return nil, ErrNotBigEnoughDimension
	}
	if !m.IsPassage(maze.Cell{X: startX, Y: startY}) {
		return nil, ErrInvalidPlayerPosition
	}

	s.installMaze(m)
	return s, nil
}

// AttemptMove tries to step the player one cell in d. The move is rejected
// when the session is not Playing or when the target cell is not a walkable
// passage; rejected moves change nothing. Accepted moves refresh the
// solution path, and a move landing on the goal wins the session. Reports
// whether the move happened.
func (s *Session) AttemptMove(d Direction) bool {
	if s.status != Playing {
		return false
	}

	dx, dy := d.Delta()
	target := s.player.Step(dx, dy)
	if !s.maze.IsPassage(target) {
		return false
	}

	s.player = target
	s.moves++
	s.refreshSolution()

	if s.player == s.goal {
		s.status = Won
		s.logger.WithField("moves", s.moves).Info("player reached the goal")
	}
	return true
}

// ToggleSolution flips whether the renderer should reveal the solution. It
// never recomputes the path; the path is kept current by moves.
func (s *Session) ToggleSolution() {
	if s.status != Playing {
		return
	}
	s.showSolution = !s.showSolution
}

// NewMaze replaces the current maze with a fresh one of the same requested
// dimensions, puts the player back on the start cell, and hides the
// solution again. Usable from both Playing and Won.
func (s *Session) NewMaze() {
	s.installMaze(s.factory(s.width, s.height))
}

// installMaze resets all per-maze state around m. Every maze starts a new
// round with its own identity, so its log lines correlate.
func (s *Session) installMaze(m Maze) {
	s.id = uuid.New()
	s.logger = s.baseLogger.WithField("session", s.id)
	s.maze = m
	s.player = maze.Cell{X: startX, Y: startY}
	s.goal = maze.Cell{X: m.Width() - 2, Y: m.Height() - 2}
	s.status = Playing
	s.showSolution = false
	s.moves = 0
	s.refreshSolution()

	if s.validate {
		if err := maze.Validate(s.maze); err != nil {
			s.logger.WithError(err).Error("generated maze failed validation")
		}
	}
	s.logger.WithFields(logrus.Fields{
		"width":  m.Width(),
		"height": m.Height(),
	}).Info("maze ready")
}

// refreshSolution recomputes the shortest route from the player to the goal.
// An unreachable goal leaves the solution empty; that is a playable state,
// not an error.
func (s *Session) refreshSolution() {
	preds, err := s.solver.Solve(s.maze, s.player, s.goal)
	if err != nil {
		s.logger.WithError(err).Error("solving maze")
		s.solution = nil
		return
	}
	if len(preds) == 0 {
		s.solution = nil
		return
	}

	path, err := s.solver.Reconstruct(preds, s.goal)
	if err != nil {
		s.logger.WithError(err).Error("reconstructing solution path")
		s.solution = nil
		return
	}
	s.solution = path
}

// ID returns the identity of the current maze round.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Maze returns the current maze.
func (s *Session) Maze() Maze {
	return s.maze
}

// Player returns the player's cell.
func (s *Session) Player() maze.Cell {
	return s.player
}

// Goal returns the goal cell.
func (s *Session) Goal() maze.Cell {
	return s.goal
}

// Status returns Playing or Won.
func (s *Session) Status() Status {
	return s.status
}

// ShowingSolution reports whether the solution should be revealed.
func (s *Session) ShowingSolution() bool {
	return s.showSolution
}

// Solution returns the shortest route from the player to the goal, both
// inclusive. It is empty when the goal is unreachable.
func (s *Session) Solution() maze.Path {
	return s.solution
}

// Moves returns the number of accepted moves in the current maze.
func (s *Session) Moves() int {
	return s.moves
}
