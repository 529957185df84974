package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Mtar786/maze-runner/config"
	"github.com/Mtar786/maze-runner/game"
	"github.com/Mtar786/maze-runner/maze"
	"github.com/Mtar786/maze-runner/tui"
	"github.com/sirupsen/logrus"
)

// Global variables for dependencies
var (
	appLogger *logrus.Logger
	logFile   *os.File
	generator *maze.Generator
	session   *game.Session
	screen    *tui.Screen
)

// initLogger builds the application logger. The terminal belongs to the
// game, so log lines go to LOG_FILE when set and are discarded otherwise.
func initLogger() {
	appLogger = logrus.New()
	appLogger.SetOutput(io.Discard)

	level, err := logrus.ParseLevel(config.Envs.LogLevel)
	if err != nil {
		fatalf("Parsing log level: %v", err)
	}
	appLogger.SetLevel(level)

	if config.Envs.LogFile == "" {
		return
	}
	logFile, err = os.OpenFile(config.Envs.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fatalf("Opening log file: %v", err)
	}
	appLogger.SetOutput(logFile)
	appLogger.WithField("component", "APP").Info("Logger initialized")
}

func initGenerator() {
	var opts []maze.Option
	if config.Envs.Seed != 0 {
		opts = append(opts, maze.WithSeed(config.Envs.Seed))
	}
	generator = maze.NewGenerator(opts...)
	appLogger.WithField("component", "APP").Info("Maze generator initialized")
}

func initSession() {
	var err error
	session, err = game.NewSession(game.Config{
		Width:  config.Envs.MazeWidth,
		Height: config.Envs.MazeHeight,
		Factory: func(width, height int) game.Maze {
			return generator.Generate(width, height)
		},
		Solver:        maze.NewPathSolver(),
		Logger:        appLogger.WithField("component", "GAME"),
		ValidateMazes: config.Envs.ValidateMazes,
	})
	if err != nil {
		fatalf("Creating game session: %v", err)
	}
	appLogger.WithField("component", "APP").Info("Game session initialized")
}

func initScreen() {
	var err error
	screen, err = tui.NewScreen(appLogger.WithField("component", "TUI"))
	if err != nil {
		fatalf("Opening terminal: %v", err)
	}
}

// fatalf reports a startup failure on stderr and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s[ERROR]%s "+format+"\n",
		append([]any{config.LogErrorColor, config.LogColorReset}, args...)...)
	os.Exit(1)
}

func main() {
	initLogger()
	defer func() {
		if logFile != nil {
			_ = logFile.Close()
		}
	}()

	initGenerator()
	initSession()

	// The screen takes the terminal over last, after everything that could
	// fail with a visible message has run.
	initScreen()
	defer screen.Close()

	if err := screen.Run(session); err != nil {
		screen.Close()
		fatalf("Running game: %v", err)
	}
}
