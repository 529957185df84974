package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeWidth     int    // Requested maze width in cells
	MazeHeight    int    // Requested maze height in cells
	Seed          int64  // Maze generation seed; 0 seeds from the clock
	ValidateMazes bool   // Re-validate every generated maze
	LogFile       string // Path of the log file; empty discards log output
	LogLevel      string // Minimum level for emitted log lines
}

// Default maze dimensions.
const (
	defaultWidth  = 21
	defaultHeight = 21
)

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("%s[APP] [INFO]%s .env file not found or could not be loaded: %v", LogInfoColor, LogColorReset, err)
	}

	// Populate the Config struct, falling back to defaults so the game runs
	// with no environment at all
	return Config{
		MazeWidth:     getEnvAsIntWithDefault("MAZE_WIDTH", defaultWidth),
		MazeHeight:    getEnvAsIntWithDefault("MAZE_HEIGHT", defaultHeight),
		Seed:          getEnvAsInt64WithDefault("MAZE_SEED", 0),
		ValidateMazes: getEnvAsBoolWithDefault("MAZE_VALIDATE", false),
		LogFile:       getEnvWithDefault("LOG_FILE", ""),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "info"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// returning a default value if not set and logging a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("%s[APP] [FATAL]%s Environment variable %s must be an integer: %v", LogErrorColor, LogColorReset, key, err)
	}
	return value
}

// getEnvAsInt64WithDefault retrieves the value of an environment variable as a 64-bit integer,
// returning a default value if not set and logging a fatal error if it cannot be parsed.
func getEnvAsInt64WithDefault(key string, defaultValue int64) int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("%s[APP] [FATAL]%s Environment variable %s must be an integer: %v", LogErrorColor, LogColorReset, key, err)
	}
	return value
}

// getEnvAsBoolWithDefault retrieves the value of an environment variable as a boolean,
// returning a default value if not set and logging a fatal error if it cannot be parsed.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("%s[APP] [FATAL]%s Environment variable %s must be a boolean: %v", LogErrorColor, LogColorReset, key, err)
	}
	return value
}
