// Package config loads the demo driver's settings from the environment and
// an optional .env file. Variables already set in the environment win over
// the file.
//
//	MAZE_ROWS        grid height, default 21
//	MAZE_COLS        grid width, default 31
//	MAZE_SEED        generator seed; unset means wall-clock seeded
//	MAZE_MODE        "tree" or "open", default "tree"
//	MAZE_SOLVER      "frontier" or "wallfollower", default "frontier"
//	MAZE_FOLLOW_CAP  wall-follower iteration cap, 0 for the default
//	MAZE_LOG_LEVEL   logrus level name, default "info"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvRows      = "MAZE_ROWS"
	EnvCols      = "MAZE_COLS"
	EnvSeed      = "MAZE_SEED"
	EnvMode      = "MAZE_MODE"
	EnvSolver    = "MAZE_SOLVER"
	EnvFollowCap = "MAZE_FOLLOW_CAP"
	EnvLogLevel  = "MAZE_LOG_LEVEL"
)

// Solver names accepted in MAZE_SOLVER.
const (
	SolverFrontier     = "frontier"
	SolverWallFollower = "wallfollower"
)

var (
	// ErrEnvFile wraps a .env file that exists but cannot be parsed.
	ErrEnvFile = errors.New("config: cannot read env file")
	// ErrInvalidValue wraps a variable whose value does not parse.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Config holds the driver settings.
type Config struct {
	Rows      int          // grid height
	Cols      int          // grid width
	Seed      int64        // generator seed, meaningful when HasSeed
	HasSeed   bool         // MAZE_SEED was set
	Mode      string       // "tree" or "open"
	Solver    string       // SolverFrontier or SolverWallFollower
	FollowCap int          // wall-follower cap, 0 for default
	LogLevel  logrus.Level // driver log level
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Rows:     21,
		Cols:     31,
		Mode:     "tree",
		Solver:   SolverFrontier,
		LogLevel: logrus.InfoLevel,
	}
}

// Load reads files (".env" when none are given) and then the process
// environment. Missing files are not an error.
func Load(files ...string) (Config, error) {
	vals, err := godotenv.Read(files...)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %v", ErrEnvFile, err)
		}
		vals = map[string]string{}
	}

	return parse(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vals[key]
		return v, ok
	})
}

// parse builds a Config from lookup, starting from Default.
func parse(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	if cfg.Rows, err = intVar(lookup, EnvRows, cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = intVar(lookup, EnvCols, cfg.Cols); err != nil {
		return Config{}, err
	}
	if cfg.FollowCap, err = intVar(lookup, EnvFollowCap, cfg.FollowCap); err != nil {
		return Config{}, err
	}
	if cfg.FollowCap < 0 {
		return Config{}, fmt.Errorf("%w: %s must not be negative (%d)", ErrInvalidValue, EnvFollowCap, cfg.FollowCap)
	}

	if v, ok := lookup(EnvSeed); ok && strings.TrimSpace(v) != "" {
		if cfg.Seed, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, EnvSeed, v, err)
		}
		cfg.HasSeed = true
	}

	if v, ok := lookup(EnvMode); ok && v != "" {
		cfg.Mode = strings.ToLower(strings.TrimSpace(v))
	}
	if cfg.Mode != "tree" && cfg.Mode != "open" {
		return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvMode, cfg.Mode)
	}

	if v, ok := lookup(EnvSolver); ok && v != "" {
		cfg.Solver = strings.ToLower(strings.TrimSpace(v))
	}
	if cfg.Solver != SolverFrontier && cfg.Solver != SolverWallFollower {
		return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvSolver, cfg.Solver)
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, EnvLogLevel, err)
		}
	}

	return cfg, nil
}

func intVar(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, v, err)
	}
	return n, nil
}
