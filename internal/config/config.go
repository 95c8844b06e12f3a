// Package config provides YAML-based game configuration loading for mergedrop.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MergeDropConfig contains all tunable parameters of the engine and its clock.
type MergeDropConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Timing TimingConfig `yaml:"timing"`
}

// Board dimension limits accepted by Validate.
const (
	MinBoardSize = 2
	MaxBoardSize = 64
)

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SpawnConfig defines how new pieces are generated.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance a new piece is 4 instead of 2
}

// TimingConfig defines the gravity clock.
type TimingConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// TickInterval returns the configured gravity interval as a duration.
func (c MergeDropConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMS) * time.Millisecond
}

// Validate checks that the config describes a playable game.
func (c MergeDropConfig) Validate() error {
	var errs []error
	if c.Board.Rows < MinBoardSize || c.Board.Rows > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.rows must be in [%d, %d], got %d", MinBoardSize, MaxBoardSize, c.Board.Rows))
	}
	if c.Board.Cols < MinBoardSize || c.Board.Cols > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.cols must be in [%d, %d], got %d", MinBoardSize, MaxBoardSize, c.Board.Cols))
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		errs = append(errs, fmt.Errorf("spawn.four_probability must be in [0, 1], got %g", c.Spawn.FourProbability))
	}
	if c.Timing.TickIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_interval_ms must be positive, got %d", c.Timing.TickIntervalMS))
	}
	return errors.Join(errs...)
}
