package core

import "time"

// RuntimeConfig contains configuration passed to the game host at start.
// The host uses it to size the screen and to seed deterministic play.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Gravity tick interval
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: time.Second,
		Seed:         0, // 0 means use current time in platform layer
	}
}
