package config

import (
	_ "embed"
)

//go:embed defaults/mergedrop.yaml
var defaultMergeDropYAML []byte

// DefaultMergeDropConfig returns the default configuration: an 8x8 board,
// 20% fours and a one second tick.
func DefaultMergeDropConfig() MergeDropConfig {
	return MergeDropConfig{
		Board: BoardConfig{
			Rows: 8,
			Cols: 8,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.2,
		},
		Timing: TimingConfig{
			TickIntervalMS: 1000,
		},
	}
}
