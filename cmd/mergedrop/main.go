// mergedrop is a falling-block 2048 puzzle for the terminal.
//
// Usage:
//
//	mergedrop play               - Play in the terminal
//	mergedrop replay <cmd>...    - Run a command script headless and print the result
//	mergedrop config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--config <path>     - Use a custom config YAML
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mergedrop/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mergedrop",
	Short: "2048 Tetris - drop tiles, merge them, don't fill the top row",
	Long: `mergedrop drops single tiles onto an 8x8 board. Equal neighbors merge
and double, merged tiles fall, and chains can cascade. The game ends when a
new tile cannot enter the board.

Available commands:
  play     - Play in the terminal
  replay   - Run a command script without a terminal UI
  config   - Show the effective configuration

Examples:
  mergedrop play
  mergedrop play --seed 42
  mergedrop replay --seed 42 left left drop drop
  mergedrop config --config ./mergedrop.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config from --config or the default search path.
func loadConfig() (config.MergeDropConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveSeed returns --seed, or a time-based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds a logger writing to --log-file, or to fallback when no
// file is set. The returned closer must be called when done.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	w := fallback
	var closer io.Closer = io.NopCloser(nil)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mergedrop",
		Level:           level,
	})
	return logger, closer, nil
}
