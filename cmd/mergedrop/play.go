package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mergedrop/internal/core"
	"github.com/vovakirdan/mergedrop/internal/games/mergedrop"
	"github.com/vovakirdan/mergedrop/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, H/L, A/D  - Move the falling tile
  Down, J, S            - Move down one row
  Space                 - Drop to the lowest free cell
  P/Esc                 - Pause / resume
  R                     - Restart
  Q/Ctrl+C              - Quit

Logs are discarded while playing unless --log-file is set.

Examples:
  mergedrop play
  mergedrop play --seed 42
  mergedrop play --config ./mergedrop.yaml --log-file mergedrop.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea, so logs only go to --log-file.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: gameCfg.TickInterval(),
		Seed:         resolveSeed(),
	}

	logger.Info("starting game",
		"seed", cfg.Seed,
		"rows", gameCfg.Board.Rows,
		"cols", gameCfg.Board.Cols,
		"tick", cfg.TickInterval)

	engine := mergedrop.NewEngine(gameCfg, mergedrop.NewSource(cfg.Seed))
	driver := mergedrop.NewDriver(engine, cfg.TickInterval, logger)

	if err := tui.Run(driver, cfg, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	final := driver.State()
	logger.Info("session ended", "score", final.Score, "highest", final.HighestTile, "status", final.Status)
	return nil
}
