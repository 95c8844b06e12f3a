// Package tui provides the Bubble Tea host for mergedrop.
// It handles the terminal UI loop, key mapping and rendering; all game rules
// live in the engine behind a mergedrop.Driver.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mergedrop/internal/games/mergedrop"
)

// SnapshotMsg carries the game state after a clock tick.
type SnapshotMsg mergedrop.Snapshot

// waitForSnapshot returns a command that blocks until the driver publishes
// the next tick snapshot.
func waitForSnapshot(updates <-chan mergedrop.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return nil
		}
		return SnapshotMsg(snap)
	}
}

// publish hands snap to the UI, replacing an unread older snapshot.
// It must only be called from a single goroutine.
func publish(updates chan mergedrop.Snapshot, snap mergedrop.Snapshot) {
	select {
	case updates <- snap:
	default:
		select {
		case <-updates:
		default:
		}
		updates <- snap
	}
}
