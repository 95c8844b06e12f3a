package tui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mergedrop/internal/core"
	"github.com/vovakirdan/mergedrop/internal/games/mergedrop"
)

// Model is the Bubble Tea model for playing mergedrop.
type Model struct {
	driver   *mergedrop.Driver
	updates  <-chan mergedrop.Snapshot
	snapshot mergedrop.Snapshot
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model showing the driver's game. updates delivers
// snapshots produced by clock ticks.
func NewModel(driver *mergedrop.Driver, updates <-chan mergedrop.Snapshot, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		driver:   driver,
		updates:  updates,
		snapshot: driver.Snapshot(),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH-1), // last line for help
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
	}
}

// Init starts listening for tick snapshots.
func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case SnapshotMsg:
		// A tick may be queued behind a key press that already moved on;
		// the driver holds the latest state.
		m.snapshot = m.driver.Snapshot()
		return m, waitForSnapshot(m.updates)
	}

	return m, nil
}

// handleKey maps a key to a command and dispatches it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	cmd, ok := m.keys.Command(msg)
	if !ok {
		return m, nil
	}

	res := m.driver.Dispatch(cmd)
	if res.Changed {
		m.logger.Debug("command applied", "command", cmd, "status", res.State.Status)
	}
	m.snapshot = res.State.Snapshot()
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	mergedrop.Render(m.screen, m.snapshot)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Snapshot returns the snapshot the model currently displays.
func (m Model) Snapshot() mergedrop.Snapshot {
	return m.snapshot
}

// Run starts the driver's clock and the Bubble Tea program, and blocks until
// the user quits. The clock stops when Run returns.
func Run(driver *mergedrop.Driver, cfg core.RuntimeConfig, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan mergedrop.Snapshot, 1)
	go func() {
		err := driver.Run(ctx, func(snap mergedrop.Snapshot) {
			publish(updates, snap)
		})
		if err != nil && ctx.Err() == nil {
			logger.Error("clock stopped", "error", err)
		}
	}()

	p := tea.NewProgram(
		NewModel(driver, updates, cfg, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
