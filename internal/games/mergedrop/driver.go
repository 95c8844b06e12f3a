package mergedrop

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mergedrop/internal/core"
)

// Driver serializes transitions of a single game. Every command and tick
// takes the same lock, so a host may call it from any goroutine.
type Driver struct {
	mu       sync.Mutex
	engine   *Engine
	state    State
	interval time.Duration
	logger   *log.Logger

	// statusCh wakes Run when the status may have changed.
	statusCh chan struct{}
}

// NewDriver starts a new game on engine. interval is the gravity tick used by
// Run. A nil logger discards log output.
func NewDriver(engine *Engine, interval time.Duration, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		engine:   engine,
		state:    engine.NewState(),
		interval: interval,
		logger:   logger,
		statusCh: make(chan struct{}, 1),
	}
}

// Dispatch applies cmd and returns the result. Unrecognized commands are
// rejected without touching the state. The returned state owns its grid.
func (d *Driver) Dispatch(cmd core.Command) Result {
	if !cmd.Valid() {
		d.logger.Warn("rejected command", "command", int(cmd))
		return Result{State: d.State()}
	}

	d.mu.Lock()
	prev := d.state
	res := d.engine.Apply(prev, cmd)
	d.state = res.State
	res.State = res.State.detach()
	d.mu.Unlock()

	if res.Committed {
		d.logger.Debug("piece committed",
			"value", res.Landed.Value,
			"x", res.Landed.X,
			"y", res.Landed.Y,
			"gained", res.Gained,
			"score", res.State.Score)
	}

	if prev.Status != res.State.Status || cmd == core.CommandRestart {
		switch {
		case res.State.Status == StatusGameOver:
			d.logger.Info("game over", "score", res.State.Score, "highest", res.State.HighestTile)
		case cmd == core.CommandRestart:
			d.logger.Info("game restarted")
		default:
			d.logger.Debug("status changed", "from", prev.Status, "to", res.State.Status)
		}
		d.notify()
	}

	return res
}

// Tick applies one gravity step.
func (d *Driver) Tick() Result {
	return d.Dispatch(core.CommandTick)
}

// State returns a copy of the current state. Writes to its grid do not
// reach the session.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.detach()
}

// Snapshot returns a view of the current state.
func (d *Driver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.Snapshot()
}

// Run ticks the game every interval until ctx is done. The ticker only exists
// while the game is Playing: it is stopped on pause or game over and started
// again when play resumes. onTick, if set, receives the snapshot after each
// tick that changed the game.
func (d *Driver) Run(ctx context.Context, onTick func(Snapshot)) error {
	var (
		ticker *time.Ticker
		tickC  <-chan time.Time
	)

	stop := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tickC = nil
			d.logger.Debug("ticker stopped")
		}
	}
	defer stop()

	reconcile := func() {
		playing := d.State().Status == StatusPlaying
		switch {
		case playing && ticker == nil:
			ticker = time.NewTicker(d.interval)
			tickC = ticker.C
			d.logger.Debug("ticker started", "interval", d.interval)
		case !playing:
			stop()
		}
	}

	reconcile()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-d.statusCh:
			reconcile()

		case <-tickC:
			res := d.Tick()
			if res.Changed && onTick != nil {
				onTick(res.State.Snapshot())
			}
			reconcile()
		}
	}
}

// notify wakes Run without blocking.
func (d *Driver) notify() {
	select {
	case d.statusCh <- struct{}{}:
	default:
	}
}

