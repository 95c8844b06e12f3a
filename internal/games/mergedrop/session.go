package mergedrop

import (
	"github.com/vovakirdan/mergedrop/internal/config"
	"github.com/vovakirdan/mergedrop/internal/core"
)

// Status is the state of a session's state machine.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusGameOver
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is one immutable step of a game. Apply never modifies the grid of the
// state it receives; every transition that changes tiles works on a clone.
type State struct {
	Grid        *Grid
	Current     Piece
	Next        Piece
	Score       int
	HighestTile int
	Status      Status
}

// detach returns s with its own copy of the grid.
func (s State) detach() State {
	s.Grid = s.Grid.Clone()
	return s
}

// Result is returned by Apply.
type Result struct {
	State State

	// Changed is false when the command was a no-op: a blocked move, a
	// command rejected while paused or after game over.
	Changed bool

	// Committed is true when the current piece was fixed into the grid.
	Committed bool

	// Gained is the score added by the resolution that followed a commit.
	Gained int

	// Landed is the piece where it was committed. Zero unless Committed.
	Landed Piece
}

// Engine owns the transition rules and the piece generator.
type Engine struct {
	rows int
	cols int
	gen  *PieceGenerator
}

// NewEngine creates an engine for the given configuration. src is consumed
// each time a piece is generated.
func NewEngine(cfg config.MergeDropConfig, src Source) *Engine {
	return &Engine{
		rows: cfg.Board.Rows,
		cols: cfg.Board.Cols,
		gen:  NewPieceGenerator(cfg.Board.Cols, cfg.Spawn.FourProbability, src),
	}
}

// NewState returns a fresh game: empty grid, a current and a next piece,
// zero score and Playing status.
func (e *Engine) NewState() State {
	current := e.gen.Generate()
	next := e.gen.Generate()
	return State{
		Grid:    NewGrid(e.rows, e.cols),
		Current: current,
		Next:    next,
		Status:  StatusPlaying,
	}
}

// Apply computes the state that follows s under cmd.
//
// TogglePause and Restart are accepted in any state (TogglePause is ignored
// after game over). Every other command only acts while Playing.
func (e *Engine) Apply(s State, cmd core.Command) Result {
	switch cmd {
	case core.CommandRestart:
		return Result{State: e.NewState(), Changed: true}

	case core.CommandTogglePause:
		switch s.Status {
		case StatusPlaying:
			s.Status = StatusPaused
		case StatusPaused:
			s.Status = StatusPlaying
		default:
			return Result{State: s}
		}
		return Result{State: s, Changed: true}
	}

	if s.Status != StatusPlaying {
		return Result{State: s}
	}

	switch cmd {
	case core.CommandTick, core.CommandSoftDrop:
		return e.descend(s)

	case core.CommandMoveLeft:
		return e.shift(s, -1)

	case core.CommandMoveRight:
		return e.shift(s, 1)

	case core.CommandHardDrop:
		s.Current = HardDrop(s.Current, s.Grid)
		return e.commit(s)
	}

	return Result{State: s}
}

// shift moves the current piece one column if possible.
func (e *Engine) shift(s State, dir int) Result {
	moved := MoveHorizontal(s.Current, dir, s.Grid)
	if moved.X == s.Current.X {
		return Result{State: s}
	}
	s.Current = moved
	return Result{State: s, Changed: true}
}

// descend moves the current piece down one row, or commits it when blocked.
func (e *Engine) descend(s State) Result {
	next := s.Current.Moved(0, 1)
	if IsValidPosition(next, s.Grid) {
		s.Current = next
		return Result{State: s, Changed: true}
	}
	return e.commit(s)
}

// commit writes the current piece into the grid, resolves merges and either
// advances to the next piece or ends the game when the piece never left row 0.
func (e *Engine) commit(s State) Result {
	piece := s.Current
	grid := s.Grid.Clone()

	// A piece spawned on an occupied cell overwrites it.
	for _, c := range piece.Cells() {
		grid.Set(c[0], c[1], piece.Value)
	}
	if piece.Value > s.HighestTile {
		s.HighestTile = piece.Value
	}

	res := Resolve(grid)
	s.Grid = res.Grid
	s.Score += res.Score
	if res.MaxValue > s.HighestTile {
		s.HighestTile = res.MaxValue
	}

	if piece.Y <= 0 {
		s.Status = StatusGameOver
	} else {
		s.Current = s.Next
		s.Next = e.gen.Generate()
	}

	return Result{
		State:     s,
		Changed:   true,
		Committed: true,
		Gained:    res.Score,
		Landed:    piece,
	}
}
