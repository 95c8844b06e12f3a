package mergedrop

import (
	"strings"
	"testing"

	"github.com/vovakirdan/mergedrop/internal/core"
)

func TestSnapshotOverlaysFallingPiece(t *testing.T) {
	e := newTestEngine(3, 5)
	s := e.NewState()
	s.Grid.Set(0, 7, 8)

	snap := s.Snapshot()
	if snap.Board[0][3] != 2 {
		t.Errorf("Board[0][3] = %d, expected falling 2", snap.Board[0][3])
	}
	if snap.Board[7][0] != 8 {
		t.Errorf("Board[7][0] = %d, expected settled 8", snap.Board[7][0])
	}
	if !snap.Falling(3, 0) || snap.Falling(0, 7) {
		t.Error("Falling should only report the piece cell")
	}

	// Overlay is non-destructive
	if s.Grid.Get(3, 0) != Empty {
		t.Error("Snapshot wrote the piece into the grid")
	}
	snap.Board[7][0] = 1024
	if s.Grid.Get(0, 7) != 8 {
		t.Error("Snapshot board shares memory with the grid")
	}
}

func TestSnapshotString(t *testing.T) {
	e := newTestEngine(1, 0)
	s := e.NewState()
	s.Grid = GridFromValues([][]int{
		{0, 0},
		{2, 16},
	})

	got := s.Snapshot().String()
	expected := "   .    2\n   2   16"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestRenderBoard(t *testing.T) {
	e := newTestEngine(3, 5)
	s := e.NewState()
	s.Grid.Set(0, 7, 128)

	w, h := LayoutSize(8, 8)
	screen := core.NewScreen(w, h)
	Render(screen, s.Snapshot())

	out := screen.String()
	for _, text := range []string{"2048 TETRIS", "Score: 0", "Next", "128"} {
		if !strings.Contains(out, text) {
			t.Errorf("render output missing %q:\n%s", text, out)
		}
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name   string
		cmd    core.Command
		expect string
	}{
		{"paused", core.CommandTogglePause, "PAUSED"},
		{"game over", core.CommandHardDrop, "GAME OVER"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(3, 3)
			s := e.NewState()
			for y := 1; y < 8; y++ {
				s.Grid.Set(3, y, 4<<(y%2))
			}
			s = e.Apply(s, tc.cmd).State

			screen := core.NewScreen(80, 24)
			Render(screen, s.Snapshot())
			if !strings.Contains(screen.String(), tc.expect) {
				t.Errorf("render output missing %q", tc.expect)
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	e := newTestEngine(3)
	screen := core.NewScreen(30, 10)
	Render(screen, e.NewState().Snapshot())

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small screen should show a resize hint")
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(2) != core.ColorYellow {
		t.Errorf("TileColor(2) = %v, expected yellow", TileColor(2))
	}
	if TileColor(1 << 20) != core.ColorGray {
		t.Error("values beyond the palette should be gray")
	}
}

func TestRenderTileBackground(t *testing.T) {
	e := newTestEngine(3)
	s := e.NewState()
	s.Grid.Set(0, 7, 16)

	screen := core.NewScreen(80, 24)
	Render(screen, s.Snapshot())

	// Locate the settled 16 in the bottom row of the board
	found := false
	for y := range screen.Height() {
		row := screen.Row(y)
		x := strings.Index(row, "16")
		if x < 0 {
			continue
		}
		x = len([]rune(row[:x]))
		cell := screen.GetCell(x, y)
		if cell.Bg != core.ColorAmber || cell.Color != core.ColorDark {
			t.Errorf("tile text cell = %+v, expected dark on amber", cell)
		}
		// Padding around the digits shares the tile background
		if screen.GetCell(x-1, y).Bg != core.ColorAmber {
			t.Error("tile padding should carry the tile background")
		}
		found = true
		break
	}
	if !found {
		t.Fatal("rendered board does not show the 16 tile")
	}
}
