package mergedrop

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only view of a state for rendering, replay output and
// determinism tests. Board is a copy and includes the falling piece.
type Snapshot struct {
	Rows        int
	Cols        int
	Board       [][]int
	Score       int
	HighestTile int
	Status      Status
	Current     Piece
	Next        Piece
}

// Snapshot returns the view of s. The falling piece is overlaid on the board
// unless the game is over, in which case it has already been committed.
func (s State) Snapshot() Snapshot {
	board := s.Grid.Values()

	if s.Status != StatusGameOver {
		for _, c := range s.Current.Cells() {
			if s.Grid.InBounds(c[0], c[1]) {
				board[c[1]][c[0]] = s.Current.Value
			}
		}
	}

	return Snapshot{
		Rows:        s.Grid.Rows(),
		Cols:        s.Grid.Cols(),
		Board:       board,
		Score:       s.Score,
		HighestTile: s.HighestTile,
		Status:      s.Status,
		Current:     s.Current,
		Next:        s.Next,
	}
}

// Falling reports whether (x, y) is covered by the falling piece.
func (s Snapshot) Falling(x, y int) bool {
	return s.Status != StatusGameOver && s.Current.Occupies(x, y)
}

// String renders the board as fixed-width text, '.' for empty cells.
func (s Snapshot) String() string {
	var sb strings.Builder
	for y, row := range s.Board {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if v == Empty {
				sb.WriteString(fmt.Sprintf("%4s", "."))
			} else {
				sb.WriteString(fmt.Sprintf("%4d", v))
			}
		}
	}
	return sb.String()
}
