package mergedrop

import "github.com/vovakirdan/mergedrop/internal/core"

// Offset is a cell of a piece relative to its anchor.
type Offset struct {
	DX, DY int
}

// SingleCell is the shape of every piece generated today. Pieces carry a
// general offset set so multi-cell shapes can be added later.
var SingleCell = []Offset{{DX: 0, DY: 0}}

// Piece is the falling, not yet committed block.
type Piece struct {
	Value int
	Shape []Offset
	X, Y  int // anchor (top-left)
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Cells returns the absolute board coordinates the piece occupies.
func (p Piece) Cells() [][2]int {
	cells := make([][2]int, len(p.Shape))
	for i, o := range p.Shape {
		cells[i] = [2]int{p.X + o.DX, p.Y + o.DY}
	}
	return cells
}

// Occupies reports whether the piece covers (x, y).
func (p Piece) Occupies(x, y int) bool {
	for _, o := range p.Shape {
		if p.X+o.DX == x && p.Y+o.DY == y {
			return true
		}
	}
	return false
}

// PieceGenerator creates new pieces from a Source.
type PieceGenerator struct {
	cols     int
	fourProb float64
	src      Source
}

// NewPieceGenerator creates a generator for a board with cols columns.
// fourProb is the chance a piece is worth 4 instead of 2.
func NewPieceGenerator(cols int, fourProb float64, src Source) *PieceGenerator {
	return &PieceGenerator{
		cols:     cols,
		fourProb: fourProb,
		src:      src,
	}
}

// Generate returns a single-cell piece in row 0 of a random column.
// The value is drawn first, then the column.
func (pg *PieceGenerator) Generate() Piece {
	value := 2
	if pg.src.Float64() >= 1-pg.fourProb {
		value = 4
	}

	x := core.Clamp(int(pg.src.Float64()*float64(pg.cols)), 0, pg.cols-1)

	return Piece{
		Value: value,
		Shape: SingleCell,
		X:     x,
		Y:     0,
	}
}

// IsValidPosition reports whether every cell of the piece is inside the grid
// and on an empty cell. It stops at the first violation.
func IsValidPosition(p Piece, g *Grid) bool {
	for _, o := range p.Shape {
		x, y := p.X+o.DX, p.Y+o.DY
		if !g.InBounds(x, y) || g.Get(x, y) != Empty {
			return false
		}
	}
	return true
}

// MoveHorizontal shifts the piece one column in dir (-1 or +1). Blocked or
// invalid moves return the piece unchanged.
func MoveHorizontal(p Piece, dir int, g *Grid) Piece {
	if dir != -1 && dir != 1 {
		return p
	}
	moved := p.Moved(dir, 0)
	if !IsValidPosition(moved, g) {
		return p
	}
	return moved
}

// HardDrop returns the piece at the lowest row it can reach by falling
// straight down. It does not commit the piece.
func HardDrop(p Piece, g *Grid) Piece {
	for {
		next := p.Moved(0, 1)
		if !IsValidPosition(next, g) {
			return p
		}
		p = next
	}
}
