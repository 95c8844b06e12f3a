// Package mergedrop implements a falling-block puzzle where single-cell pieces
// drop onto a grid and equal neighbors merge and double, 2048 style.
//
// The engine is deterministic for a given randomness Source and command
// sequence. Hosts drive it through Engine.Apply or the mutex-guarded Driver and
// render from Snapshot.
package mergedrop

// Empty is the value of a cell with no tile.
const Empty = 0

// Grid is a fixed-size cell store addressed as (x, y) = (column, row),
// with row 0 at the top. It holds settled tiles only; the falling piece
// lives in State until it is committed.
type Grid struct {
	rows  int
	cols  int
	cells []int // row-major
}

// NewGrid creates an empty grid. Dimensions never change afterwards.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Get returns the value at (x, y), or Empty when out of bounds.
func (g *Grid) Get(x, y int) int {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.cols+x]
}

// Set stores v at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y, v int) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.cols+x] = v
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: make([]int, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// MaxValue returns the largest tile on the grid.
func (g *Grid) MaxValue() int {
	maxVal := Empty
	for _, v := range g.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Values returns the contents as rows of columns.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for y := range g.rows {
		out[y] = make([]int, g.cols)
		copy(out[y], g.cells[y*g.cols:(y+1)*g.cols])
	}
	return out
}

// GridFromValues builds a grid from rows of columns. All rows must have the
// same length; it is intended for tests and fixtures.
func GridFromValues(values [][]int) *Grid {
	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	g := NewGrid(rows, cols)
	for y, row := range values {
		for x, v := range row {
			g.Set(x, y, v)
		}
	}
	return g
}
