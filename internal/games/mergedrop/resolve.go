package mergedrop

// Resolution is the outcome of resolving a grid after a commit.
type Resolution struct {
	Grid     *Grid
	Score    int // Sum of every merged value
	MaxValue int // Largest value seen, including intermediate merges
	Merges   int
	Passes   int // Scans performed, including the final merge-free one
}

// Resolve merges equal neighbors and applies gravity until a full scan finds
// nothing to merge. The input grid is not modified.
//
// Each scan walks the grid row-major. For every tile the right neighbor is
// checked first, then the lower neighbor against the tile's current value, so
// a tile doubled by a rightward merge can merge downward in the same scan.
// Merges therefore favor the right and down directions.
func Resolve(g *Grid) Resolution {
	res := Resolution{
		Grid:     g.Clone(),
		MaxValue: g.MaxValue(),
	}

	for {
		res.Passes++
		merged := mergePass(res.Grid, &res)
		if !merged {
			return res
		}
		res.Grid = ApplyGravity(res.Grid)
	}
}

// mergePass runs one row-major scan over grid, merging in place.
func mergePass(grid *Grid, res *Resolution) bool {
	merged := false
	rows, cols := grid.Rows(), grid.Cols()

	for y := range rows {
		for x := range cols {
			if grid.Get(x, y) == Empty {
				continue
			}

			// Right neighbor
			if x < cols-1 && grid.Get(x, y) == grid.Get(x+1, y) {
				mergeInto(grid, x, y, x+1, y, res)
				merged = true
			}

			// Lower neighbor, using the possibly doubled value
			if y < rows-1 && grid.Get(x, y) == grid.Get(x, y+1) {
				mergeInto(grid, x, y, x, y+1, res)
				merged = true
			}
		}
	}

	return merged
}

// mergeInto doubles (x, y) and clears (ox, oy).
func mergeInto(grid *Grid, x, y, ox, oy int, res *Resolution) {
	v := grid.Get(x, y) * 2
	grid.Set(x, y, v)
	grid.Set(ox, oy, Empty)

	res.Score += v
	res.Merges++
	if v > res.MaxValue {
		res.MaxValue = v
	}
}

// ApplyGravity compacts every column toward the bottom, keeping the
// top-to-bottom order of tiles. It returns a new grid.
func ApplyGravity(g *Grid) *Grid {
	out := NewGrid(g.Rows(), g.Cols())

	for x := range g.Cols() {
		writeY := g.Rows() - 1
		for y := g.Rows() - 1; y >= 0; y-- {
			if v := g.Get(x, y); v != Empty {
				out.Set(x, writeY, v)
				writeY--
			}
		}
	}

	return out
}
