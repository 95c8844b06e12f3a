package mergedrop

import (
	"github.com/vovakirdan/mergedrop/internal/config"
)

// seqSource replays a fixed sequence of uniform values, wrapping around.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// column returns the uniform value that selects column x on a cols-wide board.
func column(x, cols int) float64 {
	return (float64(x) + 0.5) / float64(cols)
}

const (
	two  = 0.1 // uniform value that generates a 2
	four = 0.9 // uniform value that generates a 4
)

// newTestEngine returns an 8x8 engine whose pieces are all 2s spawning in
// the given columns, cycling.
func newTestEngine(cols ...int) *Engine {
	cfg := config.DefaultMergeDropConfig()
	var vals []float64
	for _, c := range cols {
		vals = append(vals, two, column(c, cfg.Board.Cols))
	}
	return NewEngine(cfg, &seqSource{vals: vals})
}

func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
