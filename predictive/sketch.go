package predictive

import "github.com/IvanBrykalov/predcache/internal/util"

const (
	defaultSketchWidth = 4096
	defaultSketchDepth = 4
)

// sketchSeeds mixes each row's index computation with a distinct constant.
// Values are the ones used by the reference implementation this package was
// ported from; keeping them fixed makes estimate() deterministic across
// runs and independent of process start.
var sketchSeeds = [8]uint64{
	0x9e3779b185ebca87, 0xc2b2ae3d27d4eb4f,
	0x165667b19e3779f9, 0xd6e8feb86659fd93,
	0x94d049bb133111eb, 0x2545f4914f6cdd1d,
	0x60642e2a34326f15, 0x9e3779b97f4a7c15,
}

const avalancheConst = 0x9e3779b97f4a7c15

// frequencySketch is a fixed-width x depth Count-Min Sketch with saturating
// counters and halving decay. width must be a power of two so that column
// selection can mask instead of mod.
//
// Not safe for concurrent use on its own; callers (shard) serialize access.
type frequencySketch struct {
	width uint64
	depth int
	rows  [][]uint32
}

func newFrequencySketch(width, depth int) *frequencySketch {
	if width <= 0 {
		width = defaultSketchWidth
	}
	if depth <= 0 {
		depth = defaultSketchDepth
	}
	w := util.NextPow2(uint64(width))
	rows := make([][]uint32, depth)
	for i := range rows {
		rows[i] = make([]uint32, w)
	}
	return &frequencySketch{width: w, depth: depth, rows: rows}
}

// index computes the column for row i from key k's structural hash. Pure:
// the same (k, i) always yields the same column. Mirrors
// CountMinSketch.hpp's index() literally: the shift terms fold in the
// pre-XOR hash, not the mixed value.
func (s *frequencySketch) index(h uint64, row int) uint64 {
	mixed := h ^ (sketchSeeds[row&7] + avalancheConst + (h << 6) + (h >> 2))
	return mixed & (s.width - 1)
}

// add increments the counter for k in every row, saturating at MaxUint32.
func (s *frequencySketch) add(h uint64) {
	for i := 0; i < s.depth; i++ {
		col := s.index(h, i)
		if s.rows[i][col] != ^uint32(0) {
			s.rows[i][col]++
		}
	}
}

// estimate returns the minimum counter across all rows for k.
func (s *frequencySketch) estimate(h uint64) uint32 {
	min := ^uint32(0)
	for i := 0; i < s.depth; i++ {
		col := s.index(h, i)
		if v := s.rows[i][col]; v < min {
			min = v
		}
	}
	return min
}

// decayHalf right-shifts every counter by one.
func (s *frequencySketch) decayHalf() {
	for _, row := range s.rows {
		for i := range row {
			row[i] >>= 1
		}
	}
}
