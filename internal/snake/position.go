package snake

// Arena dimensions in grid cells. The playfield is fixed; the terminal view
// scales itself to the arena, never the other way around.
const (
	ArenaWidth  = 30
	ArenaHeight = 30
)

// Position is a cell on the arena grid, 0-indexed from the bottom-left
// corner. Entity overlap is exact cell equality; there is no partial overlap.
type Position struct {
	X, Y int
}

// InArena reports whether p lies within the arena bounds. The head may step
// outside for a single tick; that is the wall-collision signal resolved by
// the same tick's game-over check, not an error.
func (p Position) InArena() bool {
	return p.X >= 0 && p.X < ArenaWidth && p.Y >= 0 && p.Y < ArenaHeight
}

// Size is an entity's logical footprint in grid units. The renderer scales
// footprints to screen cells.
type Size struct {
	W, H float64
}

func square(s float64) Size {
	return Size{W: s, H: s}
}

// Logical footprints. The head and food nearly fill their cell; body
// segments are slightly smaller so the tail reads as separate beads.
var (
	headSize    = square(0.8)
	segmentSize = square(0.7)
	foodSize    = square(0.8)
)
