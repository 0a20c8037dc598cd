package tui

import (
	"math"

	"github.com/rosowskimik/tui-snake/internal/snake"
)

// Tile dimensions in terminal cells. A terminal cell is roughly twice as
// tall as it is wide, so each grid tile spans two columns and one row to
// keep the board visually square.
const (
	TileW = 2
	TileH = 1
)

// Viewport is the drawable board area in terminal cells. It projects arena
// grid positions and entity footprints onto the character grid.
type Viewport struct {
	W int
	H int
}

// NewViewport returns the viewport sized for the full arena.
func NewViewport() Viewport {
	return Viewport{
		W: snake.ArenaWidth * TileW,
		H: snake.ArenaHeight * TileH,
	}
}

// convert maps a grid coordinate to a viewport coordinate relative to the
// viewport center. Tiles are anchored at their centers, so a grid position
// maps to the center of its tile.
func convert(pos, viewport, arena float64) float64 {
	tile := viewport / arena
	return pos/arena*viewport - viewport/2 + tile/2
}

// CellOrigin returns the top-left terminal cell of the tile for a grid
// position. Grid y grows upward while screen y grows downward, so the
// vertical axis is flipped here.
func (v Viewport) CellOrigin(p snake.Position) (x, y int) {
	cx := convert(float64(p.X), float64(v.W), snake.ArenaWidth)
	cy := convert(float64(p.Y), float64(v.H), snake.ArenaHeight)

	x = int(math.Round(cx + float64(v.W)/2 - float64(TileW)/2))
	yUp := int(math.Round(cy + float64(v.H)/2 - float64(TileH)/2))
	y = v.H - TileH - yUp
	return x, y
}

// ScaleSize converts an entity footprint in grid units to terminal cells.
func (v Viewport) ScaleSize(s snake.Size) (w, h float64) {
	w = s.W / snake.ArenaWidth * float64(v.W)
	h = s.H / snake.ArenaHeight * float64(v.H)
	return w, h
}

// GlyphCols returns how many columns of its tile an entity of the given
// footprint covers: at least one, at most the tile width. Full-size
// entities fill the tile; the smaller body segments render one column so
// the tail reads as separate beads.
func (v Viewport) GlyphCols(s snake.Size) int {
	w, _ := v.ScaleSize(s)
	return max(1, min(TileW, int(math.Round(w))))
}
