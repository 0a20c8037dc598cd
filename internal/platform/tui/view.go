package tui

import (
	"fmt"

	"github.com/rosowskimik/tui-snake/internal/core"
	"github.com/rosowskimik/tui-snake/internal/snake"
)

// hudHeight is the number of rows reserved above the board for the status line.
const hudHeight = 1

// BoardView draws a game onto a screen buffer: a status line, a box border,
// and the entities projected through the viewport.
type BoardView struct {
	theme Theme
	vp    Viewport
}

// NewBoardView creates a board view with the given theme.
func NewBoardView(theme Theme) *BoardView {
	return &BoardView{
		theme: theme,
		vp:    NewViewport(),
	}
}

// MinWidth returns the minimum screen width the board needs, border included.
func (v *BoardView) MinWidth() int {
	return v.vp.W + 2
}

// MinHeight returns the minimum screen height the board needs, border and
// status line included.
func (v *BoardView) MinHeight() int {
	return v.vp.H + 2 + hudHeight
}

// Fits reports whether the board fits on the given screen.
func (v *BoardView) Fits(dst *core.Screen) bool {
	return dst.Width() >= v.MinWidth() && dst.Height() >= v.MinHeight()
}

// Draw renders a full frame centered on the screen: status line, border,
// then every entity. If the screen is too small it draws a notice instead.
func (v *BoardView) Draw(g *snake.Game, dst *core.Screen) {
	dst.Clear()

	if !v.Fits(dst) {
		v.drawTooSmall(dst)
		return
	}

	ox := (dst.Width() - v.MinWidth()) / 2
	oy := (dst.Height() - v.MinHeight()) / 2

	hud := fmt.Sprintf("Length %d   Eaten %d", g.Length(), g.Eaten())
	dst.DrawTextColor(ox+1, oy, hud, v.theme.HUD)

	dst.DrawBoxColor(core.NewRect(ox, oy+hudHeight, v.vp.W+2, v.vp.H+2), v.theme.Border)

	// Entities come back-to-front; later draws win the cell.
	for _, e := range g.Entities() {
		v.drawEntity(dst, e, ox+1, oy+hudHeight+1)
	}
}

// drawEntity paints one entity inside the board area whose top-left play
// cell is (baseX, baseY).
func (v *BoardView) drawEntity(dst *core.Screen, e snake.Entity, baseX, baseY int) {
	x, y := v.vp.CellOrigin(e.Pos)
	cols := v.vp.GlyphCols(e.Size)
	st := v.entityStyle(e.Kind)
	for i := 0; i < cols; i++ {
		dst.SetCell(baseX+x+i, baseY+y, st.Glyphs[i], st.Color)
	}
}

func (v *BoardView) entityStyle(k snake.Kind) EntityStyle {
	switch k {
	case snake.KindHead:
		return v.theme.Head
	case snake.KindFood:
		return v.theme.Food
	default:
		return v.theme.Body
	}
}

func (v *BoardView) drawTooSmall(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Terminal too small")
	dst.DrawTextCentered(mid+1, fmt.Sprintf("need %dx%d, have %dx%d",
		v.MinWidth(), v.MinHeight(), dst.Width(), dst.Height()))
}
