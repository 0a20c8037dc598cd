package tui

import (
	"strings"
	"testing"

	"github.com/rosowskimik/tui-snake/internal/core"
	"github.com/rosowskimik/tui-snake/internal/snake"
)

func TestBoardViewFits(t *testing.T) {
	v := NewBoardView(DefaultTheme())

	tests := []struct {
		name string
		w, h int
		want bool
	}{
		{"exact fit", v.MinWidth(), v.MinHeight(), true},
		{"roomy", 100, 50, true},
		{"one column short", v.MinWidth() - 1, v.MinHeight(), false},
		{"one row short", v.MinWidth(), v.MinHeight() - 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(tt.w, tt.h)
			if got := v.Fits(s); got != tt.want {
				t.Errorf("Fits(%dx%d) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestDrawTooSmall(t *testing.T) {
	v := NewBoardView(DefaultTheme())
	s := core.NewScreen(40, 10)

	v.Draw(snake.New(1), s)

	out := s.String()
	if !strings.Contains(out, "Terminal too small") {
		t.Error("expected too-small notice")
	}
	if !strings.Contains(out, "need 62x33, have 40x10") {
		t.Errorf("expected dimensions in notice, got:\n%s", out)
	}
}

func TestDrawBoard(t *testing.T) {
	v := NewBoardView(DefaultTheme())
	s := core.NewScreen(v.MinWidth(), v.MinHeight())

	v.Draw(snake.New(1), s)

	// Status line sits above the board
	if !strings.Contains(s.Row(0), "Length 2   Eaten 0") {
		t.Errorf("missing status line, row 0 = %q", s.Row(0))
	}

	// Border corners
	if s.Get(0, 1) != '┌' || s.Get(61, 1) != '┐' {
		t.Error("missing top border corners")
	}
	if s.Get(0, 32) != '└' || s.Get(61, 32) != '┘' {
		t.Error("missing bottom border corners")
	}

	// Head at (3, 3) fills both columns of its tile
	head := DefaultTheme().Head
	for _, x := range []int{7, 8} {
		cell := s.GetCell(x, 28)
		if cell.Rune != head.Glyphs[0] || cell.Color != head.Color {
			t.Errorf("head cell (%d, 28) = %+v", x, cell)
		}
	}

	// Body segment at (3, 2) is a single column bead
	body := DefaultTheme().Body
	cell := s.GetCell(7, 29)
	if cell.Rune != body.Glyphs[0] || cell.Color != body.Color {
		t.Errorf("body cell (7, 29) = %+v", cell)
	}
	if s.Get(8, 29) != ' ' {
		t.Errorf("segment should leave its second column empty, got %q", s.Get(8, 29))
	}
}

func TestDrawCentersBoard(t *testing.T) {
	v := NewBoardView(DefaultTheme())
	s := core.NewScreen(v.MinWidth()+10, v.MinHeight()+6)

	v.Draw(snake.New(1), s)

	// Border shifts by half the slack
	if s.Get(5, 4) != '┌' {
		t.Errorf("top-left corner not centered, cell (5, 4) = %q", s.Get(5, 4))
	}
	if s.Get(66, 35) != '┘' {
		t.Errorf("bottom-right corner not centered, cell (66, 35) = %q", s.Get(66, 35))
	}
}
