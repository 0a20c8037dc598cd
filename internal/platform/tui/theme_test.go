package tui

import (
	"strings"
	"testing"

	"github.com/rosowskimik/tui-snake/internal/config"
	"github.com/rosowskimik/tui-snake/internal/core"
)

func TestResolveThemeEmpty(t *testing.T) {
	got, err := ResolveTheme(config.Theme{})
	if err != nil {
		t.Fatalf("ResolveTheme error: %v", err)
	}
	if got != DefaultTheme() {
		t.Errorf("empty config should resolve to defaults, got %+v", got)
	}
}

func TestResolveThemeOverrides(t *testing.T) {
	got, err := ResolveTheme(config.Theme{
		Head:     config.Style{Glyph: "@", Color: "green"},
		Food:     config.Style{Glyph: "()"},
		HUDColor: "bright_cyan",
	})
	if err != nil {
		t.Fatalf("ResolveTheme error: %v", err)
	}

	if got.Head.Glyphs != [TileW]rune{'@', '@'} {
		t.Errorf("single glyph should fill both columns, got %q", string(got.Head.Glyphs[:]))
	}
	if got.Head.Color != core.ColorGreen {
		t.Errorf("head color = %v, want %v", got.Head.Color, core.ColorGreen)
	}
	if got.Food.Glyphs != [TileW]rune{'(', ')'} {
		t.Errorf("glyph pair = %q, want %q", string(got.Food.Glyphs[:]), "()")
	}
	if got.Food.Color != DefaultTheme().Food.Color {
		t.Errorf("unset food color should keep default, got %v", got.Food.Color)
	}
	if got.HUD != core.ColorBrightCyan {
		t.Errorf("hud color = %v, want %v", got.HUD, core.ColorBrightCyan)
	}
	if got.Body != DefaultTheme().Body {
		t.Errorf("unset body style should keep default, got %+v", got.Body)
	}
}

func TestResolveThemeBadGlyph(t *testing.T) {
	_, err := ResolveTheme(config.Theme{
		Body: config.Style{Glyph: "abc"},
	})
	if err == nil {
		t.Fatal("expected error for three-character glyph")
	}
	if !strings.Contains(err.Error(), "body:") {
		t.Errorf("error should name the entity, got %v", err)
	}
}

func TestResolveThemeBadColor(t *testing.T) {
	_, err := ResolveTheme(config.Theme{
		BorderColor: "mauve",
	})
	if err == nil {
		t.Fatal("expected error for unknown color name")
	}
	if !strings.Contains(err.Error(), "border:") {
		t.Errorf("error should name the field, got %v", err)
	}
}
