package tui

import (
	"fmt"

	"github.com/rosowskimik/tui-snake/internal/config"
	"github.com/rosowskimik/tui-snake/internal/core"
)

// EntityStyle describes how one entity kind is drawn: one glyph per tile
// column plus a foreground color.
type EntityStyle struct {
	Glyphs [TileW]rune
	Color  core.Color
}

// Theme is the resolved visual style for the board.
type Theme struct {
	Head   EntityStyle
	Body   EntityStyle
	Food   EntityStyle
	Border core.Color
	HUD    core.Color
}

// DefaultTheme returns the built-in look: solid blocks, bright white head,
// gray body, bright magenta food.
func DefaultTheme() Theme {
	return Theme{
		Head:   EntityStyle{Glyphs: [TileW]rune{'█', '█'}, Color: core.ColorBrightWhite},
		Body:   EntityStyle{Glyphs: [TileW]rune{'█', '█'}, Color: core.ColorGray},
		Food:   EntityStyle{Glyphs: [TileW]rune{'█', '█'}, Color: core.ColorBrightMagenta},
		Border: core.ColorGray,
		HUD:    core.ColorWhite,
	}
}

// ResolveTheme overlays user configuration on the default theme. Empty
// fields keep their defaults; bad glyph lengths or unknown color names are
// errors.
func ResolveTheme(cfg config.Theme) (Theme, error) {
	t := DefaultTheme()

	if err := applyStyle(&t.Head, cfg.Head); err != nil {
		return t, fmt.Errorf("head: %w", err)
	}
	if err := applyStyle(&t.Body, cfg.Body); err != nil {
		return t, fmt.Errorf("body: %w", err)
	}
	if err := applyStyle(&t.Food, cfg.Food); err != nil {
		return t, fmt.Errorf("food: %w", err)
	}
	if err := applyColor(&t.Border, cfg.BorderColor); err != nil {
		return t, fmt.Errorf("border: %w", err)
	}
	if err := applyColor(&t.HUD, cfg.HUDColor); err != nil {
		return t, fmt.Errorf("hud: %w", err)
	}
	return t, nil
}

// applyStyle overlays a configured style on dst. A single glyph is used for
// both tile columns; a pair fills them left to right.
func applyStyle(dst *EntityStyle, src config.Style) error {
	if src.Glyph != "" {
		runes := []rune(src.Glyph)
		switch len(runes) {
		case 1:
			dst.Glyphs = [TileW]rune{runes[0], runes[0]}
		case TileW:
			copy(dst.Glyphs[:], runes)
		default:
			return fmt.Errorf("glyph %q must be one or two characters", src.Glyph)
		}
	}
	if src.Color != "" {
		c, err := core.ParseColor(src.Color)
		if err != nil {
			return err
		}
		dst.Color = c
	}
	return nil
}

func applyColor(dst *core.Color, name string) error {
	if name == "" {
		return nil
	}
	c, err := core.ParseColor(name)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}
