package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Default returns the hardcoded fallback configuration, used when even the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		FPS: 60,
		Theme: Theme{
			Head: Style{Glyph: "██", Color: "bright_white"},
			Body: Style{Glyph: "██", Color: "gray"},
			Food: Style{Glyph: "██", Color: "bright_magenta"},

			BorderColor: "gray",
			HUDColor:    "white",
		},
		SSH: SSH{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}
