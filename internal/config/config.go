// Package config provides YAML-based configuration loading for presentation
// and server settings. Gameplay itself is not configurable: the arena, the
// cadences, and the spawn layout are fixed by the simulation.
package config

// Config is the top-level configuration file structure.
type Config struct {
	FPS   int   `yaml:"fps"`
	Theme Theme `yaml:"theme"`
	SSH   SSH   `yaml:"ssh"`
}

// Theme selects the glyphs and colors used to draw the board. Empty fields
// fall back to the built-in look.
type Theme struct {
	Head        Style  `yaml:"head"`
	Body        Style  `yaml:"body"`
	Food        Style  `yaml:"food"`
	BorderColor string `yaml:"border_color"`
	HUDColor    string `yaml:"hud_color"`
}

// Style is the appearance of one entity class: a glyph of one or two
// characters plus a named color.
type Style struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// SSH configures the serve command, which hosts the game over SSH.
type SSH struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}
