// snake is a terminal snake game played on a fixed 30x30 grid.
//
// Usage:
//
//	snake                    - Play in the current terminal
//	snake serve              - Serve the game over SSH
//
// Global flags:
//
//	--config <path>  - Path to a config YAML (default: ~/.tui-snake/config.yaml)
//	--fps <rate>     - Frame rate of the UI loop (default: 60)
//	--seed <value>   - Food RNG seed for reproducible runs (0 = from clock)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rosowskimik/tui-snake/internal/config"
	"github.com/rosowskimik/tui-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `Snake is a terminal take on the classic: steer the snake, eat the
food, and don't run into the walls or yourself. Crashing restarts the run
in place, so a session never ends until you quit.

Controls:
  Arrows/WASD/HJKL - Steer
  Q/Esc/Ctrl+C     - Quit

Examples:
  snake
  snake --seed 42
  snake --fps 30
  snake --config ./my-theme.yaml
  snake serve --ssh :2222`,
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (rootCmd -> runPlay -> loadConfig -> rootCmd).
	rootCmd.Run = runPlay

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate of the UI loop")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Food RNG seed (0 = random based on time)")

	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the config file and applies explicit flag overrides.
func loadConfig() (config.Config, tui.Theme, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, tui.Theme{}, err
	}

	theme, err := tui.ResolveTheme(cfg.Theme)
	if err != nil {
		return cfg, theme, fmt.Errorf("config theme: %w", err)
	}

	// Flags beat the config file, but only when actually set
	if rootCmd.PersistentFlags().Changed("fps") {
		cfg.FPS = flagFPS
	}

	return cfg, theme, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, theme, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Probe the terminal size so the first frame is sized right
	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(tui.Options{
		Seed:   flagSeed,
		FPS:    cfg.FPS,
		Width:  width,
		Height: height,
		Theme:  theme,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
