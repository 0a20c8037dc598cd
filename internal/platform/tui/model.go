package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rosowskimik/tui-snake/internal/core"
	"github.com/rosowskimik/tui-snake/internal/snake"
)

const (
	// defaultFPS is the frame rate used when none is configured.
	defaultFPS = 60

	// maxFrameDelta caps the elapsed time fed to the simulation per frame.
	// After a suspend or a long stall the game resumes instead of sprinting
	// through the backlog.
	maxFrameDelta = 250 * time.Millisecond
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game session.
type Options struct {
	// Seed for the food placement RNG. Zero means derive from the clock.
	Seed int64

	// FPS is the frame rate of the UI loop. Zero means defaultFPS.
	FPS int

	// Width and Height are the initial terminal dimensions. Zero means
	// size for the board; the first WindowSizeMsg corrects either way.
	Width  int
	Height int

	// Theme controls the board's look. The zero value means DefaultTheme.
	Theme Theme
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	game     *snake.Game
	view     *BoardView
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	fps      int
	width    int
	height   int
	lastTick time.Time
	quitting bool
}

// NewModel creates a model ready to run.
func NewModel(opts Options) Model {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}

	theme := opts.Theme
	if theme.Head.Glyphs[0] == 0 {
		theme = DefaultTheme()
	}

	view := NewBoardView(theme)

	width := opts.Width
	if width <= 0 {
		width = view.MinWidth()
	}
	height := opts.Height
	if height <= 0 {
		height = view.MinHeight() + 1
	}

	return Model{
		game:   snake.New(seed),
		view:   view,
		screen: core.NewScreen(width, max(1, height-1)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
		fps:    fps,
		width:  width,
		height: height,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records steering input for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleResize adjusts the screen buffer, keeping one row for the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	return m, nil
}

// handleTick advances the simulation by the real elapsed time and schedules
// the next frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
		if dt < 0 {
			dt = 0
		}
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
	}
	m.lastTick = now

	// When the terminal cannot show the board the simulation holds still.
	if m.view.Fits(m.screen) {
		m.game.Advance(dt, m.input)
	}
	m.input.Clear()

	return m, tickCmd(m.fps)
}

// View renders the board plus the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.view.Draw(m.game, m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for local play and blocks until exit.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
