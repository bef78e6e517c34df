package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/game"
)

// Model is the Bubble Tea model driving the game. It collects key
// events into an input frame, steps the simulation on every tick
// message, and renders the field plus a help footer.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	renderer *fieldRenderer
	tickRate int

	inputFrame core.InputFrame
	keys       KeyMap
	help       help.Model

	quitting bool
}

// NewModel creates a model for the given game. The bottom screen row
// is reserved for the help footer.
func NewModel(g *game.Game, cfg config.Config, theme config.Theme, screenW, screenH, tickRate int) Model {
	screen := core.NewScreen(screenW, core.Max(screenH-1, 1))

	return Model{
		game:       g,
		screen:     screen,
		renderer:   newFieldRenderer(screen, cfg.Field.Width, cfg.Field.Height, theme),
		tickRate:   tickRate,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

// Init starts the round and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Restart()
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Quit is checked ahead of the simulation, once per event.
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.game.Step(m.inputFrame)
		m.inputFrame.Clear()
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.renderer)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, cfg config.Config, theme config.Theme, screenW, screenH, tickRate int) error {
	model := NewModel(g, cfg, theme, screenW, screenH, tickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
