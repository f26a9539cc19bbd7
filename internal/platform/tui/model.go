package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlevkov/stacktower/internal/core"
	"github.com/mlevkov/stacktower/internal/game"
)

// maxFrameDelta caps the elapsed time fed into the simulation so a
// suspended terminal doesn't fast-forward the tower on resume.
const maxFrameDelta = 0.25

// Model is the Bubble Tea model running one tower session.
type Model struct {
	session   *game.Session
	screen    *core.Screen
	keyMapper *KeyMapper
	config    core.RuntimeConfig
	lastTick  time.Time
	quitting  bool
}

// NewModel creates a model for the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig) Model {
	session.Resize(cfg.ScreenW, cfg.ScreenH)
	return Model{
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keyMapper: NewKeyMapper(),
		config:    cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.session.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input to session actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always leaves, regardless of session state.
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if action := m.keyMapper.MapKey(msg); action != core.ActionNone {
		m.session.Handle(action)
	}

	if m.session.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the simulation by the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt < 0 {
			dt = 0
		}
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
	}
	m.lastTick = now

	m.session.Tick(dt)

	return m, tickCmd(m.config.TickRate)
}

// View renders the current session state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given session and blocks
// until the player quits.
func Run(session *game.Session, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(session, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
