package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlevkov/stacktower/internal/storage"
)

const maxScoreboardRows = 100

// ScoreboardKeyMap defines the key bindings for the run-history browser.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
}

// ShortHelp returns key bindings for the help line.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Back}}
}

// DefaultScoreboardKeyMap returns the default bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "back"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("11"))
	scoreboardFrameStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))
)

// ScoreboardModel is the Bubble Tea model browsing the run history.
type ScoreboardModel struct {
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	summary  *storage.Summary
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel builds the scoreboard from the stored run history.
func NewScoreboardModel(store *storage.Store, width, height int) (ScoreboardModel, error) {
	runs, err := store.TopRuns(maxScoreboardRows)
	if err != nil {
		return ScoreboardModel{}, err
	}
	summary, err := store.Summarize()
	if err != nil {
		return ScoreboardModel{}, err
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Level", Width: 8},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, 0, len(runs))
	for i, run := range runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", run.Level),
			run.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tableHeight := max(3, min(len(rows)+1, height-8))
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("15"))
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("11"))
	t.SetStyles(styles)

	return ScoreboardModel{
		table:   t,
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		summary: summary,
		width:   width,
		height:  height,
	}, nil
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and exit.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || key.Matches(msg, m.keys.Back) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a summary line and help.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := scoreboardTitleStyle.Render("Stacktower - Best Runs")

	summaryLine := "No runs recorded yet."
	if m.summary != nil && m.summary.Runs > 0 {
		summaryLine = fmt.Sprintf(
			"Runs: %d   Best: %d   Avg: %.1f",
			m.summary.Runs, m.summary.BestLevel, m.summary.AvgLevel,
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		scoreboardFrameStyle.Render(m.table.View()),
		"",
		summaryLine,
		m.help.View(m.keys),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// RunScoreboard shows the run-history browser and blocks until dismissed.
func RunScoreboard(store *storage.Store, width, height int) error {
	model, err := NewScoreboardModel(store, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
