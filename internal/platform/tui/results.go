package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Result is one finished session, kept in memory for the menu loop.
type Result struct {
	Round      int
	Difficulty string
	Phase      string
	Score      int
	Collected  int
	TimeLeft   string
	Seed       int64
}

// ResultsKeyMap defines the key bindings for the results screen.
type ResultsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Again key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Again, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Again, k.Quit}}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Again: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel shows the sessions played since the menu started.
type ResultsModel struct {
	results  []Result
	table    table.Model
	help     help.Model
	keys     ResultsKeyMap
	width    int
	height   int
	again    bool
	quitting bool
}

// NewResultsModel creates a results table, newest session first.
func NewResultsModel(results []Result, width, height int) ResultsModel {
	h := help.New()
	h.Width = width

	m := ResultsModel{
		results: results,
		help:    h,
		keys:    DefaultResultsKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Difficulty", Width: 10},
		{Title: "Result", Width: 7},
		{Title: "Count", Width: 6},
		{Title: "Items", Width: 6},
		{Title: "Time left", Width: 9},
		{Title: "Seed", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Rows returns the table rows, newest session first.
func (m ResultsModel) Rows() []table.Row {
	rows := make([]table.Row, 0, len(m.results))
	for i := len(m.results) - 1; i >= 0; i-- {
		r := m.results[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.Round),
			r.Difficulty,
			r.Phase,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Collected),
			r.TimeLeft,
			fmt.Sprintf("%d", r.Seed),
		})
	}
	return rows
}

func (m *ResultsModel) updateTableRows() {
	m.table.SetRows(m.Rows())
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Again):
			m.again = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results.
func (m ResultsModel) View() string {
	if m.quitting || m.again {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("RESULTS"), m.width))
	b.WriteString("\n\n")

	wins := 0
	for _, r := range m.results {
		if r.Phase == "won" {
			wins++
		}
	}
	b.WriteString(centerText(fmt.Sprintf("%d played, %d won", len(m.results), wins), m.width))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// WantsAgain reports whether the user asked for another session.
func (m ResultsModel) WantsAgain() bool {
	return m.again
}

// RunResults shows the results table and reports whether to play again.
func RunResults(results []Result, width, height int) (again bool, err error) {
	p := tea.NewProgram(NewResultsModel(results, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ResultsModel)
	if !ok {
		return false, nil
	}
	return m.WantsAgain(), nil
}
