package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pickup-arena/internal/config"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// presetBlurbs describes each difficulty in the menu.
var presetBlurbs = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "2:00 on the clock, 12 to win, stronger boost",
	config.DifficultyNormal: "1:30 on the clock, 15 to win",
	config.DifficultyHard:   "1:00 on the clock, 17 to win, items spread out",
	config.DifficultyFixed:  "Normal rules, no boost, no speed-up",
}

// DifficultyModel lets users choose a difficulty preset before a session.
type DifficultyModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	chosen    bool
	quitting  bool
}

// NewDifficultyModel creates a new difficulty selection model with the cursor
// on current, or on normal when current is empty.
func NewDifficultyModel(width, height int, current config.DifficultyPreset) DifficultyModel {
	cursor := 1
	for i, p := range config.Presets {
		if p == current {
			cursor = i
		}
	}
	return DifficultyModel{
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(config.Presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection = config.Presets[m.cursor]
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("P I C K U P   A R E N A"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Collect the green +, avoid the red x.", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range config.Presets {
		line := fmt.Sprintf("  %-7s %s", p, dimStyle.Render(presetBlurbs[p]))
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %-7s", p)) + " " + presetBlurbs[p]
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Select  |  Esc/Q: Quit"), m.width))
	return b.String()
}

// Selection returns the chosen preset and whether the user chose one.
func (m DifficultyModel) Selection() (config.DifficultyPreset, bool) {
	return m.selection, m.chosen
}

// centerText centers text within given width, measuring printable cells only.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunDifficultyMenu shows the difficulty picker. ok is false when the user quit.
func RunDifficultyMenu(width, height int, current config.DifficultyPreset) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewDifficultyModel(width, height, current), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, isModel := final.(DifficultyModel)
	if !isModel {
		return "", false, nil
	}
	preset, ok = m.Selection()
	return preset, ok, nil
}
