package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type CommandBarModel struct {
	textInput textinput.Model
	width     int
	active    bool
}

// NewCommandBar offers the given command names as tab completions.
func NewCommandBar(suggestions []string) *CommandBarModel {
	ti := textinput.New()
	ti.Placeholder = ":refresh"
	ti.CharLimit = 64
	ti.Width = 50
	ti.ShowSuggestions = len(suggestions) > 0
	ti.SetSuggestions(suggestions)

	return &CommandBarModel{
		textInput: ti,
	}
}

func (m *CommandBarModel) SetWidth(width int) {
	m.width = width
	if width > 10 {
		m.textInput.Width = width - 10
	}
}

func (m *CommandBarModel) Activate() {
	m.active = true
	m.textInput.Focus()
	m.textInput.SetValue(":")
	m.textInput.CursorEnd()
}

func (m *CommandBarModel) Deactivate() {
	m.active = false
	m.textInput.Blur()
	m.textInput.SetValue("")
}

func (m *CommandBarModel) IsActive() bool {
	return m.active
}

func (m *CommandBarModel) Value() string {
	return m.textInput.Value()
}

func (m *CommandBarModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}

var commandBarStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#F9FAFB")).
	Background(lipgloss.Color("#1F2937")).
	Border(lipgloss.NormalBorder(), true, false, false, false).
	BorderForeground(lipgloss.Color("#0EA5E9"))

func (m *CommandBarModel) View() string {
	if !m.active {
		return ""
	}
	return commandBarStyle.Width(m.width).Render(" " + m.textInput.View())
}
