package components

import (
	"github.com/charmbracelet/lipgloss"
)

type StatusBarModel struct {
	width   int
	message string
	isError bool
}

var (
	statusInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(lipgloss.Color("#374151"))
	statusErrorStyle = statusInfoStyle.
				Background(lipgloss.Color("#991B1B"))
)

func NewStatusBar() *StatusBarModel {
	return &StatusBarModel{}
}

func (m *StatusBarModel) SetWidth(width int) {
	m.width = width
}

func (m *StatusBarModel) SetMessage(message string, isError bool) {
	m.message = message
	m.isError = isError
}

func (m *StatusBarModel) ClearMessage() {
	m.message = ""
	m.isError = false
}

func (m *StatusBarModel) Message() (string, bool) {
	return m.message, m.isError
}

// View pads to the full width and cuts overlong messages by display
// cells, so wide characters are never split.
func (m *StatusBarModel) View() string {
	style := statusInfoStyle
	if m.isError {
		style = statusErrorStyle
	}
	if m.width <= 0 {
		return style.Render(" " + m.message)
	}
	return style.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(" " + m.message)
}
