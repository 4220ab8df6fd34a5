package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/johanforsgren/tokendash/internal/render"
)

type LoginViewModel struct {
	tokenInput textinput.Model
	errorText  string
	submitting bool
	width      int
	height     int
}

func NewLoginView() *LoginViewModel {
	tokenInput := textinput.New()
	tokenInput.Placeholder = render.PromptPlaceholder
	tokenInput.CharLimit = 512
	tokenInput.Width = 48
	tokenInput.EchoMode = textinput.EchoPassword
	tokenInput.EchoCharacter = '•'
	tokenInput.Focus()

	return &LoginViewModel{tokenInput: tokenInput}
}

func (m *LoginViewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 20 {
		m.tokenInput.Width = min(64, width-20)
	}
}

// SetError shows msg under the input; an empty msg clears it.
func (m *LoginViewModel) SetError(msg string) {
	m.errorText = msg
}

func (m *LoginViewModel) Error() string {
	return m.errorText
}

func (m *LoginViewModel) SetSubmitting(submitting bool) {
	m.submitting = submitting
}

func (m *LoginViewModel) Submitting() bool {
	return m.submitting
}

func (m *LoginViewModel) Value() string {
	return m.tokenInput.Value()
}

// Reset empties the input and focuses it for a fresh login.
func (m *LoginViewModel) Reset() tea.Cmd {
	m.submitting = false
	m.tokenInput.SetValue("")
	return m.tokenInput.Focus()
}

func (m *LoginViewModel) Blur() {
	m.tokenInput.Blur()
}

func (m *LoginViewModel) Update(msg tea.Msg) tea.Cmd {
	if m.submitting {
		return nil
	}
	var cmd tea.Cmd
	m.tokenInput, cmd = m.tokenInput.Update(msg)
	return cmd
}

func (m *LoginViewModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(render.AppTitle))
	b.WriteString("\n")
	b.WriteString(render.PromptToken + ": " + m.tokenInput.View())
	b.WriteString("\n\n")

	switch {
	case m.submitting:
		b.WriteString(HelpStyle.Render(render.MessageVerifying))
	case m.errorText != "":
		b.WriteString(ErrorStyle.Render(m.errorText))
	}

	box := BorderStyle.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, max(lipgloss.Height(box), m.height-12), lipgloss.Center, lipgloss.Center, box)
}
