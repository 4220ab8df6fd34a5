package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/johanforsgren/tokendash/internal/domain"
	"github.com/johanforsgren/tokendash/internal/logger"
	"github.com/johanforsgren/tokendash/internal/render"
	"github.com/johanforsgren/tokendash/internal/ui/components"
	"github.com/johanforsgren/tokendash/internal/ui/views"
)

// Controller is what the model drives. Every call is made from a tea.Cmd,
// never from Update, because the controller renders back through the
// program synchronously.
type Controller interface {
	Context() context.Context
	RestoreSession(ctx context.Context) error
	SubmitLogin(ctx context.Context, text string) error
	Refresh(ctx context.Context) error
	ToggleAutoRefresh() bool
	Logout()
}

type Model struct {
	screen      domain.Screen
	width       int
	height      int
	topBar      *components.TopBarModel
	statusBar   *components.StatusBarModel
	commandBar  *components.CommandBarModel
	loginView   *views.LoginViewModel
	tokensView  *views.TokensViewModel
	logsView    *views.LogsViewModel
	controller  Controller
	keyRegistry *KeyRegistry
}

func NewModel(controller Controller) Model {
	m := Model{
		screen:      domain.ScreenLogin,
		topBar:      components.NewTopBar(),
		statusBar:   components.NewStatusBar(),
		commandBar:  components.NewCommandBar(CommandNames),
		loginView:   views.NewLoginView(),
		tokensView:  views.NewTokensView(),
		logsView:    views.NewLogsView(),
		controller:  controller,
		keyRegistry: NewKeyRegistry(),
	}
	m.updateShortcuts()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.restoreSession())
}

func (m Model) isInInputMode() bool {
	return m.commandBar.IsActive() || m.logsView.IsActive()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.topBar.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.commandBar.SetWidth(msg.Width)
		m.loginView.SetSize(msg.Width, msg.Height)
		m.tokensView.SetSize(msg.Width, msg.Height)
		m.logsView.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case showViewMsg:
		m.screen = msg.screen
		m.logsView.Deactivate()
		m.commandBar.Deactivate()
		m.updateShortcuts()
		if m.screen == domain.ScreenLogin {
			m.topBar.SetLoggedIn(false)
			m.topBar.SetLastUpdated("")
			return m, m.loginView.Reset()
		}
		m.topBar.SetLoggedIn(true)
		m.loginView.Blur()
		return m, nil

	case loginErrorMsg:
		m.loginView.SetError(msg.text)
		return m, nil

	case tableMsg:
		m.tokensView.SetTable(msg.table)
		return m, nil

	case summaryMsg:
		m.topBar.SetSummary(render.FormatCount(msg.summary.Total), render.FormatCount(msg.summary.Active))
		return m, nil

	case lastUpdatedMsg:
		m.topBar.SetLastUpdated(render.FormatTime(msg.at))
		return m, nil

	case autoRefreshMsg:
		m.topBar.SetAutoRefresh(msg.enabled)
		return m, nil

	case actionDoneMsg:
		return m.handleActionDone(msg)
	}

	return m, m.updateCurrentView(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return handleQuitKey(m)
	}

	if m.isInInputMode() {
		if m.commandBar.IsActive() {
			switch key {
			case "enter":
				return m.handleCommand()
			case "esc":
				m.commandBar.Deactivate()
				return m, nil
			default:
				return m, m.commandBar.Update(msg)
			}
		}

		switch key {
		case "esc", "q":
			m.logsView.Deactivate()
			return m, nil
		default:
			return m, m.logsView.Update(msg)
		}
	}

	if newModel, cmd, handled := m.keyRegistry.HandleKey(m, key); handled {
		return newModel, cmd
	}
	return m, m.updateCurrentView(msg)
}

func (m Model) updateCurrentView(msg tea.Msg) tea.Cmd {
	if m.screen == domain.ScreenLogin {
		return m.loginView.Update(msg)
	}
	return m.tokensView.Update(msg)
}

func (m Model) View() string {
	if m.width == 0 {
		return render.MessageLoading
	}

	var content string
	switch {
	case m.logsView.IsActive():
		content = m.logsView.View()
	case m.screen == domain.ScreenLogin:
		content = m.loginView.View()
	default:
		content = m.tokensView.View()
	}

	topBar := m.topBar.View()
	if commandBar := m.commandBar.View(); commandBar != "" {
		return topBar + "\n" + content + "\n" + commandBar
	}
	return topBar + "\n" + content + "\n" + m.statusBar.View()
}

func (m Model) handleCommand() (tea.Model, tea.Cmd) {
	input := m.commandBar.Value()
	m.commandBar.Deactivate()

	command := ParseCommand(input)
	if command.Type == CommandUnknown && command.Name == "" {
		return m, nil
	}
	return m.executeCommand(command)
}

func (m Model) updateShortcuts() {
	m.topBar.SetView(screenName(m.screen))
	m.topBar.SetShortcuts(m.keyRegistry.Shortcuts(m.screen))
}

func screenName(screen domain.Screen) string {
	if screen == domain.ScreenDashboard {
		return "dashboard"
	}
	return "login"
}

type action int

const (
	actionRestore action = iota
	actionLogin
	actionRefresh
	actionToggleAuto
	actionLogout
)

type actionDoneMsg struct {
	action  action
	err     error
	enabled bool
}

func (m Model) handleActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	switch msg.action {
	case actionLogin:
		m.loginView.SetSubmitting(false)
		if msg.err == nil {
			m.statusBar.ClearMessage()
		}
	case actionRefresh:
		switch {
		case msg.err == nil:
			m.statusBar.SetMessage(render.StatusRefreshed, false)
		case errors.Is(msg.err, domain.ErrSessionExpired):
			m.statusBar.SetMessage(render.MessageInvalidToken, true)
		default:
			m.statusBar.SetMessage(render.LoadErrorTable(msg.err).Message, true)
		}
	case actionToggleAuto:
		if msg.enabled {
			m.statusBar.SetMessage(render.StatusAutoOn, false)
		} else {
			m.statusBar.SetMessage(render.StatusAutoOff, false)
		}
	case actionLogout:
		m.statusBar.SetMessage(render.StatusLoggedOut, false)
	}
	return m, nil
}

func (m Model) restoreSession() tea.Cmd {
	ctrl := m.controller
	return func() tea.Msg {
		err := ctrl.RestoreSession(ctrl.Context())
		return actionDoneMsg{action: actionRestore, err: err}
	}
}

func (m Model) submitLogin(text string) tea.Cmd {
	ctrl := m.controller
	return func() tea.Msg {
		err := ctrl.SubmitLogin(ctrl.Context(), text)
		return actionDoneMsg{action: actionLogin, err: err}
	}
}

func (m Model) refresh() tea.Cmd {
	ctrl := m.controller
	return func() tea.Msg {
		err := ctrl.Refresh(ctrl.Context())
		return actionDoneMsg{action: actionRefresh, err: err}
	}
}

func (m Model) toggleAutoRefresh() tea.Cmd {
	ctrl := m.controller
	return func() tea.Msg {
		return actionDoneMsg{action: actionToggleAuto, enabled: ctrl.ToggleAutoRefresh()}
	}
}

func (m Model) logout() tea.Cmd {
	ctrl := m.controller
	return func() tea.Msg {
		ctrl.Logout()
		return actionDoneMsg{action: actionLogout}
	}
}

func helpText() string {
	return render.StatusHelp
}

func unknownCommandText(name string) string {
	if name == "" {
		name = "?"
	}
	logger.Log("UI: Unknown command %q", name)
	return fmt.Sprintf(render.StatusUnknownCommand, name)
}
