package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/johanforsgren/tokendash/internal/domain"
	"github.com/johanforsgren/tokendash/internal/logger"
)

type CommandType int

const (
	CommandUnknown CommandType = iota
	CommandQuit
	CommandRefresh
	CommandAuto
	CommandLogout
	CommandLogs
	CommandHelp
)

type Command struct {
	Type CommandType
	Name string
	Args []string
}

// CommandNames feeds the command bar's suggestions.
var CommandNames = []string{":refresh", ":auto", ":logout", ":logs", ":help", ":quit"}

func ParseCommand(input string) Command {
	input = strings.TrimSpace(input)

	if !strings.HasPrefix(input, ":") {
		return Command{Type: CommandUnknown, Name: input}
	}

	input = strings.TrimPrefix(input, ":")
	parts := strings.Fields(input)

	if len(parts) == 0 {
		return Command{Type: CommandUnknown}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "q", "quit":
		return Command{Type: CommandQuit, Name: cmd, Args: args}
	case "r", "refresh":
		return Command{Type: CommandRefresh, Name: cmd, Args: args}
	case "a", "auto":
		return Command{Type: CommandAuto, Name: cmd, Args: args}
	case "logout":
		return Command{Type: CommandLogout, Name: cmd, Args: args}
	case "logs":
		return Command{Type: CommandLogs, Name: cmd, Args: args}
	case "h", "help":
		return Command{Type: CommandHelp, Name: cmd, Args: args}
	default:
		return Command{Type: CommandUnknown, Name: cmd, Args: args}
	}
}

type keyHandler func(m Model) (Model, tea.Cmd)

type keyBinding struct {
	key     string
	desc    string
	handler keyHandler
}

// KeyRegistry maps dashboard keys to handlers and keeps the top bar's
// shortcut list in the same order they are declared.
type KeyRegistry struct {
	bindings map[domain.Screen][]keyBinding
}

func NewKeyRegistry() *KeyRegistry {
	return &KeyRegistry{
		bindings: map[domain.Screen][]keyBinding{
			domain.ScreenLogin: {
				{key: "enter", desc: "登录", handler: handleSubmitKey},
				{key: "ctrl+c", desc: "退出", handler: handleQuitKey},
			},
			domain.ScreenDashboard: {
				{key: "r", desc: "刷新", handler: handleRefreshKey},
				{key: "a", desc: "自动刷新", handler: handleAutoKey},
				{key: "o", desc: "退出登录", handler: handleLogoutKey},
				{key: "L", desc: "日志", handler: handleLogsKey},
				{key: ":", desc: "命令", handler: handleCommandKey},
				{key: "q", desc: "退出", handler: handleQuitKey},
			},
		},
	}
}

func (r *KeyRegistry) HandleKey(m Model, key string) (Model, tea.Cmd, bool) {
	for _, binding := range r.bindings[m.screen] {
		if binding.key == key {
			newModel, cmd := binding.handler(m)
			return newModel, cmd, true
		}
	}
	return m, nil, false
}

func (r *KeyRegistry) Shortcuts(screen domain.Screen) []string {
	var shortcuts []string
	for _, binding := range r.bindings[screen] {
		shortcuts = append(shortcuts, "<"+binding.key+"> "+binding.desc)
	}
	return shortcuts
}

func (m Model) executeCommand(command Command) (Model, tea.Cmd) {
	logger.Log("UI: Executing command: %s %v", command.Name, command.Args)

	switch command.Type {
	case CommandQuit:
		return handleQuitKey(m)
	case CommandRefresh:
		return handleRefreshKey(m)
	case CommandAuto:
		return handleAutoKey(m)
	case CommandLogout:
		return handleLogoutKey(m)
	case CommandLogs:
		return handleLogsKey(m)
	case CommandHelp:
		m.statusBar.SetMessage(helpText(), false)
		return m, nil
	default:
		m.statusBar.SetMessage(unknownCommandText(command.Name), true)
		return m, nil
	}
}

func handleSubmitKey(m Model) (Model, tea.Cmd) {
	if m.loginView.Submitting() {
		return m, nil
	}
	m.loginView.SetSubmitting(true)
	return m, m.submitLogin(m.loginView.Value())
}

func handleRefreshKey(m Model) (Model, tea.Cmd) {
	return m, m.refresh()
}

func handleAutoKey(m Model) (Model, tea.Cmd) {
	return m, m.toggleAutoRefresh()
}

func handleLogoutKey(m Model) (Model, tea.Cmd) {
	return m, m.logout()
}

func handleLogsKey(m Model) (Model, tea.Cmd) {
	m.logsView.Activate()
	return m, nil
}

func handleCommandKey(m Model) (Model, tea.Cmd) {
	m.commandBar.Activate()
	return m, nil
}

func handleQuitKey(m Model) (Model, tea.Cmd) {
	logger.Log("UI: Quit requested")
	return m, tea.Quit
}
