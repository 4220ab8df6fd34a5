package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/johanforsgren/tokendash/internal/render"
)

type TopBarModel struct {
	width       int
	loggedIn    bool
	total       string
	active      string
	lastUpdated string
	autoRefresh bool
	currentView string
	shortcuts   []string
}

var (
	titleStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleAccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	valueWhiteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	valueOnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	shortcutBlueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	descGrayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
)

func NewTopBar() *TopBarModel {
	return &TopBarModel{total: "0", active: "0"}
}

func (m *TopBarModel) SetWidth(width int) {
	m.width = width
}

func (m *TopBarModel) SetLoggedIn(loggedIn bool) {
	m.loggedIn = loggedIn
	if !loggedIn {
		m.total, m.active = "0", "0"
		m.autoRefresh = false
	}
}

// SetSummary takes counts already formatted for display.
func (m *TopBarModel) SetSummary(total, active string) {
	m.total = total
	m.active = active
}

func (m *TopBarModel) SetLastUpdated(stamp string) {
	m.lastUpdated = stamp
}

func (m *TopBarModel) SetAutoRefresh(enabled bool) {
	m.autoRefresh = enabled
}

func (m *TopBarModel) SetView(view string) {
	m.currentView = view
}

func (m *TopBarModel) SetShortcuts(shortcuts []string) {
	m.shortcuts = shortcuts
}

func (m *TopBarModel) View() string {
	titleLine := titleAccentStyle.Render(render.AppTitle)

	contextLines := m.buildContextInfo()
	shortcutCol1, shortcutCol2, col1Width := m.buildShortcutsDisplay(len(contextLines))

	var topSection []string
	topSection = append(topSection, titleLine)
	topSection = append(topSection, "")

	const contextColWidth = 40
	const colMargin = 4

	for i := 0; i < len(contextLines); i++ {
		var sc1, sc2 string
		if i < len(shortcutCol1) {
			sc1 = shortcutCol1[i]
		}
		if i < len(shortcutCol2) {
			sc2 = shortcutCol2[i]
		}

		contextCol := contextLines[i]
		padding1 := max(1, contextColWidth-lipgloss.Width(contextCol))
		line := contextCol + strings.Repeat(" ", padding1) + sc1

		if sc2 != "" {
			padding2 := max(colMargin, col1Width-lipgloss.Width(sc1)+colMargin)
			line += strings.Repeat(" ", padding2) + sc2
		}

		topSection = append(topSection, line)
	}

	return titleStyle.Width(m.width).Render(strings.Join(topSection, "\n"))
}

func (m *TopBarModel) buildContextInfo() []string {
	session := render.LabelLoggedOut
	if m.loggedIn {
		session = render.LabelLoggedIn
	}

	lines := []string{
		"🔑 " + titleAccentStyle.Render(render.LabelSession+": ") + valueWhiteStyle.Render(session),
	}

	if m.loggedIn {
		updated := m.lastUpdated
		if updated == "" {
			updated = render.Placeholder
		}

		auto := valueWhiteStyle.Render(render.LabelOff)
		if m.autoRefresh {
			auto = valueOnStyle.Render(render.LabelOn)
		}

		lines = append(lines,
			"📊 "+titleAccentStyle.Render(render.LabelTotal+": ")+valueWhiteStyle.Render(m.total),
			"✅ "+titleAccentStyle.Render(render.LabelActiveCount+": ")+valueWhiteStyle.Render(m.active),
			"🕒 "+titleAccentStyle.Render(render.LabelLastUpdated+": ")+valueWhiteStyle.Render(updated),
			"🔁 "+titleAccentStyle.Render(render.LabelAutoRefresh+": ")+auto,
		)
	}

	const minContextLines = 5
	for len(lines) < minContextLines {
		lines = append(lines, "")
	}
	return lines
}

// buildShortcutsDisplay splits "<key> desc" entries into at most two
// columns of contextHeight rows.
func (m *TopBarModel) buildShortcutsDisplay(contextHeight int) ([]string, []string, int) {
	var formatted []string
	maxWidth := 0

	for _, shortcut := range m.shortcuts {
		parts := strings.SplitN(shortcut, ">", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimPrefix(parts[0], "<")
		desc := strings.TrimSpace(parts[1])

		entry := shortcutBlueStyle.Render("<"+key+">") + " " + descGrayStyle.Render(desc)
		formatted = append(formatted, entry)
		maxWidth = max(maxWidth, lipgloss.Width(entry))
	}

	if len(formatted) <= contextHeight {
		return formatted, nil, maxWidth
	}
	return formatted[:contextHeight], formatted[contextHeight:], maxWidth
}
