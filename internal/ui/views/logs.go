package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/johanforsgren/tokendash/internal/logger"
)

type LogsViewModel struct {
	width  int
	height int
	offset int
	active bool
	logs   []logger.LogEntry
}

var levelColors = []struct {
	prefix string
	color  lipgloss.Color
}{
	{"[ERROR]", errorColor},
	{"[HTTP]", primaryColor},
	{"[SESSION]", successColor},
	{"[FILE]", warningColor},
}

func NewLogsView() *LogsViewModel {
	return &LogsViewModel{}
}

func (m *LogsViewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Activate snapshots the log buffer and scrolls to the newest entry.
func (m *LogsViewModel) Activate() {
	m.active = true
	m.reload()
}

func (m *LogsViewModel) reload() {
	m.logs = logger.GetLogs()
	m.offset = m.maxOffset()
}

func (m *LogsViewModel) Deactivate() {
	m.active = false
	m.offset = 0
}

func (m *LogsViewModel) IsActive() bool {
	return m.active
}

func (m *LogsViewModel) visibleLines() int {
	return max(1, m.height-8)
}

func (m *LogsViewModel) maxOffset() int {
	return max(0, len(m.logs)-m.visibleLines())
}

func (m *LogsViewModel) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		m.offset = max(0, m.offset-1)
	case "down", "j":
		m.offset = min(m.maxOffset(), m.offset+1)
	case "pgup":
		m.offset = max(0, m.offset-m.visibleLines())
	case "pgdown":
		m.offset = min(m.maxOffset(), m.offset+m.visibleLines())
	case "g", "home":
		m.offset = 0
	case "G", "end":
		m.offset = m.maxOffset()
	case "r":
		m.reload()
	}
	return nil
}

func lineColor(message string) lipgloss.Color {
	for _, level := range levelColors {
		if strings.HasPrefix(message, level.prefix) {
			return level.color
		}
	}
	return lipgloss.Color("#E5E7EB")
}

func (m *LogsViewModel) View() string {
	if !m.active {
		return ""
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("会话日志 (%d 条)", len(m.logs))))
	b.WriteString("\n")

	if len(m.logs) == 0 {
		b.WriteString(HelpStyle.Render("暂无日志"))
	} else {
		end := min(len(m.logs), m.offset+m.visibleLines())
		for _, entry := range m.logs[m.offset:end] {
			lineStyle := lipgloss.NewStyle().Foreground(lineColor(entry.Message))
			b.WriteString(lineStyle.Render(fmt.Sprintf("[%s] %s", entry.Timestamp.Format("15:04:05.000"), entry.Message)))
			b.WriteString("\n")
		}
	}

	scrollInfo := ""
	if len(m.logs) > m.visibleLines() {
		scrollInfo = fmt.Sprintf(" | %d-%d / %d", m.offset+1, min(len(m.logs), m.offset+m.visibleLines()), len(m.logs))
	}
	b.WriteString(HelpStyle.Render("j/k 滚动 | PgUp/PgDn 翻页 | g/G 首/尾 | r 重新加载 | Esc 关闭" + scrollInfo))

	return BorderStyle.Width(max(0, m.width-4)).Render(b.String())
}
