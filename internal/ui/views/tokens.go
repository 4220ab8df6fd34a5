package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/johanforsgren/tokendash/internal/domain"
	"github.com/johanforsgren/tokendash/internal/render"
)

const (
	previewWidth   = 14
	authTypeWidth  = 10
	remainingWidth = 10
	timestampWidth = 19
	statusWidth    = 10
	minOwnerWidth  = 16
	maxOwnerWidth  = 48
)

type TokensViewModel struct {
	table   table.Model
	current domain.Table
	width   int
	height  int
}

func NewTokensView() *TokensViewModel {
	t := table.New(
		table.WithColumns(tokenColumns(minOwnerWidth)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(mutedColor).
		BorderBottom(true).
		Bold(false).
		Foreground(mutedColor)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#F59E0B")).
		Background(lipgloss.Color("#1F2937")).
		Bold(true)
	t.SetStyles(s)

	m := &TokensViewModel{table: t}
	m.SetTable(domain.Table{Kind: domain.TableEmpty, Message: render.MessageNoData})
	return m
}

func tokenColumns(ownerWidth int) []table.Column {
	return []table.Column{
		{Title: render.ColumnOwner, Width: ownerWidth},
		{Title: render.ColumnPreview, Width: previewWidth},
		{Title: render.ColumnAuthType, Width: authTypeWidth},
		{Title: render.ColumnRemaining, Width: remainingWidth},
		{Title: render.ColumnExpiresAt, Width: timestampWidth},
		{Title: render.ColumnLastUsed, Width: timestampWidth},
		{Title: render.ColumnStatus, Width: statusWidth},
	}
}

func (m *TokensViewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(1, height-12))

	// Each column carries one cell of padding on both sides.
	const cellPadding = 2 * 7
	fixed := previewWidth + authTypeWidth + remainingWidth + 2*timestampWidth + statusWidth + cellPadding
	m.table.SetColumns(tokenColumns(clamp(width-fixed, minOwnerWidth, maxOwnerWidth)))
}

// SetTable replaces the whole table. Anything other than TableRows is shown
// as a single row carrying the message.
func (m *TokensViewModel) SetTable(t domain.Table) {
	m.current = t

	var rows []table.Row
	if t.Kind == domain.TableRows {
		rows = make([]table.Row, len(t.Rows))
		for i, row := range t.Rows {
			rows[i] = table.Row{
				row.Owner,
				row.Preview,
				row.AuthType,
				row.Remaining,
				row.ExpiresAt,
				row.LastUsed,
				row.StatusLabel,
			}
		}
	} else {
		rows = []table.Row{{t.Message, "", "", "", "", "", ""}}
	}

	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) || m.table.Cursor() < 0 {
		m.table.SetCursor(0)
	}
}

func (m *TokensViewModel) Table() domain.Table {
	return m.current
}

func (m *TokensViewModel) SelectedRow() (domain.Row, bool) {
	if m.current.Kind != domain.TableRows {
		return domain.Row{}, false
	}
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.current.Rows) {
		return domain.Row{}, false
	}
	return m.current.Rows[cursor], true
}

func (m *TokensViewModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

func (m *TokensViewModel) View() string {
	var b strings.Builder
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m *TokensViewModel) footer() string {
	switch m.current.Kind {
	case domain.TableError:
		return ErrorStyle.Render(m.current.Message)
	case domain.TableRows:
		row, ok := m.SelectedRow()
		if !ok {
			return ""
		}
		badge := BadgeStyle(row.BadgeClass).Render(row.StatusLabel)
		return badge + " " + row.Owner + "  " + descStyle.Render(row.Preview+" · "+row.AuthType+" · "+render.ColumnRemaining+" "+row.Remaining)
	default:
		return ""
	}
}

var descStyle = lipgloss.NewStyle().Foreground(mutedColor)

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
