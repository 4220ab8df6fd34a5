package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/johanforsgren/tokendash/internal/render"
)

var (
	primaryColor   = lipgloss.Color("#0EA5E9")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	warningColor   = lipgloss.Color("#F59E0B")
	mutedColor     = lipgloss.Color("#6B7280")
	exhaustedColor = lipgloss.Color("#A855F7")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			MarginTop(1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	badgeBase = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	badgeStyles = map[string]lipgloss.Style{
		render.BadgeExpired:   badgeBase.Foreground(lipgloss.Color("#F9FAFB")).Background(errorColor),
		render.BadgeExhausted: badgeBase.Foreground(lipgloss.Color("#F9FAFB")).Background(exhaustedColor),
		render.BadgeLow:       badgeBase.Foreground(lipgloss.Color("#111827")).Background(warningColor),
		render.BadgeActive:    badgeBase.Foreground(lipgloss.Color("#111827")).Background(successColor),
	}
)

// BadgeStyle returns the style for a row's badge class. Unknown classes
// fall back to a muted badge.
func BadgeStyle(class string) lipgloss.Style {
	if style, ok := badgeStyles[class]; ok {
		return style
	}
	return badgeBase.Foreground(mutedColor)
}
