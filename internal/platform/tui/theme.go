package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles used outside the game screen.
type Theme struct {
	MenuTitle       lipgloss.Style
	MenuDescription lipgloss.Style
	Warning         lipgloss.Style
	TableHeader     lipgloss.Style
	TableSelected   lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Warning:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
	}
}

// centerText pads text so it appears centred in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
