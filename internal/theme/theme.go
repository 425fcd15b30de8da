package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles for the host's own chrome.
type Styles struct {
	Status      *lipgloss.Style
	StatusModal *lipgloss.Style
	StatusWarn  *lipgloss.Style
}

var defaultStyles = Styles{
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	StatusModal: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true),
	),
	StatusWarn: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Bold(true),
	),
}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
