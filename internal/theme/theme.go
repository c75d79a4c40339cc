package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Border       *lipgloss.Style
	PanelTitle   *lipgloss.Style
	ListItem     *lipgloss.Style
	SelectedItem *lipgloss.Style
	Message      *lipgloss.Style
	Input        *lipgloss.Style
	Cursor       *lipgloss.Style
}

var defaultStyles = Styles{
	Border: ptr(
		lipgloss.NewStyle(),
	),
	PanelTitle: ptr(
		lipgloss.NewStyle(),
	),
	ListItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Background(lipgloss.Color("15")).Bold(true),
	),
	Message: ptr(
		lipgloss.NewStyle(),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
