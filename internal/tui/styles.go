package tui

import "github.com/charmbracelet/lipgloss"

type browseStyles struct {
	tab       lipgloss.Style
	tabActive lipgloss.Style
	row       lipgloss.Style
	cursor    lipgloss.Style
	dim       lipgloss.Style
	errorLine lipgloss.Style
	warning   lipgloss.Style
	notice    lipgloss.Style
}

func newBrowseStyles() browseStyles {
	return browseStyles{
		tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		tabActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		row:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		dim:       lipgloss.NewStyle().Faint(true),
		errorLine: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	}
}
