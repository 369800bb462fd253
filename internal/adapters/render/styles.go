package render

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	cell       lipgloss.Style
	empty      lipgloss.Style
	pageLink   lipgloss.Style
	pageActive lipgloss.Style
	badge      map[string]lipgloss.Style
	detail     lipgloss.Style
	detailDim  lipgloss.Style
	card       lipgloss.Style
	cardLabel  lipgloss.Style
	cardValue  lipgloss.Style
	barFill    lipgloss.Style
	barLabel   lipgloss.Style
}

func newStyles() styles {
	badgeBase := lipgloss.NewStyle().Bold(true)

	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")),
		cell:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:      lipgloss.NewStyle().Faint(true),
		pageLink:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		pageActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		badge: map[string]lipgloss.Style{
			"daily":    badgeBase.Foreground(lipgloss.Color("40")),
			"water":    badgeBase.Foreground(lipgloss.Color("45")),
			"exercise": badgeBase.Foreground(lipgloss.Color("214")),
			"weight":   badgeBase.Foreground(lipgloss.Color("203")),
		},
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		detailDim: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 2).
			MarginRight(1),
		cardLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		cardValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		barFill:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
