package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kaloritakip/kta/internal/domain"
)

const activityBarWidth = 32

// DashboardOptions carry the render clock; the trailing-window label
// is relative to Now.
type DashboardOptions struct {
	Now time.Time
}

// Dashboard renders the four summary cards and the active-user
// activity chart. The whole view is rebuilt from scratch on every
// call; nothing is retained between renders.
func Dashboard(stats domain.Stats, opts DashboardOptions) (string, error) {
	return run(func(s styles) string {
		return renderDashboard(stats, opts, s)
	})
}

func renderDashboard(stats domain.Stats, opts DashboardOptions, s styles) string {
	cards := lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderCard(s, "Total Users", stats.TotalUsers),
		renderCard(s, "Total Foods", stats.TotalFoods),
		renderCard(s, "Today's Logs", stats.TodayLogs),
		renderCard(s, "Active Users", stats.ActiveUsers),
	)

	lines := []string{
		s.title.Render("Dashboard"),
		cards,
		s.header.Render("Daily active users"),
	}
	lines = append(lines, renderActivityChart(stats.ActivityData, opts, s)...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCard(s styles, label string, value int) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		s.cardValue.Render(strconv.Itoa(value)),
		s.cardLabel.Render(label),
	)
	return s.card.Render(content)
}

// renderActivityChart draws the time series as horizontal bars scaled
// to the busiest day.
func renderActivityChart(points []domain.ActivityPoint, opts DashboardOptions, s styles) []string {
	if len(points) == 0 {
		return []string{s.empty.Render("No activity recorded.")}
	}

	maxCount := 0
	for _, point := range points {
		if point.Count > maxCount {
			maxCount = point.Count
		}
	}

	lines := make([]string, 0, len(points))
	for _, point := range points {
		width := 0
		if maxCount > 0 {
			width = point.Count * activityBarWidth / maxCount
		}
		if point.Count > 0 && width == 0 {
			width = 1
		}

		bar := s.barFill.Render(strings.Repeat("█", width))
		label := s.barLabel.Render(fmt.Sprintf("%-11s", chartDateLabel(point.Date, opts.Now)))
		count := s.cell.Render(fmt.Sprintf(" %d", point.Count))

		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, bar, count))
	}

	return lines
}

func chartDateLabel(date string, now time.Time) string {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return date
	}

	label := parsed.Format("02 Jan")
	if !now.IsZero() && parsed.Year() == now.Year() && parsed.YearDay() == now.YearDay() {
		label += " *"
	}
	return label
}
