package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kaloritakip/kta/internal/domain"
)

// placeholder replaces absent optional fields so a nil value is never
// printed literally.
const placeholder = "-"

// Users renders one page of the users table with its page controls.
func Users(users []domain.User, state *domain.PageState) (string, error) {
	return run(func(s styles) string {
		return renderUserTable(users, state, s)
	})
}

// Foods renders one page of the foods table with its page controls.
func Foods(foods []domain.Food, state *domain.PageState) (string, error) {
	return run(func(s styles) string {
		return renderFoodTable(foods, state, s)
	})
}

// Logs renders one page of the activity-log table. Log rows carry no
// action hints; the detail column is the tagged-union rendering.
func Logs(logs []domain.LogEntry, state *domain.PageState) (string, error) {
	return run(func(s styles) string {
		return renderLogTable(logs, state, s)
	})
}

func renderUserTable(users []domain.User, state *domain.PageState, s styles) string {
	lines := []string{s.title.Render("Users")}

	if state.Total == 0 || len(users) == 0 {
		lines = append(lines, s.empty.Render("No users found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.header.Render(fmt.Sprintf(
		"%-5s %-20s %-28s %-4s %-8s %-7s %-12s %s",
		"ID", "Name", "Email", "Age", "Gender", "Weight", "Goal", "Joined",
	)))

	for _, user := range users {
		lines = append(lines, s.cell.Render(fmt.Sprintf(
			"%-5d %-20s %-28s %-4s %-8s %-7s %-12s %s",
			user.ID,
			truncate(strOrDash(user.Name), 20),
			truncate(user.Email, 28),
			intOrDash(user.Age),
			strOrDash(user.Gender),
			floatOrDash(user.Weight),
			truncate(strOrDash(user.Goal), 12),
			dateOnly(user.CreatedAt),
		)))
	}

	if controls := PageControls(state, s); controls != "" {
		lines = append(lines, controls)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderFoodTable(foods []domain.Food, state *domain.PageState, s styles) string {
	lines := []string{s.title.Render("Foods")}

	if state.Total == 0 || len(foods) == 0 {
		lines = append(lines, s.empty.Render("No foods found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.header.Render(fmt.Sprintf(
		"%-5s %-24s %-8s %-8s %-8s %-6s %-10s %s",
		"ID", "Name", "Kcal", "Protein", "Carbs", "Fat", "Serving", "Category",
	)))

	for _, food := range foods {
		lines = append(lines, s.cell.Render(fmt.Sprintf(
			"%-5d %-24s %-8s %-8s %-8s %-6s %-10s %s",
			food.ID,
			truncate(food.Name, 24),
			formatAmount(food.Calories),
			formatAmount(food.Protein),
			formatAmount(food.Carbs),
			formatAmount(food.Fat),
			truncate(strOrDash(food.ServingSize), 10),
			strOrDash(food.Category),
		)))
	}

	if controls := PageControls(state, s); controls != "" {
		lines = append(lines, controls)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderLogTable(logs []domain.LogEntry, state *domain.PageState, s styles) string {
	lines := []string{s.title.Render("Activity Logs")}

	if state.Total == 0 || len(logs) == 0 {
		lines = append(lines, s.empty.Render("No logs found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.header.Render(fmt.Sprintf(
		"%-10s %-24s %-12s %s",
		"Type", "User", "Date", "Detail",
	)))

	for _, entry := range logs {
		badge, ok := s.badge[string(entry.LogType)]
		if !ok {
			badge = s.detailDim
		}

		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			badge.Render(fmt.Sprintf("%-10s", logTypeLabel(entry.LogType))),
			s.cell.Render(fmt.Sprintf(" %-24s %-12s ", truncate(logUserLabel(entry), 24), strOrDash(entry.Date))),
			s.detail.Render(LogDetail(entry)),
		))
	}

	if controls := PageControls(state, s); controls != "" {
		lines = append(lines, controls)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// LogDetail renders the variant-specific column of a log row. The
// branch is exhaustive over the known tags; an unrecognized tag is a
// display-only gap, not an error.
func LogDetail(entry domain.LogEntry) string {
	switch entry.LogType {
	case domain.LogTypeDaily:
		detail := fmt.Sprintf("%s: %s - %s kcal",
			strOrDefault(entry.MealType, "Meal"),
			strOrDefault(entry.FoodName, "Unknown"),
			formatAmountPtr(entry.Calories),
		)
		if entry.Quantity != nil && *entry.Quantity > 1 {
			detail += fmt.Sprintf(" x%s", formatAmount(*entry.Quantity))
		}
		if entry.Protein != nil || entry.Carbs != nil || entry.Fat != nil {
			detail += fmt.Sprintf(" (P %sg, C %sg, F %sg)",
				formatAmountPtr(entry.Protein),
				formatAmountPtr(entry.Carbs),
				formatAmountPtr(entry.Fat),
			)
		}
		return detail
	case domain.LogTypeWater:
		return fmt.Sprintf("%s ml", formatAmountPtr(entry.Amount))
	case domain.LogTypeExercise:
		detail := strOrDefault(entry.ExerciseName, "Unknown")
		if entry.Duration != nil {
			detail += fmt.Sprintf(", %s min", formatAmount(*entry.Duration))
		}
		if entry.CaloriesBurned != nil {
			detail += fmt.Sprintf(", %s kcal burned", formatAmount(*entry.CaloriesBurned))
		}
		return detail
	case domain.LogTypeWeight:
		return fmt.Sprintf("%s kg", formatAmountPtr(entry.Weight))
	default:
		return ""
	}
}

func logTypeLabel(logType domain.LogType) string {
	switch logType {
	case domain.LogTypeDaily:
		return "food"
	case domain.LogTypeWater:
		return "water"
	case domain.LogTypeExercise:
		return "exercise"
	case domain.LogTypeWeight:
		return "weight"
	default:
		return string(logType)
	}
}

func logUserLabel(entry domain.LogEntry) string {
	if entry.Name != nil && *entry.Name != "" {
		return *entry.Name
	}
	if entry.Email != nil && *entry.Email != "" {
		return *entry.Email
	}
	return fmt.Sprintf("User #%d", entry.UserID)
}

// PageControls renders one numbered control per page when there is
// more than one page, marking the current page active. A zero total
// suppresses the controls entirely.
func PageControls(state *domain.PageState, s styles) string {
	if state.Total == 0 {
		return ""
	}

	totalPages := state.TotalPages()
	if totalPages <= 1 {
		return ""
	}

	parts := make([]string, 0, totalPages)
	for page := 1; page <= totalPages; page++ {
		label := strconv.Itoa(page)
		if page == state.Page {
			parts = append(parts, s.pageActive.Render("["+label+"]"))
			continue
		}
		parts = append(parts, s.pageLink.Render(label))
	}

	return "pages: " + strings.Join(parts, " ")
}

func strOrDash(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return placeholder
	}
	return *value
}

func strOrDefault(value *string, fallback string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return fallback
	}
	return *value
}

func intOrDash(value *int) string {
	if value == nil {
		return placeholder
	}
	return strconv.Itoa(*value)
}

func floatOrDash(value *float64) string {
	if value == nil {
		return placeholder
	}
	return formatAmount(*value)
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatAmountPtr(value *float64) string {
	if value == nil {
		return "0"
	}
	return formatAmount(*value)
}

func dateOnly(timestamp string) string {
	trimmed := strings.TrimSpace(timestamp)
	if trimmed == "" {
		return placeholder
	}
	if len(trimmed) > 10 {
		return trimmed[:10]
	}
	return trimmed
}

func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
