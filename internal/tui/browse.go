// Package tui is the interactive browse mode: paginated resource
// tables, debounced search, and confirmed deletion, driven by the
// same application service as the one-shot commands.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kaloritakip/kta/internal/adapters/render"
	"github.com/kaloritakip/kta/internal/application"
	"github.com/kaloritakip/kta/internal/domain"
)

var resourceTabs = []domain.Resource{domain.ResourceUsers, domain.ResourceFoods, domain.ResourceLogs}

type Model struct {
	svc *application.Service

	resource domain.Resource
	states   map[domain.Resource]*domain.PageState
	filter   domain.LogFilter

	users []domain.User
	foods []domain.Food
	logs  []domain.LogEntry

	search      textinput.Model
	searching   bool
	debounceTag int

	spin     spinner.Model
	loading  bool
	fetchGen int

	cursor        int
	confirmDelete int

	err     error
	notice  string
	expired bool

	width  int
	height int
}

// NewModel starts browsing at the given resource with fresh page
// state for every tab.
func NewModel(svc *application.Service, resource domain.Resource, filter domain.LogFilter) Model {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64
	search.Width = 24

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		svc:      svc,
		resource: resource,
		states: map[domain.Resource]*domain.PageState{
			domain.ResourceUsers: domain.NewPageState(domain.ResourceUsers),
			domain.ResourceFoods: domain.NewPageState(domain.ResourceFoods),
			domain.ResourceLogs:  domain.NewPageState(domain.ResourceLogs),
		},
		filter:   filter,
		search:   search,
		spin:     spin,
		loading:  true,
		fetchGen: 1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spin.Tick,
		loadPageCmd(m.svc, m.fetchGen, m.resource, *m.state(), 1, m.filter),
	)
}

// Expired reports whether browsing stopped because the server
// rejected the stored credential.
func (m Model) Expired() bool {
	return m.expired
}

func (m Model) state() *domain.PageState {
	return m.states[m.resource]
}

// startLoad bumps the fetch generation so responses from superseded
// requests are discarded on arrival instead of overwriting newer data.
func (m Model) startLoad(page int) (Model, tea.Cmd) {
	m.fetchGen++
	m.loading = true
	m.err = nil
	m.notice = ""
	return m, tea.Batch(
		m.spin.Tick,
		loadPageCmd(m.svc, m.fetchGen, m.resource, *m.state(), page, m.filter),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case pageLoadedMsg:
		return m.applyPageLoaded(msg)

	case deleteDoneMsg:
		return m.applyDeleteDone(msg)

	case searchDebounceMsg:
		return m.applyDebounce(msg)

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) applyPageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.fetchGen {
		// A newer request is in flight; this response is stale.
		return m, nil
	}

	m.loading = false

	if msg.err != nil {
		if errors.Is(msg.err, domain.ErrSessionExpired) {
			m.expired = true
			return m, tea.Quit
		}
		m.err = msg.err
		return m, nil
	}

	switch msg.resource {
	case domain.ResourceUsers:
		m.users = msg.users
	case domain.ResourceFoods:
		m.foods = msg.foods
	case domain.ResourceLogs:
		m.logs = msg.logs
	}
	m.state().Apply(msg.total, msg.page, msg.limit)

	if m.cursor >= m.rowCount() {
		m.cursor = 0
	}

	return m, nil
}

func (m Model) applyDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.confirmDelete = 0

	if msg.err != nil {
		if errors.Is(msg.err, domain.ErrSessionExpired) {
			m.expired = true
			return m, tea.Quit
		}
		m.err = msg.err
		return m, nil
	}

	switch msg.resource {
	case domain.ResourceUsers:
		m.users = msg.users
	case domain.ResourceFoods:
		m.foods = msg.foods
	}
	m.state().Apply(msg.total, msg.page, msg.limit)

	if m.cursor >= m.rowCount() {
		m.cursor = 0
	}
	m.notice = fmt.Sprintf("record deleted (total %s now %d)", m.resource, m.state().Total)

	return m, nil
}

func (m Model) applyDebounce(msg searchDebounceMsg) (tea.Model, tea.Cmd) {
	if msg.tag != m.debounceTag {
		// A later keystroke reset the window.
		return m, nil
	}

	term := m.search.Value()
	if term == m.state().Search {
		return m, nil
	}

	m.state().ResetToFirstPage(term)
	model, cmd := m.startLoad(1)
	return model, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if m.search.Value() != before {
		m.debounceTag++
		return m, tea.Batch(cmd, debounceCmd(m.debounceTag))
	}

	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDelete != 0 {
		switch msg.String() {
		case "y", "Y":
			m.loading = true
			return m, tea.Batch(
				m.spin.Tick,
				deleteRecordCmd(m.svc, m.resource, m.confirmDelete, *m.state()),
			)
		default:
			// Declining the confirmation is a silent no-op.
			m.confirmDelete = 0
			return m, nil
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "1", "2", "3":
		return m.switchTab(msg.String())

	case "left", "h":
		if m.state().Page > 1 {
			return m.startLoad(m.state().Page - 1)
		}

	case "right", "l":
		if m.state().Page < m.state().TotalPages() {
			return m.startLoad(m.state().Page + 1)
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}

	case "r":
		return m.startLoad(m.state().Page)

	case "/":
		if m.resource != domain.ResourceLogs {
			m.searching = true
			m.search.SetValue(m.state().Search)
			m.search.Focus()
		}

	case "d":
		if id := m.selectedID(); id != 0 && m.resource != domain.ResourceLogs {
			m.confirmDelete = id
		}
	}

	return m, nil
}

func (m Model) switchTab(key string) (tea.Model, tea.Cmd) {
	target := resourceTabs[0]
	switch key {
	case "2":
		target = resourceTabs[1]
	case "3":
		target = resourceTabs[2]
	}

	if target == m.resource {
		return m, nil
	}

	m.resource = target
	m.cursor = 0
	m.search.SetValue(m.state().Search)
	return m.startLoad(m.state().Page)
}

func (m Model) rowCount() int {
	switch m.resource {
	case domain.ResourceUsers:
		return len(m.users)
	case domain.ResourceFoods:
		return len(m.foods)
	default:
		return len(m.logs)
	}
}

// selectedID resolves the cursor row to a record id; logs are
// read-only so they never resolve.
func (m Model) selectedID() int {
	switch m.resource {
	case domain.ResourceUsers:
		if m.cursor < len(m.users) {
			return m.users[m.cursor].ID
		}
	case domain.ResourceFoods:
		if m.cursor < len(m.foods) {
			return m.foods[m.cursor].ID
		}
	}
	return 0
}

func (m Model) View() string {
	if m.expired {
		return ""
	}

	s := newBrowseStyles()
	lines := []string{m.renderTabs(s), m.renderSearchLine(s)}

	switch {
	case m.loading:
		lines = append(lines, fmt.Sprintf("%s loading %s...", m.spin.View(), m.resource))
	case m.err != nil:
		lines = append(lines, s.errorLine.Render("error: "+m.err.Error()))
	default:
		lines = append(lines, m.renderRows(s)...)
	}

	if m.confirmDelete != 0 {
		lines = append(lines, s.warning.Render(fmt.Sprintf("delete record #%d? (y/N)", m.confirmDelete)))
	}
	if m.notice != "" {
		lines = append(lines, s.notice.Render(m.notice))
	}

	lines = append(lines, m.renderFooter(s))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderTabs(s browseStyles) string {
	parts := make([]string, 0, len(resourceTabs))
	for i, tab := range resourceTabs {
		label := fmt.Sprintf("%d:%s", i+1, tab)
		if tab == m.resource {
			parts = append(parts, s.tabActive.Render(label))
			continue
		}
		parts = append(parts, s.tab.Render(label))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderSearchLine(s browseStyles) string {
	if m.resource == domain.ResourceLogs {
		return s.dim.Render("logs are read-only; filters are set from the command line")
	}
	if m.searching {
		return "search: " + m.search.View()
	}
	if term := m.state().Search; term != "" {
		return s.dim.Render("search: " + term + "  (/ to edit)")
	}
	return s.dim.Render("/ to search")
}

func (m Model) renderRows(s browseStyles) []string {
	count := m.rowCount()
	if m.state().Total == 0 || count == 0 {
		return []string{s.dim.Render(fmt.Sprintf("No %s found.", m.resource))}
	}

	rows := make([]string, 0, count)
	for i := 0; i < count; i++ {
		line := m.rowLabel(i)
		if i == m.cursor {
			rows = append(rows, s.cursor.Render("> "+line))
			continue
		}
		rows = append(rows, s.row.Render("  "+line))
	}
	return rows
}

func (m Model) rowLabel(i int) string {
	switch m.resource {
	case domain.ResourceUsers:
		user := m.users[i]
		name := "-"
		if user.Name != nil && *user.Name != "" {
			name = *user.Name
		}
		return fmt.Sprintf("#%-5d %-20s %s", user.ID, name, user.Email)
	case domain.ResourceFoods:
		food := m.foods[i]
		return fmt.Sprintf("#%-5d %-24s %g kcal", food.ID, food.Name, food.Calories)
	default:
		entry := m.logs[i]
		return fmt.Sprintf("%-9s %-20s %s", entry.LogType, logOwner(entry), render.LogDetail(entry))
	}
}

func logOwner(entry domain.LogEntry) string {
	if entry.Name != nil && *entry.Name != "" {
		return *entry.Name
	}
	if entry.Email != nil && *entry.Email != "" {
		return *entry.Email
	}
	return fmt.Sprintf("User #%d", entry.UserID)
}

func (m Model) renderFooter(s browseStyles) string {
	state := m.state()
	position := fmt.Sprintf("page %d/%d  total %d", state.Page, max(state.TotalPages(), 1), state.Total)
	keys := "←/→ page  ↑/↓ row  / search  d delete  r reload  q quit"
	if m.resource == domain.ResourceLogs {
		keys = "←/→ page  ↑/↓ row  r reload  q quit"
	}
	return s.dim.Render(position + "  |  " + keys)
}

// Run drives the browse session to completion and reports whether it
// ended because the session expired.
func Run(svc *application.Service, resource domain.Resource, filter domain.LogFilter) (bool, error) {
	p := tea.NewProgram(NewModel(svc, resource, filter))

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	final, ok := finalModel.(Model)
	if !ok {
		return false, fmt.Errorf("unexpected final browse model type %T", finalModel)
	}

	return final.Expired(), nil
}
