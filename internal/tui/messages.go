package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kaloritakip/kta/internal/application"
	"github.com/kaloritakip/kta/internal/domain"
)

// searchDebounceWindow is the idle time after the last search
// keystroke before a reload fires. Only the final keystroke within
// the window triggers a fetch.
const searchDebounceWindow = 500 * time.Millisecond

type pageLoadedMsg struct {
	gen      int
	resource domain.Resource
	users    []domain.User
	foods    []domain.Food
	logs     []domain.LogEntry
	total    int
	page     int
	limit    int
	err      error
}

type deleteDoneMsg struct {
	resource domain.Resource
	users    []domain.User
	foods    []domain.Food
	stats    domain.Stats
	total    int
	page     int
	limit    int
	err      error
}

type searchDebounceMsg struct {
	tag int
}

// loadPageCmd fetches into a private copy of the page state; the
// command goroutine never touches the state the event loop owns. The
// server's envelope rides back in the message and is applied by Update
// only while the response's generation is still current.
func loadPageCmd(svc *application.Service, gen int, resource domain.Resource, state domain.PageState, page int, filter domain.LogFilter) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		msg := pageLoadedMsg{gen: gen, resource: resource}

		switch resource {
		case domain.ResourceUsers:
			msg.users, msg.err = svc.LoadUsers(ctx, &state, page)
		case domain.ResourceFoods:
			msg.foods, msg.err = svc.LoadFoods(ctx, &state, page)
		case domain.ResourceLogs:
			msg.logs, msg.err = svc.LoadLogs(ctx, &state, page, filter)
		}

		msg.total, msg.page, msg.limit = state.Total, state.Page, state.Limit
		return msg
	}
}

func deleteRecordCmd(svc *application.Service, resource domain.Resource, id int, state domain.PageState) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		msg := deleteDoneMsg{resource: resource}

		switch resource {
		case domain.ResourceUsers:
			refreshed, err := svc.DeleteUser(ctx, id, &state)
			msg.users, msg.stats, msg.err = refreshed.Users, refreshed.Stats, err
		case domain.ResourceFoods:
			refreshed, err := svc.DeleteFood(ctx, id, &state)
			msg.foods, msg.stats, msg.err = refreshed.Foods, refreshed.Stats, err
		}

		msg.total, msg.page, msg.limit = state.Total, state.Page, state.Limit
		return msg
	}
}

func debounceCmd(tag int) tea.Cmd {
	return tea.Tick(searchDebounceWindow, func(time.Time) tea.Msg {
		return searchDebounceMsg{tag: tag}
	})
}
