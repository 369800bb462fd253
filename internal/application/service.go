// Package application coordinates the list views with the remote
// admin API: per-resource page state, the session guard, and the
// refresh protocol that keeps tables and the dashboard summary
// consistent after mutations.
package application

import (
	"context"
	"fmt"

	"github.com/kaloritakip/kta/internal/domain"
	"github.com/kaloritakip/kta/internal/ports"
)

type Service struct {
	gateway ports.AdminGateway
	session *Session
	clock   ports.Clock
}

func NewService(gateway ports.AdminGateway, session *Session, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		gateway: gateway,
		session: session,
		clock:   clock,
	}
}

func (s *Service) Session() *Session {
	return s.session
}

// Login authenticates the operator and persists the credential so
// later invocations start logged in.
func (s *Service) Login(ctx context.Context, email, password string) error {
	if err := domain.ValidateEmail(email); err != nil {
		return err
	}

	token, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := s.session.SetToken(ctx, token); err != nil {
		return fmt.Errorf("persist session credential: %w", err)
	}

	return nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// LoadUsers fetches the requested page and folds the server's
// pagination envelope back into state. On failure the prior state,
// including Total, is left untouched.
func (s *Service) LoadUsers(ctx context.Context, state *domain.PageState, page int) ([]domain.User, error) {
	result, err := s.gateway.ListUsers(ctx, state.Query(page))
	if err != nil {
		return nil, s.session.Guard(ctx, err)
	}

	state.Apply(result.Total, result.Page, result.Limit)
	return result.Users, nil
}

func (s *Service) LoadFoods(ctx context.Context, state *domain.PageState, page int) ([]domain.Food, error) {
	result, err := s.gateway.ListFoods(ctx, state.Query(page))
	if err != nil {
		return nil, s.session.Guard(ctx, err)
	}

	state.Apply(result.Total, result.Page, result.Limit)
	return result.Foods, nil
}

func (s *Service) LoadLogs(ctx context.Context, state *domain.PageState, page int, filter domain.LogFilter) ([]domain.LogEntry, error) {
	result, err := s.gateway.ListLogs(ctx, state.Query(page), filter)
	if err != nil {
		return nil, s.session.Guard(ctx, err)
	}

	state.Apply(result.Total, result.Page, result.Limit)
	return result.Logs, nil
}

// TodayFilter narrows the log listing to entries dated today.
func (s *Service) TodayFilter(logType string) domain.LogFilter {
	today := s.clock.Now().Format("2006-01-02")
	return domain.LogFilter{Type: logType, DateFrom: today, DateTo: today}
}

func (s *Service) GetUser(ctx context.Context, id int) (domain.User, error) {
	user, err := s.gateway.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, s.session.Guard(ctx, err)
	}
	return user, nil
}

func (s *Service) RefreshSummary(ctx context.Context) (domain.Stats, error) {
	stats, err := s.gateway.Stats(ctx)
	if err != nil {
		return domain.Stats{}, s.session.Guard(ctx, err)
	}
	return stats, nil
}

// RefreshedUsers carries the state of the users view after a
// successful mutation: the reloaded current page and the updated
// dashboard summary.
type RefreshedUsers struct {
	Users []domain.User
	Stats domain.Stats
}

// RefreshedFoods is RefreshedUsers for the foods view.
type RefreshedFoods struct {
	Foods []domain.Food
	Stats domain.Stats
}

// UpdateUser validates, transmits, and on success reloads the current
// users page plus the summary counts. Validation failures never reach
// the gateway.
func (s *Service) UpdateUser(ctx context.Context, id int, update domain.UserUpdate, state *domain.PageState) (RefreshedUsers, error) {
	if err := update.Validate(); err != nil {
		return RefreshedUsers{}, err
	}

	if err := s.gateway.UpdateUser(ctx, id, update); err != nil {
		return RefreshedUsers{}, s.session.Guard(ctx, err)
	}

	return s.refreshUsers(ctx, state)
}

// ChangePassword checks the password policy locally before issuing
// the call. The confirmation mismatch and length checks block the
// network call entirely.
func (s *Service) ChangePassword(ctx context.Context, id int, password, confirm string) error {
	if err := domain.ValidatePassword(password, confirm); err != nil {
		return err
	}

	if err := s.gateway.ChangePassword(ctx, id, password); err != nil {
		return s.session.Guard(ctx, err)
	}

	return nil
}

// DeleteUser issues the destructive call (confirmation already
// happened at the surface) and refreshes the current page and the
// summary. On failure nothing is refreshed.
func (s *Service) DeleteUser(ctx context.Context, id int, state *domain.PageState) (RefreshedUsers, error) {
	if err := s.gateway.DeleteUser(ctx, id); err != nil {
		return RefreshedUsers{}, s.session.Guard(ctx, err)
	}

	return s.refreshUsers(ctx, state)
}

// CreateFood validates the draft, transmits it, and refreshes the
// current foods page plus the summary.
func (s *Service) CreateFood(ctx context.Context, draft domain.FoodDraft, state *domain.PageState) (RefreshedFoods, error) {
	if err := draft.Validate(); err != nil {
		return RefreshedFoods{}, err
	}

	if err := s.gateway.CreateFood(ctx, draft); err != nil {
		return RefreshedFoods{}, s.session.Guard(ctx, err)
	}

	return s.refreshFoods(ctx, state)
}

func (s *Service) DeleteFood(ctx context.Context, id int, state *domain.PageState) (RefreshedFoods, error) {
	if err := s.gateway.DeleteFood(ctx, id); err != nil {
		return RefreshedFoods{}, s.session.Guard(ctx, err)
	}

	return s.refreshFoods(ctx, state)
}

func (s *Service) refreshUsers(ctx context.Context, state *domain.PageState) (RefreshedUsers, error) {
	users, err := s.LoadUsers(ctx, state, state.Page)
	if err != nil {
		return RefreshedUsers{}, fmt.Errorf("reload users page: %w", err)
	}

	stats, err := s.RefreshSummary(ctx)
	if err != nil {
		return RefreshedUsers{}, fmt.Errorf("refresh summary: %w", err)
	}

	return RefreshedUsers{Users: users, Stats: stats}, nil
}

func (s *Service) refreshFoods(ctx context.Context, state *domain.PageState) (RefreshedFoods, error) {
	foods, err := s.LoadFoods(ctx, state, state.Page)
	if err != nil {
		return RefreshedFoods{}, fmt.Errorf("reload foods page: %w", err)
	}

	stats, err := s.RefreshSummary(ctx)
	if err != nil {
		return RefreshedFoods{}, fmt.Errorf("refresh summary: %w", err)
	}

	return RefreshedFoods{Foods: foods, Stats: stats}, nil
}
