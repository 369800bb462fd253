package ports

import (
	"context"

	"github.com/kaloritakip/kta/internal/domain"
)

// AdminGateway is the remote admin API. Implementations decode the
// server's unauthorized sentinel into domain.ErrSessionExpired and
// well-formed error bodies into *domain.APIError before returning.
type AdminGateway interface {
	Login(ctx context.Context, email, password string) (string, error)

	Stats(ctx context.Context) (domain.Stats, error)

	ListUsers(ctx context.Context, q domain.PageQuery) (domain.UserPage, error)
	GetUser(ctx context.Context, id int) (domain.User, error)
	UpdateUser(ctx context.Context, id int, update domain.UserUpdate) error
	ChangePassword(ctx context.Context, id int, password string) error
	DeleteUser(ctx context.Context, id int) error

	ListFoods(ctx context.Context, q domain.PageQuery) (domain.FoodPage, error)
	CreateFood(ctx context.Context, draft domain.FoodDraft) error
	DeleteFood(ctx context.Context, id int) error

	ListLogs(ctx context.Context, q domain.PageQuery, filter domain.LogFilter) (domain.LogPage, error)
}
