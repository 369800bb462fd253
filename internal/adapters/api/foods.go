package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kaloritakip/kta/internal/domain"
)

func (c *Client) ListFoods(ctx context.Context, q domain.PageQuery) (domain.FoodPage, error) {
	var page domain.FoodPage
	if err := c.call(ctx, http.MethodGet, "/admin/foods", pageQueryValues(q), nil, &page, true); err != nil {
		return domain.FoodPage{}, err
	}
	return page, nil
}

func (c *Client) CreateFood(ctx context.Context, draft domain.FoodDraft) error {
	return c.call(ctx, http.MethodPost, "/admin/foods", nil, draft, nil, true)
}

func (c *Client) DeleteFood(ctx context.Context, id int) error {
	path := fmt.Sprintf("/admin/foods/%d", id)
	return c.call(ctx, http.MethodDelete, path, nil, nil, nil, true)
}
