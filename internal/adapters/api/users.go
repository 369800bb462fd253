package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kaloritakip/kta/internal/domain"
)

func (c *Client) ListUsers(ctx context.Context, q domain.PageQuery) (domain.UserPage, error) {
	var page domain.UserPage
	if err := c.call(ctx, http.MethodGet, "/admin/users", pageQueryValues(q), nil, &page, true); err != nil {
		return domain.UserPage{}, err
	}
	return page, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (domain.User, error) {
	// The server wraps the record in {user: ...}; older deployments
	// return it bare. Accept both.
	var raw json.RawMessage
	path := fmt.Sprintf("/admin/users/%d", id)
	if err := c.call(ctx, http.MethodGet, path, nil, nil, &raw, true); err != nil {
		return domain.User{}, err
	}

	var envelope struct {
		User json.RawMessage `json:"user"`
	}
	record := raw
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.User) > 0 {
		record = envelope.User
	}

	var user domain.User
	if err := json.Unmarshal(record, &user); err != nil {
		return domain.User{}, fmt.Errorf("decode user record: %w", err)
	}
	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, update domain.UserUpdate) error {
	path := fmt.Sprintf("/admin/users/%d", id)
	return c.call(ctx, http.MethodPut, path, nil, update, nil, true)
}

func (c *Client) ChangePassword(ctx context.Context, id int, password string) error {
	path := fmt.Sprintf("/admin/users/%d/password", id)
	payload := map[string]string{"password": password}
	return c.call(ctx, http.MethodPut, path, nil, payload, nil, true)
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	path := fmt.Sprintf("/admin/users/%d", id)
	return c.call(ctx, http.MethodDelete, path, nil, nil, nil, true)
}
