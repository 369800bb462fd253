package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/kaloritakip/kta/internal/domain"
)

func (c *Client) ListLogs(ctx context.Context, q domain.PageQuery, filter domain.LogFilter) (domain.LogPage, error) {
	values := pageQueryValues(q)

	logType := strings.TrimSpace(filter.Type)
	if logType == "" {
		logType = domain.LogTypeAll
	}
	values.Set("type", logType)
	if filter.DateFrom != "" {
		values.Set("date_from", filter.DateFrom)
	}
	if filter.DateTo != "" {
		values.Set("date_to", filter.DateTo)
	}

	var page domain.LogPage
	if err := c.call(ctx, http.MethodGet, "/admin/logs", values, nil, &page, true); err != nil {
		return domain.LogPage{}, err
	}
	return page, nil
}
