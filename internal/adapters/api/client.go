// Package api implements the AdminGateway port over the remote admin
// HTTP API. The server's string error sentinel is decoded exactly
// once here, into typed domain errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kaloritakip/kta/internal/domain"
	"github.com/kaloritakip/kta/internal/ports"
)

// unauthorizedSentinel is the exact message the server uses to signal
// an expired or invalid credential. Any other error body is an
// ordinary application error.
const unauthorizedSentinel = "Yetkisiz erişim"

const maxResponseBytes = 1 << 20

type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials ports.CredentialStore
}

var _ ports.AdminGateway = (*Client)(nil)

// NewClient targets baseURL (resolved once at startup) and reads the
// bearer credential from credentials on every call except Login.
func NewClient(baseURL string, httpClient *http.Client, credentials ports.CredentialStore) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  httpClient,
		credentials: credentials,
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}

	payload := map[string]string{"email": email, "password": password}
	if err := c.call(ctx, http.MethodPost, "/admin/login", nil, payload, &out, false); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Token) == "" {
		return "", fmt.Errorf("login response missing token")
	}

	return out.Token, nil
}

func (c *Client) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	if err := c.call(ctx, http.MethodGet, "/admin/stats", nil, nil, &stats, true); err != nil {
		return domain.Stats{}, err
	}
	return stats, nil
}

// call performs one request/response cycle: build, attach credential,
// send, decode the error envelope, then decode the payload into out.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, payload, out any, authed bool) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, err := c.credentials.Token(ctx)
		if err != nil {
			return fmt.Errorf("load session credential: %w", err)
		}
		if token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if err := decodeErrorEnvelope(raw, response.StatusCode); err != nil {
		return err
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}

	return nil
}

// decodeErrorEnvelope maps the server's error field to typed errors.
// A non-2xx status without a parseable body is a transport-level
// failure with no message worth surfacing verbatim.
func decodeErrorEnvelope(raw []byte, statusCode int) error {
	var envelope struct {
		Error string `json:"error"`
	}

	if len(raw) > 0 && json.Unmarshal(raw, &envelope) == nil && envelope.Error != "" {
		if envelope.Error == unauthorizedSentinel {
			return fmt.Errorf("%s: %w", envelope.Error, domain.ErrSessionExpired)
		}
		if statusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w", envelope.Error, domain.ErrRecordNotFound)
		}
		return &domain.APIError{Message: envelope.Error}
	}

	if statusCode < 200 || statusCode > 299 {
		return fmt.Errorf("request failed with status %d", statusCode)
	}

	return nil
}

func pageQueryValues(q domain.PageQuery) url.Values {
	values := url.Values{}
	values.Set("page", fmt.Sprint(q.Page))
	values.Set("limit", fmt.Sprint(q.Limit))
	if strings.TrimSpace(q.Search) != "" {
		values.Set("search", q.Search)
	}
	return values
}
