// Package backend is the REST client for the BEM administration backend.
// Every response uses the envelope {success, message, data}; non-2xx answers
// become *domain.BackendError carrying the backend's message.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

const (
	defaultTimeout = 15 * time.Second
	perPage        = 20
	maxBodyBytes   = 4 << 20
)

// Config captures the settings for reaching the backend.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the backend on behalf of the current device session.
type Client struct {
	base *url.URL
	http *http.Client
	log  zerolog.Logger
}

// envelope is the common response shape. Login answers carry access_token
// and user at the top level; unread-count answers carry count.
type envelope struct {
	Success     bool             `json:"success"`
	Message     string           `json:"message"`
	Data        json.RawMessage  `json:"data"`
	Count       int              `json:"count"`
	Meta        *domain.PageMeta `json:"meta"`
	AccessToken string           `json:"access_token"`
	User        *domain.User     `json:"user"`
}

// New builds a Client. Requests carry the bearer token from tokens when one
// is stored.
func New(cfg Config, tokens ports.TokenSource, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend: invalid base url %q", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base: base,
		http: &http.Client{
			Timeout:   timeout,
			Transport: newTransport(http.DefaultTransport, tokens),
		},
		log: log,
	}, nil
}

// Ping checks that the backend answers at all. Any HTTP status counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.base.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	_ = resp.Body.Close()
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*envelope, error) {
	u := *c.base
	u.Path = c.base.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("ngrok-skip-browser-warning", "true")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")
		return nil, fmt.Errorf("%s %s: %w: %v", method, path, domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.BackendError{Status: resp.StatusCode, Message: env.Message}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode %s %s: %w", method, path, decodeErr)
	}
	if !env.Success {
		return &env, &domain.BackendError{Status: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) (*envelope, error) {
	env, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return env, decodeData(env, path, out)
}

func decodeData(env *envelope, path string, out any) error {
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", path, err)
	}
	return nil
}

func pageQuery(q domain.PageQuery) url.Values {
	v := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", fmt.Sprint(page))
	v.Set("per_page", fmt.Sprint(perPage))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.MinistryID != nil {
		v.Set("ministry_id", fmt.Sprint(*q.MinistryID))
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	return v
}
