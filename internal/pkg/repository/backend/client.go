// Package backend is the HTTP client for the HR backend's JSON API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const maxBodySize = 4 << 20

// Config is the client part of the console configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Retries int
}

// Client performs requests against the backend and classifies failures.
// GETs are retried on transport failures and gateway errors; nothing else is.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	retries int
	backoff time.Duration
	log     *log.Logger
}

func NewClient(cfg Config, logger *log.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parsing backend url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("backend url %q must be absolute", cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Client{
		baseURL: u,
		http:    &http.Client{},
		timeout: cfg.Timeout,
		retries: cfg.Retries,
		backoff: 100 * time.Millisecond,
		log:     logger,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Do sends one logical request. On success the JSON body is decoded into
// out when out is not nil. Every failure is an *Error.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindServer, Err: errors.Wrap(err, "encoding request body")}
		}
		payload = b
	}

	target := c.resolve(path, query)

	attempts := 1
	if method == http.MethodGet {
		attempts += c.retries
	}

	var lastErr *Error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			c.log.Printf("backend : retrying %s %s after %v", method, target, lastErr)
			select {
			case <-ctx.Done():
				return &Error{Kind: KindNetwork, Err: ctx.Err()}
			case <-time.After(c.backoff):
			}
		}

		status, respBody, err := c.roundTrip(ctx, method, target, payload)
		if err != nil {
			lastErr = &Error{Kind: KindNetwork, Err: err}
			if ctx.Err() != nil {
				return lastErr
			}
			continue
		}

		if status >= 200 && status < 300 {
			if out == nil || status == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
				return nil
			}
			if err := json.Unmarshal(respBody, out); err != nil {
				return &Error{Kind: KindServer, Status: status, Err: errors.Wrapf(err, "decoding %s %s", method, path)}
			}
			return nil
		}

		lastErr = decodeError(status, respBody)
		if !retryableStatus(status) {
			return lastErr
		}
	}

	return lastErr
}

func (c *Client) roundTrip(ctx context.Context, method, target string, payload []byte) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "%s %s", method, target)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, nil, errors.Wrap(err, "reading response body")
	}

	return resp.StatusCode, respBody, nil
}

func (c *Client) resolve(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func retryableStatus(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
