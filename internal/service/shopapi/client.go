package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/andybalholm/brotli"

	"fsanano/shop-client/internal/model"
)

const (
	defaultTimeout = 30 * time.Second
	categoryTTL    = 5 * time.Minute
)

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	DeviceID string

	// Base is the underlying transport; http.DefaultTransport when nil.
	Base http.RoundTripper
}

type cachedCategories struct {
	items  []model.Category
	expiry time.Time
}

type Client struct {
	client    *http.Client
	config    Config
	transport *Transport

	cacheMu    sync.RWMutex
	categories cachedCategories
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	t := &Transport{DeviceID: cfg.DeviceID, Base: cfg.Base}
	return &Client{
		client: &http.Client{
			Transport: t,
			Timeout:   cfg.Timeout,
		},
		config:    cfg,
		transport: t,
	}
}

// SetToken makes every following request carry the bearer token.
func (c *Client) SetToken(token string) { c.transport.SetToken(token) }

func (c *Client) ClearToken() { c.transport.ClearToken() }

func (c *Client) Token() string { return c.transport.Token() }

// request describes one call relative to the configured base URL.
type request struct {
	method string
	path   string
	query  url.Values
	header http.Header

	// body is JSON-encoded unless raw is set.
	body        any
	raw         io.Reader
	contentType string
}

func (c *Client) endpoint(path string, query url.Values) (string, error) {
	base := c.config.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	rel, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}
	u = u.ResolveReference(rel)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

func (c *Client) send(ctx context.Context, r request) (*http.Response, error) {
	target, err := c.endpoint(r.path, r.query)
	if err != nil {
		return nil, err
	}

	body := r.raw
	contentType := r.contentType
	if body == nil && r.body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(r.body); err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", r.method, r.path, err)
		}
		body = buf
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, vs := range r.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.Header.Get("Content-Encoding") == "br" {
		resp.Body = &readCloserWrapper{Reader: brotli.NewReader(resp.Body), Closer: resp.Body}
	}
	return resp, nil
}

// call performs r and unwraps the envelope's data into T.
func call[T any](ctx context.Context, c *Client, r request) (T, error) {
	var zero T

	resp, err := c.send(ctx, r)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("read %s %s: %w", r.method, r.path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, decodeError(resp, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return zero, nil
	}

	var env Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
	}
	if env.Success != nil && !*env.Success {
		return zero, &APIError{StatusCode: resp.StatusCode, Message: env.Message, Status: env.Status}
	}
	return env.Data, nil
}

// exec is call for endpoints whose data is ignored.
func exec(ctx context.Context, c *Client, r request) error {
	_, err := call[json.RawMessage](ctx, c, r)
	return err
}

func decodeError(resp *http.Response, raw []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	var env Envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err == nil {
		apiErr.Message = env.Message
		if env.Status != "" {
			apiErr.Status = env.Status
		}
	}
	return apiErr
}

func bearer(token string) http.Header {
	h := make(http.Header)
	h.Set("Authorization", "Bearer "+token)
	return h
}
