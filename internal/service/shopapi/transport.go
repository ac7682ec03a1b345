package shopapi

import (
	"io"
	"net/http"
	"sync"
)

// Transport adds the device, content negotiation and bearer headers.
type Transport struct {
	DeviceID string
	Base     http.RoundTripper

	mu    sync.RWMutex
	token string
}

func (t *Transport) SetToken(token string) {
	t.mu.Lock()
	t.token = token
	t.mu.Unlock()
}

func (t *Transport) ClearToken() {
	t.SetToken("")
}

func (t *Transport) Token() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br")
	if t.DeviceID != "" {
		req.Header.Set("X-Device-ID", t.DeviceID)
	}
	// An explicit Authorization header wins over the session token.
	if req.Header.Get("Authorization") == "" {
		if token := t.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

type readCloserWrapper struct {
	io.Reader
	io.Closer
}

func (r *readCloserWrapper) Read(p []byte) (n int, err error) {
	return r.Reader.Read(p)
}

func (r *readCloserWrapper) Close() error {
	return r.Closer.Close()
}
