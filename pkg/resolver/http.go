package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Defaults for remote fixture fetches.
const (
	DefaultTimeout     = 10 * time.Second
	DefaultRetries     = 3
	DefaultMaxBodySize = 1 << 20
)

// HTTP fetches fixtures from <BaseURL>/<name><Ext>.
// Transport errors and 5xx responses are retried with exponential backoff;
// other non-2xx responses fail immediately.
type HTTP struct {
	BaseURL string
	Ext     string

	// Token is sent as a bearer token when set.
	Token string

	// Session is sent as the "session" cookie when set.
	Session string

	// Timeout bounds each request attempt (DefaultTimeout if zero).
	Timeout time.Duration

	// Retries is the number of retries after the first attempt.
	Retries int

	// MaxBodySize caps the fixture size (DefaultMaxBodySize if zero).
	MaxBodySize int64

	Client *http.Client

	newBackOff func() backoff.BackOff
}

// NewHTTP creates an HTTP resolver with default settings.
func NewHTTP(baseURL string) *HTTP {
	return &HTTP{
		BaseURL: baseURL,
		Ext:     DefaultExt,
		Timeout: DefaultTimeout,
		Retries: DefaultRetries,
	}
}

// URL returns the address a name maps to.
func (h *HTTP) URL(name string) (string, error) {
	ext := h.Ext
	if ext == "" {
		ext = DefaultExt
	}
	segments := strings.Split(name+ext, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return url.JoinPath(h.BaseURL, segments...)
}

// Resolve downloads the fixture body for name.
func (h *HTTP) Resolve(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("invalid fixture name %q", name)
	}

	target, err := h.URL(name)
	if err != nil {
		return nil, fmt.Errorf("building url for %q: %w", name, err)
	}

	var b backoff.BackOff
	if h.newBackOff != nil {
		b = h.newBackOff()
	} else {
		b = backoff.NewExponentialBackOff()
	}
	retries := max(h.Retries, 0)
	b = backoff.WithMaxRetries(b, uint64(retries))

	var data []byte
	op := func() error {
		var err error
		data, err = h.fetch(ctx, target)
		return err
	}

	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}
	return data, nil
}

func (h *HTTP) fetch(ctx context.Context, target string) ([]byte, error) {
	timeout := h.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}

	req.Header.Set("User-Agent", "fixtures")
	if h.Token != "" {
		req.Header.Set("Authorization", "Bearer "+h.Token)
	}
	if h.Session != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: h.Session})
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(fmt.Errorf("%w: %s", ErrNotFound, target))
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("fetching %s: status %d", target, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, backoff.Permanent(fmt.Errorf("fetching %s: status %d", target, resp.StatusCode))
	}

	limit := h.MaxBodySize
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", target, err)
	}
	if int64(len(data)) > limit {
		return nil, backoff.Permanent(fmt.Errorf("fetching %s: body exceeds %d bytes", target, limit))
	}
	return data, nil
}
