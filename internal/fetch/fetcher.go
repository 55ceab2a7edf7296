package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTimeout bounds every upstream call. One attempt, no retries;
// retry policy belongs to the caller.
const DefaultTimeout = 5 * time.Second

// FetchError wraps any network, status, or decode failure from one
// upstream call, keeping the upstream identity for logging.
type FetchError struct {
	Upstream string
	URL      string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Upstream, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client performs bounded-timeout GET requests against the public feeds.
type Client struct {
	http    *http.Client
	timeout time.Duration
	tracer  trace.Tracer
}

func NewClient(tracer trace.Tracer, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	// The deadline lives on the per-call context in get, not on the
	// http.Client, so one mechanism bounds every request.
	return &Client{
		http:    &http.Client{},
		timeout: timeout,
		tracer:  tracer,
	}
}

// SetTransport replaces the underlying transport. Test hook.
func (c *Client) SetTransport(rt http.RoundTripper) {
	c.http.Transport = rt
}

// GetJSON fetches url and decodes the body into v.
func (c *Client) GetJSON(ctx context.Context, upstream, url string, v any) error {
	body, err := c.get(ctx, upstream, url, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &FetchError{Upstream: upstream, URL: url, Err: fmt.Errorf("decode payload: %w", err)}
	}
	return nil
}

// GetText fetches url and returns the raw body. The caller treats the
// result as an opaque string to scan, not a document to parse.
func (c *Client) GetText(ctx context.Context, upstream, url string) (string, error) {
	body, err := c.get(ctx, upstream, url, "application/rss+xml, application/xml, text/xml, text/plain")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, upstream, url, accept string) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "fetch.get",
		trace.WithAttributes(attribute.String("upstream", upstream)))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Upstream: upstream, URL: url, Err: err}
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", "redemption-index/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Upstream: upstream, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &FetchError{
			Upstream: upstream,
			URL:      url,
			Err:      fmt.Errorf("upstream status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Upstream: upstream, URL: url, Err: err}
	}
	return body, nil
}
