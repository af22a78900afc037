// Package courseapi fetches the course list from the remote course-listing service.
package courseapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/javiermolinar/edulearn/internal/course"
	"github.com/javiermolinar/edulearn/internal/httpclient"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 8 << 20

// ErrBodyTooLarge is wrapped in a *course.ParseError when the response body
// exceeds maxBodyBytes.
var ErrBodyTooLarge = errors.New("response body exceeds limit")

// Client implements course.Lister against a fixed endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// New creates a client for the given endpoint URL.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     httpclient.New(httpclient.DefaultConfig()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ListCourses issues a single GET to the endpoint. It never retries.
// Failures are returned as *course.StatusError, *course.TransportError
// or *course.ParseError.
func (c *Client) ListCourses(ctx context.Context) ([]course.Course, error) {
	courses, _, err := c.Fetch(ctx)
	return courses, err
}

// Fetch is ListCourses that also reports the size of the response body.
func (c *Client) Fetch(ctx context.Context) ([]course.Course, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, 0, &course.TransportError{Err: fmt.Errorf("building request: %w", err)}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &course.TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, 0, &course.StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, 0, &course.TransportError{Err: fmt.Errorf("reading body: %w", err)}
	}
	if len(body) > maxBodyBytes {
		return nil, 0, &course.ParseError{
			Err: fmt.Errorf("%w of %s", ErrBodyTooLarge, humanize.IBytes(maxBodyBytes)),
		}
	}

	courses, err := course.Decode(body)
	if err != nil {
		return nil, 0, err
	}
	return courses, len(body), nil
}

var _ course.Lister = (*Client)(nil)
