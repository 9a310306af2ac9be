// Package httpjson sends JSON requests to remote APIs and classifies their failures.
package httpjson

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxErrorBody caps how much of an error response is kept for diagnostics.
const maxErrorBody = 512

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code       int
	RetryAfter time.Duration
	Body       string
}

func (e *StatusError) Error() string {
	msg := "remote returned status " + strconv.Itoa(e.Code)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Transient reports whether the status is a rate limit or a server error.
func (e *StatusError) Transient() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError
}

// Client performs JSON calls against one base URL.
type Client struct {
	baseURL string
	http    *http.Client
	headers http.Header
}

// New creates a client. Headers are sent with every request.
func New(baseURL string, httpClient *http.Client, headers http.Header) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if headers == nil {
		headers = http.Header{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		headers: headers,
	}
}

// BaseURL returns the URL prefix every request path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends body as JSON (when non-nil) to path and decodes the response into out (when non-nil).
// Extra headers override the client defaults for this call.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, extra http.Header) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return zerr.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return zerr.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range c.headers {
		req.Header[k] = vs
	}
	for k, vs := range extra {
		req.Header[k] = vs
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classify(zerr.With(zerr.Wrap(err, "send request"), "path", path))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return classify(zerr.With(&StatusError{
			Code:       resp.StatusCode,
			RetryAfter: retryAfter(resp.Header.Get("Retry-After")),
			Body:       strings.TrimSpace(string(snippet)),
		}, "path", path))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return zerr.With(zerr.Wrap(err, "decode response"), "path", path)
	}
	return nil
}

// classify tags err with domain.ErrTransientRemote or domain.ErrRemoteRequestFailed.
// Transport errors other than context cancellation count as transient.
func classify(err error) error {
	var status *StatusError
	switch {
	case errors.As(err, &status) && status.Transient():
		return errors.Join(domain.ErrTransientRemote, err)
	case errors.As(err, &status):
		return errors.Join(domain.ErrRemoteRequestFailed, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return errors.Join(domain.ErrTransientRemote, err)
	}
}

// retryAfter parses a Retry-After header in seconds. Fractional values are honored.
func retryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	secs, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}

// RetryAfter returns the server-requested delay carried by err, if any.
func RetryAfter(err error) (time.Duration, bool) {
	var status *StatusError
	if errors.As(err, &status) && status.Code == http.StatusTooManyRequests {
		return status.RetryAfter, true
	}
	return 0, false
}
