package transport

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ContentType is the media type sent with every request body.
const ContentType = "text/xml;charset=UTF-8"

// Transport performs a single request/response exchange with a remote
// service: it posts requestBody to endpointURL and returns the response
// body as a stream. Implementations own all I/O policy (timeouts,
// retries, proxies); the caller owns closing the returned stream.
type Transport interface {
	Fetch(ctx context.Context, endpointURL, requestBody string) (io.ReadCloser, error)
}

// Func adapts a plain function to the Transport interface.
type Func func(ctx context.Context, endpointURL, requestBody string) (io.ReadCloser, error)

// Fetch calls f.
func (f Func) Fetch(ctx context.Context, endpointURL, requestBody string) (io.ReadCloser, error) {
	return f(ctx, endpointURL, requestBody)
}

// Error represents a failed exchange: a request that could not be sent,
// a connection or stream failure, or a non-2xx response from the
// default HTTP transport.
type Error struct {
	URL        string
	StatusCode int // 0 when the failure happened before a response arrived
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	msg := "transport: " + e.Message
	if e.StatusCode > 0 {
		msg = msg + " (status " + strconv.Itoa(e.StatusCode) + ")"
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPTransport is the default Transport. It issues an HTTP POST with a
// text/xml content type and returns the response body. A non-2xx status
// is reported as an *Error; responses are never retried.
type HTTPTransport struct {
	client *http.Client
}

// Option configures an HTTPTransport.
type Option func(*HTTPTransport)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(t *HTTPTransport) {
		t.client.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying *http.Client entirely.
func WithHTTPClient(client *http.Client) Option {
	return func(t *HTTPTransport) {
		t.client = client
	}
}

// NewHTTP creates the default HTTP transport with a 30 second timeout.
func NewHTTP(opts ...Option) *HTTPTransport {
	t := &HTTPTransport{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Fetch implements Transport.
func (t *HTTPTransport) Fetch(ctx context.Context, endpointURL, requestBody string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, strings.NewReader(requestBody))
	if err != nil {
		return nil, &Error{URL: endpointURL, Message: "invalid request", Cause: err}
	}
	req.Header.Set("Content-Type", ContentType)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &Error{URL: endpointURL, Message: "request failed", Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, &Error{URL: endpointURL, StatusCode: resp.StatusCode, Message: "unexpected status"}
	}
	return resp.Body, nil
}
