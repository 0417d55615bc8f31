package vies

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/getmockd/vatcheck/pkg/logging"
	"github.com/getmockd/vatcheck/pkg/securexml"
	"github.com/getmockd/vatcheck/pkg/transport"
)

// Endpoint is the VIES checkVatService URL. The client speaks exactly
// one operation against exactly one service, so the endpoint is fixed;
// tests and alternate backends substitute the transport instead.
const Endpoint = "https://ec.europa.eu/taxation_customs/vies/services/checkVatService"

// maxResponseSize bounds the response body read to keep a misbehaving
// or hostile endpoint from exhausting memory.
const maxResponseSize = 10 << 20 // 10MB

// Client checks VAT numbers against the VIES service. All fields are
// read-only after New, so a Client is safe for concurrent use without
// locking.
type Client struct {
	transport transport.Transport
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the exchange mechanism. This is the extension
// point for mocks, canned fixtures, retry or rate-limit wrappers, and
// custom HTTP stacks.
func WithTransport(t transport.Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithHTTPClient keeps the default transport but swaps its *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.transport = transport.NewHTTP(transport.WithHTTPClient(client))
	}
}

// WithLogger enables debug logging of the exchange. The default is a
// no-op logger; the client never logs otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client with the default HTTP transport.
func New(opts ...Option) *Client {
	c := &Client{
		transport: transport.NewHTTP(),
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check validates one VAT number.
//
// Both arguments are required; countryCode is the 2-letter ISO code
// (note: Greece is EL, not GR). No further shape validation happens
// locally, the service itself rejects malformed identifiers.
//
// Failures are surfaced as errors, never folded into the result:
// *InvalidArgumentError for a missing argument, *transport.Error for a
// failed exchange, *securexml.MalformedXMLError for a response that is
// not safe well-formed XML. A response with no recognizable result
// element is not a failure; it yields a CheckResponse with Valid false.
func (c *Client) Check(ctx context.Context, countryCode, vatNumber string) (CheckResponse, error) {
	if countryCode == "" {
		return CheckResponse{}, &InvalidArgumentError{Name: "countryCode"}
	}
	if vatNumber == "" {
		return CheckResponse{}, &InvalidArgumentError{Name: "vatNumber"}
	}

	body, err := buildEnvelope(countryCode, vatNumber)
	if err != nil {
		return CheckResponse{}, err
	}

	c.logger.Debug("sending checkVat request", "endpoint", Endpoint, "countryCode", countryCode)
	stream, err := c.transport.Fetch(ctx, Endpoint, body)
	if err != nil {
		return CheckResponse{}, err
	}
	defer func() { _ = stream.Close() }()

	data, err := io.ReadAll(io.LimitReader(stream, maxResponseSize))
	if err != nil {
		return CheckResponse{}, &transport.Error{URL: Endpoint, Message: "reading response body", Cause: err}
	}

	doc, err := securexml.Parse(data)
	if err != nil {
		return CheckResponse{}, err
	}

	result := extract(doc)
	c.logger.Debug("checkVat response", "countryCode", countryCode, "valid", result.Valid)
	return result, nil
}

// DoCheck validates one VAT number using the default HTTP transport.
// Shorthand for callers who do not hold a Client.
func DoCheck(ctx context.Context, countryCode, vatNumber string) (CheckResponse, error) {
	return New().Check(ctx, countryCode, vatNumber)
}

// DoCheckWithTransport is DoCheck with a caller-supplied transport.
func DoCheckWithTransport(ctx context.Context, countryCode, vatNumber string, t transport.Transport) (CheckResponse, error) {
	return New(WithTransport(t)).Check(ctx, countryCode, vatNumber)
}
