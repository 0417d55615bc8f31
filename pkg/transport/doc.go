// Package transport abstracts the network exchange of the VAT check
// pipeline behind a single-method interface.
//
// The protocol logic never touches net/http directly: it hands a URL
// and a request body to a Transport and reads back a byte stream. That
// makes the exchange swappable for mocks, canned fixtures, alternate
// HTTP stacks, or policy wrappers such as WithRateLimit, without
// changing any envelope or parsing code.
//
// The default HTTPTransport posts the body as text/xml;charset=UTF-8
// and treats a non-2xx status as a failed exchange. It does not retry;
// retry and throttle policy belong to wrapping transports.
package transport
