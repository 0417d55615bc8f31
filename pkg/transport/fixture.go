package transport

import (
	"context"
	"io"
	"strings"
)

// Fixture returns a Transport that ignores the request and replies with
// the given canned body. Useful in tests and for replaying recorded
// service responses offline.
func Fixture(responseBody string) Transport {
	return Func(func(ctx context.Context, endpointURL, requestBody string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(responseBody)), nil
	})
}

// FixtureErr returns a Transport that always fails with err.
func FixtureErr(err error) Transport {
	return Func(func(ctx context.Context, endpointURL, requestBody string) (io.ReadCloser, error) {
		return nil, err
	})
}
