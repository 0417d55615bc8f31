package transport

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// rateLimited wraps a Transport with a token-bucket limiter.
type rateLimited struct {
	next    Transport
	limiter *rate.Limiter
}

// WithRateLimit wraps next so that exchanges wait for limiter tokens
// before being sent. The VIES service throttles aggressive clients;
// callers batching many checks can cap their request rate here instead
// of inside the protocol logic. Waiting respects ctx cancellation.
func WithRateLimit(next Transport, limit rate.Limit, burst int) Transport {
	return &rateLimited{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (r *rateLimited) Fetch(ctx context.Context, endpointURL, requestBody string) (io.ReadCloser, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, &Error{URL: endpointURL, Message: "rate limit wait aborted", Cause: err}
	}
	return r.next.Fetch(ctx, endpointURL, requestBody)
}
