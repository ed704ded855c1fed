package ratelimit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/amishk599/remotefinder/internal/model"
)

// NewLimiter builds the shared upstream limiter. A non-positive perSecond
// disables throttling.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// ThrottledFetcher is a decorator that waits on a shared limiter before
// delegating to the wrapped JobFetcher. It delays calls but never drops one.
type ThrottledFetcher struct {
	inner   model.JobFetcher
	limiter *rate.Limiter
}

// NewThrottledFetcher wraps a JobFetcher with upstream rate limiting.
// Every fetcher hitting the same host should share one limiter.
func NewThrottledFetcher(inner model.JobFetcher, limiter *rate.Limiter) *ThrottledFetcher {
	return &ThrottledFetcher{
		inner:   inner,
		limiter: limiter,
	}
}

// FetchJobs waits for the limiter to allow a request, then delegates to the
// wrapped fetcher. If the wait would run past the context deadline it fails
// immediately.
func (f *ThrottledFetcher) FetchJobs(ctx context.Context) ([]model.Job, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}
	return f.inner.FetchJobs(ctx)
}
