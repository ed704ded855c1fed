// Package feed turns a JobFetcher into the page-facing Feed Fetcher: one
// upstream call per request, with every failure absorbed into a Result.
package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amishk599/remotefinder/internal/model"
)

// Result is the outcome of one fetch: either the normalized jobs or the
// reason the feed was unavailable. Exactly one of Jobs and Err is meaningful.
type Result struct {
	Jobs []model.Job
	Err  error
}

// Ok wraps a successful fetch. A nil slice is stored as empty.
func Ok(jobs []model.Job) Result {
	if jobs == nil {
		jobs = []model.Job{}
	}
	return Result{Jobs: jobs}
}

// Failed wraps a fetch failure. The stored error always matches
// model.ErrFeedUnavailable under errors.Is.
func Failed(err error) Result {
	if err == nil {
		return Result{Err: model.ErrFeedUnavailable}
	}
	return Result{Err: fmt.Errorf("%w: %w", model.ErrFeedUnavailable, err)}
}

// OK reports whether the fetch succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Fetcher performs the single upstream call behind each page view.
type Fetcher struct {
	source  model.JobFetcher
	timeout time.Duration
	logger  *slog.Logger
}

// NewFetcher creates a Fetcher around the given source. A positive timeout
// bounds everything the source does for one fetch, including any wait for
// a rate limiter.
func NewFetcher(source model.JobFetcher, timeout time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		source:  source,
		timeout: timeout,
		logger:  logger,
	}
}

// Fetch calls the source once. Failures are logged and returned as a Failed
// result; Fetch itself never returns an error or retries.
func (f *Fetcher) Fetch(ctx context.Context) Result {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	jobs, err := f.source.FetchJobs(ctx)
	if err != nil {
		attrs := []any{"error", err}
		var httpErr *model.HTTPError
		if errors.As(err, &httpErr) {
			attrs = append(attrs, "status", httpErr.StatusCode)
			if httpErr.RetryAfter > 0 {
				attrs = append(attrs, "retry_after", httpErr.RetryAfter.String())
			}
		}
		f.logger.Error("job feed unavailable", attrs...)
		return Failed(err)
	}
	f.logger.Debug("fetched jobs", "count", len(jobs))
	return Ok(jobs)
}
