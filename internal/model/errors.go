package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrFeedUnavailable is the single failure kind surfaced by the feed layer.
// Network errors, bad statuses, and malformed bodies all wrap it.
var ErrFeedUnavailable = errors.New("job feed unavailable")

// HTTPError wraps an HTTP status code returned by the upstream feed.
type HTTPError struct {
	StatusCode int
	RetryAfter time.Duration // from Retry-After header, zero if absent
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
