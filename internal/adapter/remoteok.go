package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/amishk599/remotefinder/internal/model"
)

// Endpoint and client identification used when the config leaves them empty.
const (
	RemoteOKURL      = "https://remoteok.com/api"
	DefaultUserAgent = "remote-finder"
)

// RemoteOKAdapter fetches jobs from the RemoteOK public API.
type RemoteOKAdapter struct {
	url       string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// NewRemoteOKAdapter creates an adapter for the given feed endpoint. The
// request honours the context deadline as well as the client's Timeout.
func NewRemoteOKAdapter(url, userAgent string, client *http.Client, logger *slog.Logger) *RemoteOKAdapter {
	if url == "" {
		url = RemoteOKURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &RemoteOKAdapter{
		url:       url,
		userAgent: userAgent,
		client:    client,
		logger:    logger,
	}
}

// FetchJobs retrieves the feed and normalizes every listing into the unified
// Job model. The first element of the response is feed metadata and is
// dropped; elements that are not JSON objects are skipped.
func (a *RemoteOKAdapter) FetchJobs(ctx context.Context) ([]model.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return nil, fmt.Errorf("remoteok fetch: %w", err)
	}
	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remoteok fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("remoteok fetch: unexpected status %d", resp.StatusCode),
		}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("remoteok fetch: decode body: %w", err)
	}

	items, ok := body.([]any)
	if !ok {
		a.logger.Warn("remoteok returned a non-list body, treating as empty", "type", fmt.Sprintf("%T", body))
		return []model.Job{}, nil
	}
	if len(items) <= 1 {
		return []model.Job{}, nil
	}

	jobs := make([]model.Job, 0, len(items)-1)
	for _, item := range items[1:] {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		jobs = append(jobs, normalizeRemoteOKJob(raw))
	}

	return jobs, nil
}

// normalizeRemoteOKJob maps one raw listing onto model.Job, substituting
// placeholders for missing or empty fields.
func normalizeRemoteOKJob(raw map[string]any) model.Job {
	return model.Job{
		ID:       stringField(raw, "id"),
		Company:  firstNonEmpty(textField(raw, "company"), model.DefaultCompany),
		Title:    firstNonEmpty(textField(raw, "position"), textField(raw, "title"), model.DefaultTitle),
		Location: firstNonEmpty(textField(raw, "location"), model.DefaultLocation),
		Tags:     tagsField(raw["tags"]),
		URL:      firstNonEmpty(stringField(raw, "url"), stringField(raw, "apply_url")),
		Date:     dateField(raw),
		Salary:   stringField(raw, "salary"),
	}
}

// stringField returns raw[key] as trimmed text. Numbers are rendered as
// written in the feed; any other type yields "".
func stringField(raw map[string]any, key string) string {
	switch v := raw[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// textField is stringField for human-readable fields, which RemoteOK often
// sends HTML-escaped.
func textField(raw map[string]any, key string) string {
	return extractText(stringField(raw, key))
}

// tagsField accepts a list of strings or a single comma-separated string.
// Non-string list items are dropped.
func tagsField(v any) []string {
	tags := []string{}
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				tags = append(tags, s)
			}
		}
	case string:
		for _, s := range strings.Split(t, ",") {
			if s = strings.TrimSpace(s); s != "" {
				tags = append(tags, s)
			}
		}
	}
	return tags
}

// dateField prefers the feed's date string and falls back to the unix epoch
// rendered as RFC 3339 so both forms sort the same way.
func dateField(raw map[string]any) string {
	if d := stringField(raw, "date"); d != "" {
		return d
	}
	if n, ok := raw["epoch"].(json.Number); ok {
		if secs, err := n.Int64(); err == nil && secs > 0 {
			return time.Unix(secs, 0).UTC().Format(time.RFC3339)
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
