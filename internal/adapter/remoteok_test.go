package adapter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/amishk599/remotefinder/internal/model"
)

const remoteOKPayload = `[
	{"last_updated": 1709300000, "legal": "API Terms of Service"},
	{
		"id": "1093221",
		"epoch": 1709290000,
		"date": "2024-03-01T10:46:40+00:00",
		"company": "Acme &amp; Sons",
		"position": "Senior Go Engineer",
		"tags": ["golang", "backend", 42, ""],
		"location": "Europe",
		"salary": "$60,000 - $90,000",
		"url": "https://remoteok.com/remote-jobs/1093221"
	},
	{
		"id": 1093222,
		"epoch": 1709200000,
		"title": "Designer",
		"apply_url": "https://example.com/apply"
	},
	"not a listing",
	17,
	{}
]`

func TestRemoteOKAdapter_FetchJobs_Success(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(remoteOKPayload))
	}))
	defer srv.Close()

	a := NewRemoteOKAdapter(srv.URL, "", srv.Client(), discardLogger())
	jobs, err := a.FetchJobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUA != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, DefaultUserAgent)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}

	// Metadata, the string, and the number are dropped; the empty object stays.
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d: %+v", len(jobs), jobs)
	}

	j := jobs[0]
	want := model.Job{
		ID:       "1093221",
		Company:  "Acme & Sons",
		Title:    "Senior Go Engineer",
		Location: "Europe",
		Tags:     []string{"golang", "backend"},
		URL:      "https://remoteok.com/remote-jobs/1093221",
		Date:     "2024-03-01T10:46:40+00:00",
		Salary:   "$60,000 - $90,000",
	}
	if !reflect.DeepEqual(j, want) {
		t.Errorf("first job = %+v, want %+v", j, want)
	}

	j2 := jobs[1]
	if j2.ID != "1093222" {
		t.Errorf("expected numeric id rendered as text, got %q", j2.ID)
	}
	if j2.Title != "Designer" {
		t.Errorf("expected title fallback Designer, got %q", j2.Title)
	}
	if j2.Company != model.DefaultCompany {
		t.Errorf("expected default company, got %q", j2.Company)
	}
	if j2.URL != "https://example.com/apply" {
		t.Errorf("expected apply_url fallback, got %q", j2.URL)
	}
	wantDate := time.Unix(1709200000, 0).UTC().Format(time.RFC3339)
	if j2.Date != wantDate {
		t.Errorf("expected date from epoch %q, got %q", wantDate, j2.Date)
	}
}

func TestRemoteOKAdapter_FetchJobs_DefaultsForEmptyObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"legal": "meta"}, {"company": "", "position": "", "location": null, "tags": null}]`))
	}))
	defer srv.Close()

	a := NewRemoteOKAdapter(srv.URL, "test-agent", srv.Client(), discardLogger())
	jobs, err := a.FetchJobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}

	j := jobs[0]
	if j.Company != model.DefaultCompany || j.Title != model.DefaultTitle || j.Location != model.DefaultLocation {
		t.Errorf("defaults not applied: %+v", j)
	}
	if j.Tags == nil || len(j.Tags) != 0 {
		t.Errorf("expected empty non-nil tags, got %#v", j.Tags)
	}
	if j.URL != "" || j.Date != "" || j.Salary != "" || j.ID != "" {
		t.Errorf("expected empty optional fields, got %+v", j)
	}
}

func TestRemoteOKAdapter_FetchJobs_ShortOrNonListBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty list", body: `[]`},
		{name: "metadata only", body: `[{"legal": "meta"}]`},
		{name: "object body", body: `{"error": "rate limited"}`},
		{name: "null body", body: `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := NewRemoteOKAdapter(srv.URL, "", srv.Client(), discardLogger())
			jobs, err := a.FetchJobs(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if jobs == nil || len(jobs) != 0 {
				t.Fatalf("expected empty non-nil result, got %#v", jobs)
			}
		})
	}
}

func TestRemoteOKAdapter_FetchJobs_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	a := NewRemoteOKAdapter(srv.URL, "", srv.Client(), discardLogger())
	if _, err := a.FetchJobs(context.Background()); err == nil {
		t.Fatal("expected error for malformed body, got nil")
	}
}

func TestRemoteOKAdapter_FetchJobs_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := NewRemoteOKAdapter(srv.URL, "", srv.Client(), discardLogger())
	_, err := a.FetchJobs(context.Background())

	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *model.HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", httpErr.StatusCode)
	}
	if httpErr.RetryAfter != 30*time.Second {
		t.Errorf("RetryAfter = %v, want 30s", httpErr.RetryAfter)
	}
}

func TestRemoteOKAdapter_FetchJobs_NetworkError(t *testing.T) {
	client := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}),
	}

	a := NewRemoteOKAdapter("http://remoteok.invalid/api", "", client, discardLogger())
	if _, err := a.FetchJobs(context.Background()); err == nil {
		t.Fatal("expected error for network failure, got nil")
	}
}

func TestRemoteOKAdapter_FetchJobs_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 50 * time.Millisecond}
	a := NewRemoteOKAdapter(srv.URL, "", client, discardLogger())
	if _, err := a.FetchJobs(context.Background()); err == nil {
		t.Fatal("expected timeout error, got nil")
	}
}

func TestTagsField(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{name: "nil", in: nil, want: []string{}},
		{name: "list", in: []any{"go", " rust ", 1, nil}, want: []string{"go", "rust"}},
		{name: "comma string", in: "go, python,,", want: []string{"go", "python"}},
		{name: "wrong type", in: map[string]any{"a": 1}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tagsField(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tagsField(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

// --- helpers ---

// roundTripFunc adapts a function into an http.RoundTripper.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
