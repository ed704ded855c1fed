package model

import (
	"context"
	"strings"
)

// Placeholders substituted during normalization when the feed omits a field.
const (
	DefaultCompany  = "Unknown company"
	DefaultTitle    = "Unknown role"
	DefaultLocation = "Worldwide"
)

// Job is one normalized remote-job listing. Every field is populated once a
// Job leaves the adapter; Tags is never nil.
type Job struct {
	ID       string   `json:"id"`       // opaque, may be empty
	Company  string   `json:"company"`  // company name
	Title    string   `json:"title"`    // position title
	Location string   `json:"location"` // free-text location
	Tags     []string `json:"tags"`     // ordered as the feed lists them
	URL      string   `json:"url"`      // listing link, may be empty
	Date     string   `json:"date"`     // compared as a plain string, never parsed
	Salary   string   `json:"salary"`   // free text, may be empty
}

// SearchText returns the lowercase blob used by keyword and category matching:
// title, company, and tags joined by spaces.
func (j Job) SearchText() string {
	parts := make([]string, 0, 2+len(j.Tags))
	parts = append(parts, j.Title, j.Company)
	parts = append(parts, j.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// JobFetcher fetches job listings from a source (e.g. RemoteOK).
type JobFetcher interface {
	FetchJobs(ctx context.Context) ([]Job, error)
}

// JobFilter decides whether a job matches the user's criteria.
type JobFilter interface {
	Match(job Job) bool
}
