package filter

import (
	"testing"

	"github.com/amishk599/remotefinder/internal/model"
)

func job(title, company string, tags ...string) model.Job {
	if tags == nil {
		tags = []string{}
	}
	return model.Job{Title: title, Company: company, Location: "Worldwide", Tags: tags}
}

func TestKeywordFilter_Match(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		category  string
		job       model.Job
		wantMatch bool
	}{
		{
			name:      "query matches title",
			query:     "engineer",
			job:       job("Senior Engineer", "Acme"),
			wantMatch: true,
		},
		{
			name:      "query matches company case insensitive",
			query:     "ACME",
			job:       job("Designer", "Acme Corp"),
			wantMatch: true,
		},
		{
			name:      "query matches tag substring",
			query:     "python",
			job:       job("Backend Dev", "Beta", "Python3", "django"),
			wantMatch: true,
		},
		{
			name:      "query is trimmed",
			query:     "  golang  ",
			job:       job("Golang Developer", "Gamma"),
			wantMatch: true,
		},
		{
			name:      "query miss",
			query:     "rust",
			job:       job("Go Developer", "Gamma", "golang"),
			wantMatch: false,
		},
		{
			name:      "location is not searched",
			query:     "europe",
			job:       model.Job{Title: "Dev", Company: "Delta", Location: "Europe", Tags: []string{}},
			wantMatch: false,
		},
		{
			name:      "whitespace query matches everything",
			query:     "   ",
			job:       job("Anything", "Anyone"),
			wantMatch: true,
		},
		{
			name:      "category all passes",
			category:  "ALL",
			job:       job("Anything", "Anyone"),
			wantMatch: true,
		},
		{
			name:      "category matches tag",
			category:  "DevOps",
			job:       job("SRE", "Omega", "devops", "aws"),
			wantMatch: true,
		},
		{
			name:      "category miss",
			category:  "design",
			job:       job("SRE", "Omega", "devops"),
			wantMatch: false,
		},
		{
			name:      "query and category are conjunctive",
			query:     "senior",
			category:  "frontend",
			job:       job("Senior Backend Engineer", "Acme", "backend"),
			wantMatch: false,
		},
		{
			name:      "query and category both match",
			query:     "senior",
			category:  "frontend",
			job:       job("Senior Engineer", "Acme", "frontend", "react"),
			wantMatch: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewKeywordFilter(tt.query, tt.category)
			got := f.Match(tt.job)
			if got != tt.wantMatch {
				t.Errorf("Match() = %v, want %v", got, tt.wantMatch)
			}
		})
	}
}

func TestKeywordFilter_IsUnfiltered(t *testing.T) {
	tests := []struct {
		query    string
		category string
		want     bool
	}{
		{"", "", true},
		{"  ", "All", true},
		{"", "all", true},
		{"go", "", false},
		{"", "design", false},
	}
	for _, tt := range tests {
		if got := NewKeywordFilter(tt.query, tt.category).IsUnfiltered(); got != tt.want {
			t.Errorf("IsUnfiltered(%q, %q) = %v, want %v", tt.query, tt.category, got, tt.want)
		}
	}
}
