package filter

import (
	"strings"

	"github.com/amishk599/remotefinder/internal/model"
)

// AllCategories is the category value that disables category filtering.
const AllCategories = "all"

// KeywordFilter matches jobs whose searchable text (title, company, tags)
// contains both the search query and the category keyword. Matching is
// case-insensitive substring containment; an empty query or an empty/"all"
// category passes everything.
type KeywordFilter struct {
	query    string
	category string
}

// NewKeywordFilter returns a filter for the given raw query and category.
func NewKeywordFilter(query, category string) *KeywordFilter {
	return &KeywordFilter{
		query:    NormalizeQuery(query),
		category: NormalizeCategory(category),
	}
}

// Match returns true if the job passes both the query and the category test.
func (f *KeywordFilter) Match(job model.Job) bool {
	if f.query == "" && f.category == "" {
		return true
	}

	text := job.SearchText()
	if f.query != "" && !strings.Contains(text, f.query) {
		return false
	}
	if f.category != "" && !strings.Contains(text, f.category) {
		return false
	}
	return true
}

// IsUnfiltered reports whether the filter lets every job through, which is
// the homepage view.
func (f *KeywordFilter) IsUnfiltered() bool {
	return f.query == "" && f.category == ""
}

// NormalizeQuery trims and lowercases a search query.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// NormalizeCategory trims and lowercases a category, mapping "all" to "".
func NormalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == AllCategories {
		return ""
	}
	return c
}
