package adapter

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var markupRegex = regexp.MustCompile(`<[^>]*>`)

// extractText turns a feed string that may carry markup or entities into a
// single line of plain text: entities decoded, tags removed, non-breaking
// spaces and runs of whitespace folded to one space.
func extractText(s string) string {
	s = markupRegex.ReplaceAllString(html.UnescapeString(s), "")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// parseRetryAfter reads a Retry-After header given in whole seconds.
// HTTP-date values, negatives and garbage all yield zero.
func parseRetryAfter(value string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
