package query

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/amishk599/remotefinder/internal/model"
)

// SortMode selects the display order of a result list.
type SortMode string

const (
	SortNewest SortMode = "newest"
	SortOldest SortMode = "oldest"
	SortSalary SortMode = "salary"
)

// SortModes lists the recognised modes in display order.
var SortModes = []SortMode{SortNewest, SortOldest, SortSalary}

// ParseSortMode maps a raw query-string value onto a SortMode. Empty input
// selects SortNewest. Matching is exact: anything else, including "Salary",
// is kept as-is and means "no sort".
func ParseSortMode(raw string) SortMode {
	if raw == "" {
		return SortNewest
	}
	return SortMode(raw)
}

// Known reports whether m is one of SortModes.
func (m SortMode) Known() bool {
	return slices.Contains(SortModes, m)
}

// sortJobs orders jobs in place. All modes are stable; unknown modes leave
// the feed order untouched.
func sortJobs(jobs []model.Job, mode SortMode) {
	switch mode {
	case SortNewest, "":
		slices.SortStableFunc(jobs, func(a, b model.Job) int {
			return cmp.Compare(b.Date, a.Date)
		})
	case SortOldest:
		slices.SortStableFunc(jobs, func(a, b model.Job) int {
			return cmp.Compare(a.Date, b.Date)
		})
	case SortSalary:
		slices.SortStableFunc(jobs, func(a, b model.Job) int {
			return cmp.Compare(SalaryValue(b.Salary), SalaryValue(a.Salary))
		})
	}
}

// SalaryValue extracts a sort key from free-text salary by concatenating
// every digit and '.' in order and parsing the result. Anything that does
// not parse yields 0. Ranges collapse badly: "$60k - $90k" becomes 6090.
func SalaryValue(salary string) float64 {
	var b strings.Builder
	for _, r := range salary {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
