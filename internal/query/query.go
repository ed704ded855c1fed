package query

import (
	"log/slog"

	"github.com/amishk599/remotefinder/internal/feed"
	"github.com/amishk599/remotefinder/internal/filter"
	"github.com/amishk599/remotefinder/internal/model"
)

// DefaultHomepageLimit is how many jobs the unfiltered homepage shows.
const DefaultHomepageLimit = 10

// UnavailableMessage is shown to users when the feed could not be fetched.
const UnavailableMessage = "Could not load jobs from RemoteOK right now. Please try again in a few minutes."

// Params are the user-supplied inputs of one page view.
type Params struct {
	Search   string
	Category string
	Sort     SortMode
}

// Result is what the page renders: the final job list and, only when the
// feed failed, a user-facing error message.
type Result struct {
	Jobs         []model.Job
	ErrorMessage string
}

// Processor applies filter, sort, and homepage truncation to a fetched
// snapshot. It holds no per-request state and never mutates its input.
type Processor struct {
	homepageLimit int
	logger        *slog.Logger
}

// NewProcessor creates a Processor. A non-positive homepageLimit falls back
// to DefaultHomepageLimit.
func NewProcessor(homepageLimit int, logger *slog.Logger) *Processor {
	if homepageLimit <= 0 {
		homepageLimit = DefaultHomepageLimit
	}
	return &Processor{
		homepageLimit: homepageLimit,
		logger:        logger,
	}
}

// Process runs one page view's pipeline: filter → sort → truncate.
func (p *Processor) Process(res feed.Result, params Params) Result {
	if !res.OK() {
		return Result{Jobs: []model.Job{}, ErrorMessage: UnavailableMessage}
	}

	jobFilter := filter.NewKeywordFilter(params.Search, params.Category)

	matched := make([]model.Job, 0, len(res.Jobs))
	for _, job := range res.Jobs {
		if jobFilter.Match(job) {
			matched = append(matched, job)
		}
	}

	sortJobs(matched, params.Sort)

	shown := matched
	if jobFilter.IsUnfiltered() && len(shown) > p.homepageLimit {
		shown = shown[:p.homepageLimit]
	}

	p.logger.Debug("processed jobs",
		"fetched", len(res.Jobs),
		"matched", len(matched),
		"shown", len(shown),
		"sort", string(params.Sort),
	)

	return Result{Jobs: shown}
}
