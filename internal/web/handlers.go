package web

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amishk599/remotefinder/internal/filter"
	"github.com/amishk599/remotefinder/internal/model"
	"github.com/amishk599/remotefinder/internal/query"
)

// Categories offered as suggestions in the category box. Any other text is
// still accepted.
var Categories = []string{
	filter.AllCategories, "dev", "engineer", "design", "marketing", "sales",
	"devops", "support", "finance", "product", "non tech",
}

// JobsHandler serves the job list, as HTML and as JSON.
type JobsHandler struct {
	Source    JobSource
	Processor *query.Processor
}

type pageData struct {
	Jobs       []model.Job
	Search     string
	Category   string
	Sort       string
	SortModes  []query.SortMode
	Categories []string
	Error      string
	Homepage   bool
}

type jobsResponse struct {
	Jobs     []model.Job `json:"jobs"`
	Count    int         `json:"count"`
	Search   string      `json:"search"`
	Category string      `json:"category"`
	Sort     string      `json:"sort"`
	Error    string      `json:"error,omitempty"`
}

// Index renders the job list page. Upstream failures still render a 200
// page carrying the error message.
func (h JobsHandler) Index(c *gin.Context) {
	params := paramsFrom(c)
	res := h.Processor.Process(h.Source.Fetch(c.Request.Context()), params)

	c.HTML(http.StatusOK, "index.html", pageData{
		Jobs:       res.Jobs,
		Search:     params.Search,
		Category:   params.Category,
		Sort:       string(params.Sort),
		SortModes:  sortOptions(params.Sort),
		Categories: Categories,
		Error:      res.ErrorMessage,
		Homepage:   filter.NewKeywordFilter(params.Search, params.Category).IsUnfiltered(),
	})
}

// List returns the same result as Index in JSON form.
func (h JobsHandler) List(c *gin.Context) {
	params := paramsFrom(c)
	res := h.Processor.Process(h.Source.Fetch(c.Request.Context()), params)

	c.JSON(http.StatusOK, jobsResponse{
		Jobs:     res.Jobs,
		Count:    len(res.Jobs),
		Search:   params.Search,
		Category: params.Category,
		Sort:     string(params.Sort),
		Error:    res.ErrorMessage,
	})
}

// sortOptions lists the choices for the sort select. An unrecognised current
// mode is appended so the page echoes it and resubmitting keeps feed order.
func sortOptions(current query.SortMode) []query.SortMode {
	if current.Known() {
		return query.SortModes
	}
	return append(slices.Clone(query.SortModes), current)
}

// paramsFrom reads search, category and sort from the query string.
func paramsFrom(c *gin.Context) query.Params {
	return query.Params{
		Search:   strings.TrimSpace(c.Query("search")),
		Category: strings.TrimSpace(c.Query("category")),
		Sort:     query.ParseSortMode(c.Query("sort")),
	}
}
