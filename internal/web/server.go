package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amishk599/remotefinder/internal/feed"
	"github.com/amishk599/remotefinder/internal/query"
)

//go:embed templates/*.html
var templateFS embed.FS

// JobSource performs the per-request upstream fetch. *feed.Fetcher satisfies it.
type JobSource interface {
	Fetch(ctx context.Context) feed.Result
}

// Deps are the collaborators the router wires into its handlers.
type Deps struct {
	Source    JobSource
	Processor *query.Processor
	Logger    *slog.Logger
}

// NewRouter constructs a gin engine with the page, API, and health routes.
// The caller selects the gin mode with gin.SetMode beforehand.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(d.Logger))
	r.SetHTMLTemplate(parseTemplates())

	jh := JobsHandler{Source: d.Source, Processor: d.Processor}
	r.GET("/", jh.Index)
	r.GET("/api/jobs", jh.List)
	r.GET("/api/health", handleHealth)

	return r
}

// NewServer wraps handler in an http.Server listening on addr.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func parseTemplates() *template.Template {
	funcs := template.FuncMap{
		"shortDate": func(date string) string {
			if len(date) >= len("2006-01-02") {
				return date[:len("2006-01-02")]
			}
			return date
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
