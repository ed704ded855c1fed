package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/amishk599/remotefinder/internal/adapter"
	"github.com/amishk599/remotefinder/internal/config"
	"github.com/amishk599/remotefinder/internal/feed"
	"github.com/amishk599/remotefinder/internal/query"
	"github.com/amishk599/remotefinder/internal/ratelimit"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "remotefinder",
	Short: "Search the RemoteOK job feed",
	Long:  "remotefinder serves a small web page that fetches the RemoteOK feed and lets you search, filter and sort it.",
	// Default to `serve` so that `remotefinder` with no args runs the web server.
	RunE:         runServe,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: REMOTEFINDER_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig loads .env into the environment, then resolves the config path and parses it.
// Priority: explicit path arg > REMOTEFINDER_CONFIG env var > "./config.yaml".
// Only the implicit ./config.yaml may be absent, in which case defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if path == "" {
		path = os.Getenv("REMOTEFINDER_CONFIG")
	}
	if path == "" {
		return config.LoadOrDefault("config.yaml")
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// buildFetcher wires the RemoteOK adapter behind the shared upstream limiter.
// feed.timeout bounds both the limiter wait and the request.
func buildFetcher(cfg *config.Config, logger *slog.Logger) *feed.Fetcher {
	httpClient := &http.Client{Timeout: cfg.Feed.Timeout}
	source := adapter.NewRemoteOKAdapter(cfg.Feed.URL, cfg.Feed.UserAgent, httpClient, logger)
	limiter := ratelimit.NewLimiter(cfg.Feed.RateLimit, cfg.Feed.Burst)
	return feed.NewFetcher(ratelimit.NewThrottledFetcher(source, limiter), cfg.Feed.Timeout, logger)
}

// addQueryFlags registers --search, --category and --sort on cmd.
func addQueryFlags(cmd *cobra.Command, params *queryFlags) {
	cmd.Flags().StringVar(&params.search, "search", "", "free-text search over title, company and tags")
	cmd.Flags().StringVar(&params.category, "category", "", `category keyword ("all" for none)`)
	cmd.Flags().StringVar(&params.sort, "sort", "newest", "sort order: newest, oldest or salary")
}

type queryFlags struct {
	search   string
	category string
	sort     string
}

func (f queryFlags) params() query.Params {
	return query.Params{
		Search:   f.search,
		Category: f.category,
		Sort:     query.ParseSortMode(f.sort),
	}
}
