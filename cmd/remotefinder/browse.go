package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/remotefinder/internal/browse"
	"github.com/amishk599/remotefinder/internal/query"
)

var browseFlags queryFlags

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse jobs interactively (TUI)",
	Long:  "Fetches the feed once behind a spinner, then opens a list view with live search and sort over that snapshot.",
	RunE:  runBrowse,
}

func init() {
	addQueryFlags(browseCmd, &browseFlags)
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Log output while the TUI is on screen corrupts the display.
	silentLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fetcher := buildFetcher(cfg, silentLogger)
	processor := query.NewProcessor(cfg.Display.HomepageLimit, silentLogger)

	source := cfg.Feed.URL
	if u, err := url.Parse(cfg.Feed.URL); err == nil && u.Host != "" {
		source = u.Host
	}

	snapshot, err := browse.RunLoader(source, 2*cfg.Feed.Timeout, fetcher.Fetch)
	if errors.Is(err, browse.ErrCancelled) {
		return nil
	}
	if err != nil {
		fmt.Printf("Loader error: %v\n", err)
		return nil
	}

	if err := browse.RunBrowser(snapshot, processor, browseFlags.params()); err != nil {
		fmt.Printf("TUI error: %v\n", err)
	}
	return nil
}
