package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/remotefinder/internal/query"
)

var checkFlags queryFlags

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch once, print results, exit",
	Long:  "One-shot fetch: runs the same search, filter and sort as the web page and prints the result as a table.",
	RunE:  runCheck,
}

func init() {
	addQueryFlags(checkCmd, &checkFlags)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	fetcher := buildFetcher(cfg, logger)
	processor := query.NewProcessor(cfg.Display.HomepageLimit, logger)

	res := processor.Process(fetcher.Fetch(context.Background()), checkFlags.params())
	if res.ErrorMessage != "" {
		fmt.Fprintln(os.Stderr, res.ErrorMessage)
		os.Exit(1)
	}

	fmt.Printf("%-40s %-25s %-18s %-12s %s\n", "Title", "Company", "Location", "Date", "Salary")
	fmt.Println(strings.Repeat("─", 110))
	for _, j := range res.Jobs {
		fmt.Printf("%-40s %-25s %-18s %-12s %s\n",
			truncate(j.Title, 40), truncate(j.Company, 25), truncate(j.Location, 18), truncate(j.Date, 10), j.Salary)
	}

	fmt.Printf("\nTotal: %d jobs\n", len(res.Jobs))
	return nil
}

// truncate cuts s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
