// Package cmd implements the fpa command-line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
	"github.com/jgrizzled/fantasy-portfolio-analysis/logging"
	"github.com/jgrizzled/fantasy-portfolio-analysis/pricedb"
	"github.com/jgrizzled/fantasy-portfolio-analysis/yahoo"
)

// Commands lists every subcommand. A main package registers them on a
// subcommands.Commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&standingsCmd{},
	&fetchCmd{},
	&quoteCmd{},
	&compareCmd{},
	&chartCmd{},
	&exportCmd{},
	&importCmd{},
	&initCmd{},
	&topicCmd{},
	&assistCmd{},
	&versionCmd{},
}

// A CLI process is short lived, globals for the app-wide flags are fine.

var (
	leagueFile = flag.String("league", envOr("FANTASY_LEAGUE", "league.yaml"), "path to the league file")
	cacheFile  = flag.String("cache", envOr("FANTASY_CACHE", filepath.Join("local", "prices.sqlite")), "path to the price cache")
	verbose    = flag.Bool("v", false, "enable debug logging")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Setup configures logging from the app flags. Call it after flag.Parse.
func Setup() {
	level := "warn"
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	if *verbose {
		level = "debug"
	}
	logging.Configure(logging.Config{Level: level})
}

// LoadLeague reads and validates the league file.
func LoadLeague() (*fantasy.League, error) {
	f, err := os.Open(*leagueFile)
	if err != nil {
		return nil, fmt.Errorf("opening league file: %w", err)
	}
	defer f.Close()

	l, err := fantasy.DecodeLeague(f)
	if err != nil {
		return nil, fmt.Errorf("reading league file %q: %w", *leagueFile, err)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid league %q: %w", *leagueFile, err)
	}
	return l, nil
}

// OpenCache opens the price cache, creating its directory when needed.
func OpenCache() (*pricedb.DB, error) {
	if dir := filepath.Dir(*cacheFile); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory %q: %w", dir, err)
		}
	}
	return pricedb.Open(*cacheFile)
}

// yahooClient builds the chart API client the commands share.
func yahooClient() *yahoo.Client {
	return yahoo.NewClient(yahoo.WithLogger(logging.WithComponent("yahoo")))
}

// Providers is the default provider chain, the chart API first and stooq
// as fallback.
func Providers() fantasy.PriceProvider {
	return fantasy.Chain{
		fantasy.NewYahooProvider(yahooClient()),
		fantasy.NewStooqProvider(),
	}
}

// replay loads the league, fills the cache over its horizon, and backtests
// every team. It is the common front half of the reporting commands.
func replay(ctx context.Context, offline bool) (*fantasy.League, []*fantasy.Result, error) {
	l, err := LoadLeague()
	if err != nil {
		return nil, nil, err
	}

	db, err := OpenCache()
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	provider := Providers()
	if offline {
		provider = fantasy.Offline()
	}

	market, err := fantasy.UpdatePrices(ctx, db, provider, l)
	if err != nil {
		return nil, nil, err
	}

	results, err := fantasy.BacktestAll(l, market)
	if err != nil {
		return nil, nil, err
	}
	return l, results, nil
}

// seasonStats computes each team's stats in team declaration order.
func seasonStats(l *fantasy.League, results []*fantasy.Result) []fantasy.Stats {
	stats := make([]fantasy.Stats, 0, len(results))
	for _, r := range results {
		stats = append(stats, fantasy.NewStats(r, l.Capital()))
	}
	return stats
}

// renderMarkdown formats markdown for the terminal, returning the source
// unchanged when rendering fails.
func renderMarkdown(source string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return source
	}
	out, err := r.Render(source)
	if err != nil {
		return source
	}
	return out
}

func printMarkdown(source string) {
	fmt.Print(renderMarkdown(source))
}
