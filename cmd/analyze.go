package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
	"github.com/jgrizzled/fantasy-portfolio-analysis/chart"
	"github.com/jgrizzled/fantasy-portfolio-analysis/renderer"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	benchmarkFile string
	chartFile     string
	trades        bool
	offline       bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "replay the season and print the full report" }
func (*analyzeCmd) Usage() string {
	return `fpa analyze [-benchmark <csv>] [-chart <html>] [-trades] [-offline]

  Replay every team's playbook over the season, then print the
  performance table, the standings and each team's final book.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.benchmarkFile, "benchmark", "", "benchmark CSV to compare the leader against")
	f.StringVar(&c.chartFile, "chart", "", "also write the equity chart to this HTML file")
	f.BoolVar(&c.trades, "trades", false, "append every team's trade log")
	f.BoolVar(&c.offline, "offline", false, "never fetch, use cached closes only")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, results, err := replay(ctx, c.offline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	stats := seasonStats(l, results)
	standings := fantasy.NewStandings(results)

	var report strings.Builder
	report.WriteString(renderer.AnalysisMarkdown(l, results, stats, standings))

	var benchmark *fantasy.Benchmark
	if c.benchmarkFile != "" {
		benchmark, err = loadBenchmark(c.benchmarkFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		leader := resultOf(results, standings.Winner())
		comparison := fantasy.NewComparison(leader, benchmark, l.Capital())
		report.WriteString("\n")
		report.WriteString(renderer.ComparisonMarkdown(comparison, 12))
	}

	if c.trades {
		for _, r := range results {
			report.WriteString("\n")
			report.WriteString(renderer.TradesMarkdown(r, 0))
		}
	}

	printMarkdown(report.String())

	if c.chartFile != "" {
		if err := writeChart(c.chartFile, l, results, benchmark); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", c.chartFile)
	}

	return subcommands.ExitSuccess
}

// Helpers shared with the compare and chart subcommands.

func loadBenchmark(path string) (*fantasy.Benchmark, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening benchmark file: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return fantasy.DecodeBenchmark(name, f)
}

func resultOf(results []*fantasy.Result, team string) *fantasy.Result {
	for _, r := range results {
		if strings.EqualFold(r.Team().Name(), team) {
			return r
		}
	}
	return nil
}

func writeChart(path string, l *fantasy.League, results []*fantasy.Result, benchmark *fantasy.Benchmark) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating chart directory %q: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	return chart.Equity(f, l, results, benchmark)
}
