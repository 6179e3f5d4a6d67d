package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	output        string
	benchmarkFile string
	offline       bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "write the equity chart as an HTML file" }
func (*chartCmd) Usage() string {
	return `fpa chart [-o <html>] [-benchmark <csv>] [-offline]

  Replay the season and write every team's equity curve into one
  interactive HTML chart, without printing the report.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", filepath.Join("local", "equity.html"), "output HTML file")
	f.StringVar(&c.benchmarkFile, "benchmark", "", "benchmark CSV to overlay")
	f.BoolVar(&c.offline, "offline", false, "never fetch, use cached closes only")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, results, err := replay(ctx, c.offline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var benchmark *fantasy.Benchmark
	if c.benchmarkFile != "" {
		if benchmark, err = loadBenchmark(c.benchmarkFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := writeChart(c.output, l, results, benchmark); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %s\n", c.output)
	return subcommands.ExitSuccess
}
