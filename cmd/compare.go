package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
	"github.com/jgrizzled/fantasy-portfolio-analysis/renderer"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	team    string
	tail    int
	offline bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare a team's replay against a benchmark CSV" }
func (*compareCmd) Usage() string {
	return `fpa compare [-team <name>] [-tail <n>] [-offline] <benchmark.csv>

  Replay the season and line a team's equity up against a benchmark
  level series, day by day. The benchmark CSV has two columns, date in
  02-Jan-06 form and level. The leader is compared when -team is not
  given.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.team, "team", "", "team to compare, defaults to the current leader")
	f.IntVar(&c.tail, "tail", 10, "how many trailing days to print")
	f.BoolVar(&c.offline, "offline", false, "never fetch, use cached closes only")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one benchmark CSV expected")
		return subcommands.ExitUsageError
	}

	l, results, err := replay(ctx, c.offline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	team := c.team
	if team == "" {
		team = fantasy.NewStandings(results).Winner()
	}
	r := resultOf(results, team)
	if r == nil {
		names := make([]string, 0, len(results))
		for _, res := range results {
			names = append(names, res.Team().Name())
		}
		fmt.Fprintf(os.Stderr, "Error: no team %q, teams are: %s\n", team, strings.Join(names, ", "))
		return subcommands.ExitUsageError
	}

	benchmark, err := loadBenchmark(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	comparison := fantasy.NewComparison(r, benchmark, l.Capital())
	printMarkdown(renderer.ComparisonMarkdown(comparison, c.tail))

	return subcommands.ExitSuccess
}
