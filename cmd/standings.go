package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
	"github.com/jgrizzled/fantasy-portfolio-analysis/renderer"
)

type standingsCmd struct {
	offline bool
}

func (*standingsCmd) Name() string     { return "standings" }
func (*standingsCmd) Synopsis() string { return "print the scoreboard and the monthly awards" }
func (*standingsCmd) Usage() string {
	return `fpa standings [-offline]

  Replay the season and print the scoreboard with the month-by-month
  award table, without the rest of the analysis report.
`
}

func (c *standingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "never fetch, use cached closes only")
}

func (c *standingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, results, err := replay(ctx, c.offline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	standings := fantasy.NewStandings(results)
	printMarkdown(renderer.StandingsMarkdown(l, standings))

	return subcommands.ExitSuccess
}
