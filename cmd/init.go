package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
)

// initCmd holds the flags for the 'init' subcommand.
type initCmd struct {
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "write a starter league file" }
func (*initCmd) Usage() string {
	return `fpa init [-f]

  Write a starter league file to edit, at the -league path. Refuses to
  touch an existing file unless -f is given.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "overwrite an existing league file")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		if _, err := os.Stat(*leagueFile); err == nil {
			fmt.Fprintf(os.Stderr, "Error: league file %q already exists, use -f to overwrite\n", *leagueFile)
			return subcommands.ExitUsageError
		}
	}

	out, err := os.Create(*leagueFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating league file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := fantasy.EncodeLeague(out, starterLeague()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote a starter league to %s. Edit the teams, then run 'fpa analyze'.\n", *leagueFile)
	return subcommands.ExitSuccess
}

// starterLeague is a season from New Year to today, with two teams to
// rename and rewrite.
func starterLeague() *fantasy.League {
	start := fantasy.NewDate(fantasy.Today().Year(), time.January, 1)
	w := func(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

	l := fantasy.NewLeague("My League", fantasy.DefaultCurrency, fantasy.DefaultCapital, start, fantasy.Date{})
	l.AddTeam(fantasy.NewTeam("Boring But Rich",
		fantasy.NewEntry(start, fantasy.Monthly, map[string]decimal.Decimal{
			"SPY": w(0.6),
			"TLT": w(0.4),
		})))
	l.AddTeam(fantasy.NewTeam("Tech Believers",
		fantasy.NewEntry(start, fantasy.Never, map[string]decimal.Decimal{
			"QQQ": w(0.9),
		})))
	return l
}
