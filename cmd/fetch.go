package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	start string
	end   string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "prefetch closes into the price cache" }
func (*fetchCmd) Usage() string {
	return `fpa fetch [-s <date>] [-e <date>] [ticker...]

  Fill the price cache for the league's tickers over its season, or for
  the given tickers and dates. Days already cached are not requested
  again, so it is cheap to run daily.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "first day to cache, defaults to the league start")
	f.StringVar(&c.end, "e", "", "last day to cache, defaults to the league end")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tickers := f.Args()
	var r fantasy.Range
	currency := fantasy.DefaultCurrency

	// The league supplies the defaults; flags and args override it, and a
	// fully explicit invocation needs no league file at all.
	l, lerr := LoadLeague()
	if lerr == nil {
		h, err := l.Horizon()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		r = h
		currency = l.Currency()
		if len(tickers) == 0 {
			tickers = l.Tickers()
		}
	}

	if c.start != "" {
		d, err := fantasy.ParseDate(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -s: %v\n", err)
			return subcommands.ExitUsageError
		}
		r.From = d
	}
	if c.end != "" {
		d, err := fantasy.ParseDate(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -e: %v\n", err)
			return subcommands.ExitUsageError
		}
		r.To = d.Add(1) // the last day to cache is wanted inclusive
	}

	if len(tickers) == 0 || r.From.IsZero() {
		fmt.Fprintf(os.Stderr, "Error: no league to fetch for (%v), give tickers and -s/-e instead\n", lerr)
		return subcommands.ExitUsageError
	}

	db, err := OpenCache()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if _, err := fantasy.FetchPrices(ctx, db, Providers(), currency, tickers, r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Cached %d tickers between %s and %s.\n", len(tickers), r.From, r.To.Add(-1))
	return subcommands.ExitSuccess
}
