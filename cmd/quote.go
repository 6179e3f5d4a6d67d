package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "print the latest market price for tickers" }
func (*quoteCmd) Usage() string {
	return `fpa quote <ticker>...

  Ask the chart API for the latest regular market price of each ticker.
  Live data, it never touches the cache or the league.
`
}

func (*quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ticker expected")
		return subcommands.ExitUsageError
	}

	client := yahooClient()
	status := subcommands.ExitSuccess
	for _, ticker := range f.Args() {
		price, err := client.Latest(ctx, ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", ticker, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s\t%.2f\n", strings.ToUpper(ticker), price)
	}
	return status
}
