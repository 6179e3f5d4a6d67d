package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
)

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "dump the price cache as JSONL on stdout" }
func (*exportCmd) Usage() string {
	return `fpa export > closes.jsonl

  Write every cached close, one ticker per line, in the import/export
  format. The dump round-trips through 'fpa import'.
`
}

func (*exportCmd) SetFlags(f *flag.FlagSet) {}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := OpenCache()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if err := fantasy.ExportPrices(ctx, os.Stdout, db); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge a JSONL price dump from stdin into the cache" }
func (*importCmd) Usage() string {
	return `fpa import < closes.jsonl

  Read closes in the import/export format and merge them into the
  cache. Imported spans count as fetched, so a later update does not
  ask a provider for them again.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := OpenCache()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	n, err := fantasy.ImportPrices(ctx, os.Stdin, db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d closes.\n", n)
	return subcommands.ExitSuccess
}
