package main

import (
	"context"
	"flag"
	"os"
	"path"
	_ "time/tzdata"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/jgrizzled/fantasy-portfolio-analysis/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{}
	}

	// Shell completion answers and exits when invoked by the shell hook,
	// so it has to run before flag.Parse.
	completion := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"league": predict.Files("*.yaml"),
			"cache":  predict.Files("*.sqlite"),
			"v":      predict.Nothing,
		},
	}
	completion.Complete("fpa")

	flag.Parse()
	cmd.Setup()
	os.Exit(int(commander.Execute(context.Background())))
}
