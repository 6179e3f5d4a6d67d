package cmd

import (
	"context"
	"flag"
	"fmt"
	"runtime/debug"

	"github.com/google/subcommands"
)

type versionCmd struct{}

func (*versionCmd) Name() string     { return "version" }
func (*versionCmd) Synopsis() string { return "print build information" }
func (*versionCmd) Usage() string    { return "fpa version\n" }

func (*versionCmd) SetFlags(f *flag.FlagSet) {}

func (c *versionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Println("fpa (no build info)")
		return subcommands.ExitSuccess
	}

	fmt.Printf("fpa %s (%s)\n", info.Main.Version, info.GoVersion)
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision", "vcs.time", "vcs.modified":
			fmt.Printf("  %s: %s\n", s.Key, s.Value)
		}
	}
	return subcommands.ExitSuccess
}
