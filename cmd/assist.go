package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
	"github.com/jgrizzled/fantasy-portfolio-analysis/agent"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	offline bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an assistant that knows the league" }
func (*assistCmd) Usage() string {
	return `fpa assist [-offline] [question...]

  Start an interactive session with the league assistant. Needs a
  Gemini API key in GEMINI_API_KEY. A question given as arguments is
  answered first.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "replay from cached closes only")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	l, results, err := replay(ctx, c.offline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	stats := seasonStats(l, results)
	standings := fantasy.NewStandings(results)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing the Gemini client: %v\n", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(l, results, stats, standings, yahooClient().Latest)
	scout := agent.NewScout()
	a := agent.New(os.Stdout, os.Stdin, analyst, scout)
	a.Render = renderMarkdown

	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: assistant failed: %v\n", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
