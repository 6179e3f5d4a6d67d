package renderer

import (
	"bytes"
	"fmt"
	"strings"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
	md "github.com/nao1215/markdown"
)

// StandingsMarkdown renders the scoreboard and the month-by-month awards
// behind it.
func StandingsMarkdown(l *fantasy.League, standings *fantasy.Standings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Standings", l.Name()))
	renderRanking(doc, standings)

	awards := standings.Awards()
	if len(awards) == 0 {
		doc.PlainText("No month has completed yet, no awards to show.")
		return doc.String()
	}

	doc.H2("Monthly Awards")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Month", "Best Return", "Taken By", "Best Drawdown", "Taken By"},
	}
	for _, a := range awards {
		table.Rows = append(table.Rows, []string{
			a.Month,
			a.BestReturn.SignedString(),
			strings.Join(a.ReturnWinners, ", "),
			a.BestDrawdown.String(),
			strings.Join(a.DrawdownWinners, ", "),
		})
	}
	doc.Table(table)

	return doc.String()
}
