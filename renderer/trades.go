package renderer

import (
	"bytes"
	"fmt"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
	md "github.com/nao1215/markdown"
)

// TradesMarkdown renders a team's fills, most recent last. A non-zero
// 'last' keeps only that many trailing fills.
func TradesMarkdown(r *fantasy.Result, last int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Trades", r.Team().Name()))

	trades := r.Trades()
	if last > 0 && last < len(trades) {
		trades = trades[len(trades)-last:]
	}
	if len(trades) == 0 {
		doc.PlainText("No trades, the playbook never triggered a rebalance.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Ticker", "Shares", "Price", "Cost"},
	}
	for _, t := range trades {
		table.Rows = append(table.Rows, []string{
			t.On.String(),
			t.Ticker,
			t.Shares.String(),
			t.Price.String(),
			t.Cost.SignedString(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("%d rebalances over the season.", r.Rebalances()))

	return doc.String()
}
