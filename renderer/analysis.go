package renderer

import (
	"bytes"
	"fmt"
	"strings"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
	md "github.com/nao1215/markdown"
)

// AnalysisMarkdown renders the full season report: per-team figures, the
// scoreboard and the final books.
func AnalysisMarkdown(l *fantasy.League, results []*fantasy.Result, stats []fantasy.Stats, standings *fantasy.Standings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Analysis", l.Name()))
	horizon, err := l.Horizon()
	if err == nil {
		doc.PlainText(fmt.Sprintf("Season %s to %s, starting purse %s.", horizon.From, horizon.To, l.Capital()))
	}

	doc.H2("Performance")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Team", "Final Value", "Total Return", "Max Drawdown", "Sharpe", "Rebalances"},
	}
	for _, s := range stats {
		table.Rows = append(table.Rows, []string{
			s.Team,
			s.FinalValue.String(),
			s.TotalReturn.SignedString(),
			s.MaxDrawdown.String(),
			fmt.Sprintf("%.2f", s.Sharpe),
			fmt.Sprintf("%d", s.Rebalances),
		})
	}
	doc.Table(table)

	renderRanking(doc, standings)

	doc.H2("Final Books")
	books := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Team", "Cash", "Holdings"},
	}
	for _, r := range results {
		books.Rows = append(books.Rows, []string{
			r.Team().Name(),
			r.Cash().String(),
			holdingsCell(r),
		})
	}
	doc.Table(books)

	return doc.String()
}

// holdingsCell lists a book's positions as "SPY x12, TLT x40".
func holdingsCell(r *fantasy.Result) string {
	holdings := r.Holdings()
	if len(holdings) == 0 {
		return "all cash"
	}
	cells := make([]string, 0, len(holdings))
	for _, ticker := range holdings {
		cells = append(cells, fmt.Sprintf("%s x%s", ticker, r.Position(ticker)))
	}
	return strings.Join(cells, ", ")
}

// renderRanking writes the scoreboard section shared by the analysis and
// standings views.
func renderRanking(doc *md.Markdown, standings *fantasy.Standings) {
	doc.H2("Standings")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Rank", "Team", "Score", "Rebalances"},
	}
	for _, s := range standings.Ranking() {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", s.Rank),
			s.Team,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Rebalances),
		})
	}
	doc.Table(table)

	if winner := standings.Winner(); winner != "" {
		doc.PlainText(md.Bold(fmt.Sprintf("Winner: %s", winner)))
	}
}
