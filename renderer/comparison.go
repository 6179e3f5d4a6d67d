package renderer

import (
	"bytes"
	"fmt"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
	md "github.com/nao1215/markdown"
)

// ComparisonMarkdown renders a replay lined up against a benchmark,
// showing the last 'tail' shared days and the worst deviation seen
// anywhere on the curves.
func ComparisonMarkdown(c *fantasy.Comparison, tail int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Benchmark Comparison")
	doc.PlainText(fmt.Sprintf("Team %s against benchmark %s, last %d shared days.", md.Bold(c.Team()), md.Bold(c.Benchmark()), tail))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Replayed", "Benchmark", "Diff"},
	}
	for _, row := range c.Tail(tail) {
		table.Rows = append(table.Rows, []string{
			row.Day.String(),
			row.Actual.String(),
			row.Expected.String(),
			row.Diff.SignedString(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Worst deviation over %d shared days: %s.", len(c.Rows()), c.WorstDiff()))

	return doc.String()
}
