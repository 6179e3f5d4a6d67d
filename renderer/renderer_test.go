package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
)

func weights(pairs map[string]float64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(pairs))
	for ticker, v := range pairs {
		out[ticker] = decimal.NewFromFloat(v)
	}
	return out
}

// flatMarket covers every weekday of the range with a constant close per
// ticker.
func flatMarket(prices map[string]float64, over fantasy.Range) *fantasy.Market {
	m := fantasy.NewMarket("USD")
	for ticker, close := range prices {
		for day := range over.Days() {
			if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
			m.Add(ticker, day, close)
		}
	}
	return m
}

// fixture replays a two team league over a flat 2024 market: one team all
// in on SPY, one sitting on the purse.
func fixture(t *testing.T) (*fantasy.League, []*fantasy.Result, []fantasy.Stats, *fantasy.Standings) {
	t.Helper()
	t.Setenv("FANTASY_TESTING_NOW", "2025-03-05 15:04:05")

	l := fantasy.NewLeague("Office League", "USD", fantasy.DefaultCapital,
		fantasy.NewDate(2024, time.January, 1), fantasy.NewDate(2025, time.January, 1))
	l.AddTeam(fantasy.NewTeam("Boring But Rich",
		fantasy.NewEntry(fantasy.NewDate(2024, time.January, 1), fantasy.Never, weights(map[string]float64{"SPY": 1}))))
	l.AddTeam(fantasy.NewTeam("Cash Cows",
		fantasy.NewEntry(fantasy.NewDate(2024, time.January, 1), fantasy.Never, nil)))

	over := fantasy.NewRange(fantasy.NewDate(2024, time.January, 1), fantasy.NewDate(2024, time.December, 31))
	m := flatMarket(map[string]float64{"SPY": 500}, over)

	results, err := fantasy.BacktestAll(l, m)
	if err != nil {
		t.Fatalf("BacktestAll() failed: %v", err)
	}
	stats := make([]fantasy.Stats, 0, len(results))
	for _, r := range results {
		stats = append(stats, fantasy.NewStats(r, l.Capital()))
	}
	return l, results, stats, fantasy.NewStandings(results)
}

func TestAnalysisMarkdown(t *testing.T) {
	l, results, stats, standings := fixture(t)

	out := AnalysisMarkdown(l, results, stats, standings)

	for _, want := range []string{
		"# Office League Analysis",
		"## Performance",
		"## Standings",
		"## Final Books",
		"Boring But Rich",
		"Cash Cows",
		"$10,000.00",
		"SPY x20",
		"all cash",
		"**Winner:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("analysis is missing %q:\n%s", want, out)
		}
	}
}

func TestStandingsMarkdown(t *testing.T) {
	l, _, _, standings := fixture(t)

	out := StandingsMarkdown(l, standings)

	for _, want := range []string{
		"# Office League Standings",
		"## Monthly Awards",
		"2024-01",
		"2024-12",
		"**Winner:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("standings are missing %q:\n%s", want, out)
		}
	}
}

func TestStandingsMarkdownNoCompletedMonth(t *testing.T) {
	// The season is three weeks old, no month has closed yet.
	t.Setenv("FANTASY_TESTING_NOW", "2024-01-20 15:04:05")

	l := fantasy.NewLeague("Office League", "USD", fantasy.DefaultCapital,
		fantasy.NewDate(2024, time.January, 1), fantasy.NewDate(2025, time.January, 1))
	l.AddTeam(fantasy.NewTeam("Solo",
		fantasy.NewEntry(fantasy.NewDate(2024, time.January, 1), fantasy.Never, weights(map[string]float64{"SPY": 1}))))

	over := fantasy.NewRange(fantasy.NewDate(2024, time.January, 1), fantasy.NewDate(2024, time.January, 19))
	results, err := fantasy.BacktestAll(l, flatMarket(map[string]float64{"SPY": 500}, over))
	if err != nil {
		t.Fatalf("BacktestAll() failed: %v", err)
	}

	out := StandingsMarkdown(l, fantasy.NewStandings(results))

	if !strings.Contains(out, "No month has completed yet, no awards to show.") {
		t.Errorf("standings should explain the missing awards:\n%s", out)
	}
	if strings.Contains(out, "## Monthly Awards") {
		t.Errorf("standings should not render an empty awards table:\n%s", out)
	}
}

func TestTradesMarkdown(t *testing.T) {
	_, results, _, _ := fixture(t)

	out := TradesMarkdown(results[0], 0)

	for _, want := range []string{
		"# Boring But Rich Trades",
		"SPY",
		"2024-01-01",
		"rebalances over the season.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("trades are missing %q:\n%s", want, out)
		}
	}
}

func TestTradesMarkdownKeepsTail(t *testing.T) {
	t.Setenv("FANTASY_TESTING_NOW", "2025-03-05 15:04:05")

	// A mid-season switch from SPY to TLT produces fills on two days.
	l := fantasy.NewLeague("Office League", "USD", fantasy.DefaultCapital,
		fantasy.NewDate(2024, time.January, 1), fantasy.NewDate(2025, time.January, 1))
	l.AddTeam(fantasy.NewTeam("Switcher",
		fantasy.NewEntry(fantasy.NewDate(2024, time.January, 1), fantasy.Never, weights(map[string]float64{"SPY": 1})),
		fantasy.NewEntry(fantasy.NewDate(2024, time.June, 1), fantasy.Never, weights(map[string]float64{"TLT": 1}))))

	over := fantasy.NewRange(fantasy.NewDate(2024, time.January, 1), fantasy.NewDate(2024, time.December, 31))
	results, err := fantasy.BacktestAll(l, flatMarket(map[string]float64{"SPY": 500, "TLT": 100}, over))
	if err != nil {
		t.Fatalf("BacktestAll() failed: %v", err)
	}

	out := TradesMarkdown(results[0], 2)

	// June 1 is a Saturday, the switch fills on Monday the 3rd.
	if !strings.Contains(out, "2024-06-03") {
		t.Errorf("tail should keep the switch fills:\n%s", out)
	}
	if strings.Contains(out, "2024-01-01") {
		t.Errorf("tail should drop the opening fill:\n%s", out)
	}
}

func TestTradesMarkdownEmpty(t *testing.T) {
	_, results, _, _ := fixture(t)

	// results follow the league's declaration order, the cash team is
	// second.
	out := TradesMarkdown(results[1], 0)

	if !strings.Contains(out, "No trades, the playbook never triggered a rebalance.") {
		t.Errorf("empty book should say so:\n%s", out)
	}
}

func TestComparisonMarkdown(t *testing.T) {
	l, results, _, _ := fixture(t)

	b, err := fantasy.DecodeBenchmark("SPX", strings.NewReader("Date,Level\n02-Jan-24,100\n03-Jan-24,100\n"))
	if err != nil {
		t.Fatalf("DecodeBenchmark() failed: %v", err)
	}

	out := ComparisonMarkdown(fantasy.NewComparison(results[0], b, l.Capital()), 5)

	for _, want := range []string{
		"# Benchmark Comparison",
		"**SPX**",
		"**Boring But Rich**",
		"2024-01-02",
		"Worst deviation over 2 shared days",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("comparison is missing %q:\n%s", want, out)
		}
	}
}
