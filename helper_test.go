package fantasy

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jgrizzled/fantasy-portfolio-analysis/pricedb"
)

// pinNow freezes the clock for the duration of a test, so horizon clamps
// and standings months are stable whenever the suite runs.
func pinNow(t *testing.T, value string) {
	t.Helper()
	t.Setenv("FANTASY_TESTING_NOW", value)
}

// w converts plain float weights into the decimal map entries expect.
func w(pairs map[string]float64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(pairs))
	for ticker, v := range pairs {
		out[ticker] = decimal.NewFromFloat(v)
	}
	return out
}

// addFlat fills a market with the same close for every weekday of the
// range. Weekends are left out so the trading axis looks like a real one.
func addFlat(m *Market, ticker string, close float64, over Range) {
	for day := range over.Days() {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		m.Add(ticker, day, close)
	}
}

// year2024 is the default market span of the backtest fixtures.
var year2024 = NewRange(NewDate(2024, time.January, 1), NewDate(2024, time.December, 31))

// flatMarket returns a USD market where each ticker closes at a constant
// price on every weekday of 2024. Constant prices keep the arithmetic of
// the scenarios exact.
func flatMarket(prices map[string]float64) *Market {
	m := NewMarket("USD")
	for ticker, px := range prices {
		addFlat(m, ticker, px, year2024)
	}
	return m
}

// testDB opens a throwaway price cache that is removed with the test.
func testDB(t *testing.T) *pricedb.DB {
	t.Helper()
	db, err := pricedb.Open(filepath.Join(t.TempDir(), "prices.sqlite"))
	if err != nil {
		t.Fatalf("pricedb.Open() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// leagueOf returns a one-year 2024 league with the default purse and the
// given teams.
func leagueOf(teams ...*Team) *League {
	l := NewLeague("Test League", "USD", DefaultCapital, NewDate(2024, time.January, 1), NewDate(2025, time.January, 1))
	for _, t := range teams {
		l.AddTeam(t)
	}
	return l
}
