package fantasy

import (
	"fmt"
	"regexp"
	"sort"
)

// tickerRegex matches the exchange symbols the data providers understand:
// "SPY", "BRK-B", "BTC-USD". Lowercase is normalized before validation.
var tickerRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9.\-]{0,9}$`)

// ValidateTicker checks that a string is a usable ticker symbol.
func ValidateTicker(ticker string) error {
	if !tickerRegex.MatchString(ticker) {
		return fmt.Errorf("invalid ticker %q: want 1-10 uppercase letters, digits, '.' or '-'", ticker)
	}
	return nil
}

// Market holds the daily adjusted closes for a set of tickers, all quoted in
// a single currency. The backtest consumes it read-only.
type Market struct {
	currency string
	prices   map[string]*History[float64]
}

// NewMarket returns a new empty market for the given quote currency.
func NewMarket(currency string) *Market {
	return &Market{
		currency: currency,
		prices:   make(map[string]*History[float64]),
	}
}

// Currency returns the currency all closes are quoted in.
func (m *Market) Currency() string { return m.currency }

// Has reports whether the market holds any prices for the ticker.
func (m *Market) Has(ticker string) bool {
	h, ok := m.prices[ticker]
	return ok && h.Len() > 0
}

// Add records the close for a ticker on a day, replacing any previous value.
func (m *Market) Add(ticker string, on Date, close float64) {
	h, ok := m.prices[ticker]
	if !ok {
		h = &History[float64]{}
		m.prices[ticker] = h
	}
	h.Append(on, close)
}

// Prices returns the price history of a ticker, or nil when unknown.
func (m *Market) Prices(ticker string) *History[float64] {
	return m.prices[ticker]
}

// PriceAsOf returns the close on a given day, or the most recent close
// before it. ok is false before a ticker's first close.
func (m *Market) PriceAsOf(ticker string, day Date) (float64, bool) {
	h, ok := m.prices[ticker]
	if !ok {
		return 0, false
	}
	return h.ValueAsOf(day)
}

// Tickers returns the sorted tickers the market holds prices for.
func (m *Market) Tickers() []string {
	tickers := make([]string, 0, len(m.prices))
	for t := range m.prices {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}

// TradingDays returns the sorted union of all tickers' price dates within
// the range. A day is a trading day when any ticker closed on it.
func (m *Market) TradingDays(r Range) []Date {
	histories := make([]History[float64], 0, len(m.prices))
	for _, t := range m.Tickers() {
		histories = append(histories, *m.prices[t])
	}
	var days []Date
	for day := range Iterate(histories...) {
		if r.Contains(day) {
			days = append(days, day)
		}
	}
	return days
}
