package fantasy

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Trade is one fill from a rebalance: the signed share delta and the close
// it executed at.
type Trade struct {
	On     Date
	Ticker string
	Shares Quantity // positive buys, negative sells
	Price  Money
	Cost   Money // Shares times Price, negative when selling
}

// Result is the outcome of replaying one team's playbook over the market.
type Result struct {
	team       *Team
	currency   string
	equity     *History[float64]
	trades     []Trade
	rebalances int
	cash       decimal.Decimal
	shares     map[string]decimal.Decimal
}

// Backtest replays a team's playbook day by day over the market's trading
// axis and returns its equity curve, trade log and final holdings.
//
// The book starts as the league's capital in cash. On every trading day the
// latest playbook entry dated on or before that day is in effect; the book
// is rebalanced whenever that entry changes (an entry dated on a holiday
// applies on the next trading day) and whenever the entry's cadence comes
// due. Equity is marked at each day's close.
func Backtest(l *League, t *Team, m *Market) (*Result, error) {
	horizon, err := l.Horizon()
	if err != nil {
		return nil, err
	}
	days := m.TradingDays(horizon)
	if len(days) == 0 {
		return nil, fmt.Errorf("no trading days between %s and %s", horizon.From, horizon.To)
	}

	r := &Result{
		team:     t,
		currency: l.currency,
		equity:   &History[float64]{},
		cash:     l.capital.value,
		shares:   make(map[string]decimal.Decimal),
	}

	var applied *Entry
	var next Date
	var scheduled bool
	for _, day := range days {
		latest := t.SettingsAsOf(day)
		switch {
		case latest != nil && latest != applied:
			r.rebalance(m, day, latest)
			applied = latest
			next, scheduled = applied.rebalance.Next(day)
		case scheduled && !day.Before(next):
			r.rebalance(m, day, applied)
			next, scheduled = applied.rebalance.Next(day)
		}
		r.equity.Append(day, r.value(m, day).InexactFloat64())
	}
	return r, nil
}

// BacktestAll replays every team in the league against the same market,
// in declaration order.
func BacktestAll(l *League, m *Market) ([]*Result, error) {
	results := make([]*Result, 0, len(l.teams))
	for _, t := range l.teams {
		r, err := Backtest(l, t, m)
		if err != nil {
			return nil, fmt.Errorf("team %q: %w", t.name, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// value prices the book at a day's close. Held tickers always have a close
// by then, they were priced when bought.
func (r *Result) value(m *Market, day Date) decimal.Decimal {
	v := r.cash
	for ticker, qty := range r.shares {
		if px, ok := m.PriceAsOf(ticker, day); ok {
			v = v.Add(qty.Mul(decimal.NewFromFloat(px)))
		}
	}
	return v
}

// rebalance liquidates the book at the day's closes and resizes it to the
// entry's target weights. Share counts are floored to whole units and the
// remainder stays in cash. A ticker with no close yet is skipped, its
// allocation waits in cash until a later rebalance finds it priced.
func (r *Result) rebalance(m *Market, day Date, e *Entry) {
	total := r.value(m, day)

	cash := total
	target := make(map[string]decimal.Decimal, len(e.weights))
	for _, ticker := range e.Tickers() {
		px, ok := m.PriceAsOf(ticker, day)
		if !ok || px <= 0 {
			continue
		}
		price := decimal.NewFromFloat(px)
		qty := total.Mul(e.weights[ticker]).Div(price).Floor()
		if qty.IsZero() {
			continue
		}
		target[ticker] = qty
		cash = cash.Sub(qty.Mul(price))
	}

	r.logTrades(m, day, target)
	r.shares = target
	r.cash = cash
	r.rebalances++
}

// logTrades records the share deltas between the current book and its new
// target, in ticker order.
func (r *Result) logTrades(m *Market, day Date, target map[string]decimal.Decimal) {
	set := make(map[string]struct{}, len(r.shares)+len(target))
	for ticker := range r.shares {
		set[ticker] = struct{}{}
	}
	for ticker := range target {
		set[ticker] = struct{}{}
	}
	tickers := make([]string, 0, len(set))
	for ticker := range set {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	for _, ticker := range tickers {
		delta := target[ticker].Sub(r.shares[ticker])
		if delta.IsZero() {
			continue
		}
		px, _ := m.PriceAsOf(ticker, day)
		price := decimal.NewFromFloat(px)
		r.trades = append(r.trades, Trade{
			On:     day,
			Ticker: ticker,
			Shares: Q(delta),
			Price:  M(price, r.currency),
			Cost:   M(delta.Mul(price), r.currency),
		})
	}
}

// Team returns the team this result replayed.
func (r *Result) Team() *Team { return r.team }

// Equity returns the team's daily closing values over the season.
func (r *Result) Equity() *History[float64] { return r.equity }

// Rebalances returns how many times the book was resized.
func (r *Result) Rebalances() int { return r.rebalances }

// Trades returns every fill, in chronological order.
func (r *Result) Trades() []Trade { return r.trades }

// Cash returns the uninvested cash after the last trading day.
func (r *Result) Cash() Money { return M(r.cash, r.currency) }

// Position returns the final share count for a ticker.
func (r *Result) Position(ticker string) Quantity { return Q(r.shares[ticker]) }

// Holdings returns the tickers still held after the last trading day, sorted.
func (r *Result) Holdings() []string {
	tickers := make([]string, 0, len(r.shares))
	for ticker, qty := range r.shares {
		if qty.IsZero() {
			continue
		}
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}

// FinalValue returns the last equity mark as money.
func (r *Result) FinalValue() Money {
	_, v := r.equity.Latest()
	return M(v, r.currency)
}
