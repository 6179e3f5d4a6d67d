package fantasy

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// League is a season definition: the shared starting purse, the date range
// to play over, and the competing teams with their playbooks.
type League struct {
	name     string
	currency string
	capital  Money
	start    Date
	end      Date // zero means "through today"
	teams    []*Team
}

// NewLeague returns a league with the given purse and horizon.
// An end of zero leaves the season open (it runs through today).
func NewLeague(name, currency string, capital float64, start, end Date) *League {
	return &League{
		name:     name,
		currency: currency,
		capital:  M(capital, currency),
		start:    start,
		end:      end,
	}
}

// Name returns the league's display name.
func (l *League) Name() string { return l.name }

// Currency returns the currency every team's purse and equity is quoted in.
func (l *League) Currency() string { return l.currency }

// Capital returns the starting cash each team plays with.
func (l *League) Capital() Money { return l.capital }

// Start returns the first day of the season.
func (l *League) Start() Date { return l.start }

// End returns the declared last day of the season, or the zero date when the
// season is open-ended.
func (l *League) End() Date { return l.end }

// Teams returns the teams in declaration order.
func (l *League) Teams() []*Team { return l.teams }

// Team returns the team with the given name, or nil.
func (l *League) Team(name string) *Team {
	for _, t := range l.teams {
		if t.name == name {
			return t
		}
	}
	return nil
}

// AddTeam appends a team to the league.
func (l *League) AddTeam(t *Team) *League {
	l.teams = append(l.teams, t)
	return l
}

// Tickers returns the sorted set of tickers named anywhere in any team's
// playbook. This is the fetch list for the price layer.
func (l *League) Tickers() []string {
	set := make(map[string]struct{})
	for _, t := range l.teams {
		for _, e := range t.playbook {
			for ticker := range e.weights {
				set[ticker] = struct{}{}
			}
		}
	}
	tickers := make([]string, 0, len(set))
	for ticker := range set {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}

// Horizon returns the effective analysis range. The declared end defaults to
// today for open seasons and is clamped back to today when it lies in the
// future. The end day itself never trades: closes exist through end-1.
func (l *League) Horizon() (Range, error) {
	if l.start.IsZero() {
		return Range{}, fmt.Errorf("league %q has no start date", l.name)
	}
	end := l.end
	today := Today()
	if end.IsZero() || end.After(today) {
		end = today
	}
	if !l.start.Before(end) {
		return Range{}, fmt.Errorf("league %q start %s must be before end %s", l.name, l.start, end)
	}
	return Range{From: l.start, To: end}, nil
}

// Team is one competitor: a name and a playbook of dated allocation
// settings, kept chronologically sorted.
type Team struct {
	name     string
	playbook []*Entry
}

// NewTeam returns a team whose playbook is the given entries, sorted by
// date. The sort is stable, so same-day entries keep their declared order
// (the last one wins at lookup).
func NewTeam(name string, entries ...*Entry) *Team {
	t := &Team{name: name, playbook: entries}
	sort.SliceStable(t.playbook, func(i, j int) bool {
		return t.playbook[i].on.Before(t.playbook[j].on)
	})
	return t
}

// Name returns the team's display name.
func (t *Team) Name() string { return t.name }

// Playbook returns the team's entries in chronological order.
func (t *Team) Playbook() []*Entry { return t.playbook }

// SettingsAsOf returns the playbook entry in effect on a given day: the
// latest entry dated on or before it. It returns nil before the first
// entry, when the team holds cash only.
func (t *Team) SettingsAsOf(day Date) *Entry {
	var found *Entry
	for _, e := range t.playbook {
		if e.on.After(day) {
			break
		}
		found = e
	}
	return found
}

// Entry is one dated playbook line: the target weights per ticker and the
// automatic rebalancing cadence, effective from its date until the next
// entry.
type Entry struct {
	on        Date
	rebalance Frequency
	weights   map[string]decimal.Decimal
}

// NewEntry returns a playbook entry. Weights are ticker allocation ratios;
// whatever they leave of 1.0 stays in cash.
func NewEntry(on Date, rebalance Frequency, weights map[string]decimal.Decimal) *Entry {
	w := make(map[string]decimal.Decimal, len(weights))
	for ticker, weight := range weights {
		w[ticker] = weight
	}
	return &Entry{on: on, rebalance: rebalance, weights: w}
}

// Date returns the day the entry takes effect.
func (e *Entry) Date() Date { return e.on }

// Rebalance returns the automatic rebalancing cadence.
func (e *Entry) Rebalance() Frequency { return e.rebalance }

// Tickers returns the entry's tickers, sorted. Rebalances buy in this order.
func (e *Entry) Tickers() []string {
	tickers := make([]string, 0, len(e.weights))
	for ticker := range e.weights {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}

// Weight returns the allocation ratio for a ticker (zero when absent).
func (e *Entry) Weight(ticker string) decimal.Decimal { return e.weights[ticker] }

// WeightSum returns the total allocated ratio across all tickers.
func (e *Entry) WeightSum() decimal.Decimal {
	sum := decimal.Zero
	for _, w := range e.weights {
		sum = sum.Add(w)
	}
	return sum
}
