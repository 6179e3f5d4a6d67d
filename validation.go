package fantasy

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Validate checks the league definition and returns all failures joined
// into one error, so a hand-edited file gets fixed in a single pass rather
// than one complaint at a time.
func (l *League) Validate() error {
	var errs []error

	if l.name == "" {
		errs = append(errs, fmt.Errorf("league has no name"))
	}
	if !l.capital.IsPositive() {
		errs = append(errs, fmt.Errorf("capital must be positive, got %s", l.capital))
	}
	if l.start.IsZero() {
		errs = append(errs, fmt.Errorf("league has no start date"))
	} else if !l.end.IsZero() && !l.start.Before(l.end) {
		errs = append(errs, fmt.Errorf("start %s must be before end %s", l.start, l.end))
	}
	if len(l.teams) == 0 {
		errs = append(errs, fmt.Errorf("league has no teams"))
	}

	seen := make(map[string]struct{}, len(l.teams))
	for _, t := range l.teams {
		if _, dup := seen[t.name]; dup {
			errs = append(errs, fmt.Errorf("team %q is declared twice", t.name))
		}
		seen[t.name] = struct{}{}
		if err := t.validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// validate checks a single team's playbook.
func (t *Team) validate() error {
	var errs []error

	if t.name == "" {
		errs = append(errs, fmt.Errorf("team has no name"))
	}
	if len(t.playbook) == 0 {
		errs = append(errs, fmt.Errorf("team %q has an empty playbook", t.name))
	}

	seen := make(map[Date]struct{}, len(t.playbook))
	for _, e := range t.playbook {
		if _, dup := seen[e.on]; dup {
			errs = append(errs, fmt.Errorf("team %q has two playbook entries on %s", t.name, e.on))
		}
		seen[e.on] = struct{}{}

		for _, ticker := range e.Tickers() {
			if err := ValidateTicker(ticker); err != nil {
				errs = append(errs, fmt.Errorf("team %q: entry %s: %w", t.name, e.on, err))
			}
			if e.weights[ticker].IsNegative() {
				errs = append(errs, fmt.Errorf("team %q: entry %s: weight for %s must not be negative, got %s", t.name, e.on, ticker, e.weights[ticker]))
			}
		}
		if sum := e.WeightSum(); sum.GreaterThan(one) {
			errs = append(errs, fmt.Errorf("team %q: entry %s: weights sum to %s, must not exceed 1", t.name, e.on, sum))
		}
	}
	return errors.Join(errs...)
}
