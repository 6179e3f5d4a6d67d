package fantasy

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Defaults applied when a league file omits the purse definition.
const (
	DefaultCurrency = "USD"
	DefaultCapital  = 10000.0
)

// This file contains code to persist a league in a single YAML file, the
// format players edit by hand and keep in git.
//
// To parse and emit the yaml, we use dedicated local structs with tag
// annotations, and convert to the domain types in a second step so that
// every conversion error can name the team and field it came from.

// yentry is the playbook entry as read from the file.
type yentry struct {
	Date      string             `yaml:"date"`
	Rebalance string             `yaml:"rebalance,omitempty"`
	Weights   map[string]float64 `yaml:"weights"`
}

// yteam is the team object as read from the file.
type yteam struct {
	Name     string   `yaml:"name"`
	Playbook []yentry `yaml:"playbook"`
}

// yleague is the top level league object as read from the file.
type yleague struct {
	Name     string   `yaml:"name"`
	Currency string   `yaml:"currency,omitempty"`
	Capital  *float64 `yaml:"capital,omitempty"`
	Start    string   `yaml:"start"`
	End      string   `yaml:"end,omitempty"`
	Teams    []yteam  `yaml:"teams"`
}

// parseLeagueDate parses a date field from a league file. Dates are plain
// calendar days, no relative forms.
func parseLeagueDate(field, value string) (Date, error) {
	t, err := time.Parse(readDateFormat, value)
	if err != nil {
		return Date{}, fmt.Errorf("format error: %s %q is not a %s date", field, value, DateFormat)
	}
	return NewDate(t.Date()), nil
}

// DecodeLeague reads a league definition in YAML from a stream. Unknown
// fields are rejected so that a typoed key fails loudly instead of being
// silently dropped. The result is structurally complete but not yet
// validated; call [League.Validate] before using it.
func DecodeLeague(r io.Reader) (*League, error) {
	var jl yleague
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&jl); err != nil {
		return nil, fmt.Errorf("format error: cannot parse league file: %w", err)
	}

	if jl.Currency == "" {
		jl.Currency = DefaultCurrency
	}
	capital := DefaultCapital
	if jl.Capital != nil {
		capital = *jl.Capital
	}

	start, err := parseLeagueDate("start", jl.Start)
	if err != nil {
		return nil, err
	}
	var end Date
	if jl.End != "" {
		if end, err = parseLeagueDate("end", jl.End); err != nil {
			return nil, err
		}
	}

	l := NewLeague(jl.Name, jl.Currency, capital, start, end)
	for _, jt := range jl.Teams {
		entries := make([]*Entry, 0, len(jt.Playbook))
		for _, je := range jt.Playbook {
			on, err := parseLeagueDate("date", je.Date)
			if err != nil {
				return nil, fmt.Errorf("team %q: %w", jt.Name, err)
			}
			freq, err := ParseFrequency(je.Rebalance)
			if err != nil {
				return nil, fmt.Errorf("team %q: entry %s: %w", jt.Name, on, err)
			}
			weights := make(map[string]decimal.Decimal, len(je.Weights))
			for ticker, w := range je.Weights {
				weights[ticker] = decimal.NewFromFloat(w)
			}
			entries = append(entries, NewEntry(on, freq, weights))
		}
		l.AddTeam(NewTeam(jt.Name, entries...))
	}
	return l, nil
}

// EncodeLeague writes a league definition as YAML, the same format
// DecodeLeague reads. Teams keep their declaration order, playbooks their
// chronological one.
func EncodeLeague(w io.Writer, l *League) error {
	capital, _ := l.capital.value.Float64()
	jl := yleague{
		Name:     l.name,
		Currency: l.currency,
		Capital:  &capital,
		Start:    l.start.String(),
	}
	if !l.end.IsZero() {
		jl.End = l.end.String()
	}
	for _, t := range l.teams {
		jt := yteam{Name: t.name}
		for _, e := range t.playbook {
			je := yentry{
				Date:    e.on.String(),
				Weights: make(map[string]float64, len(e.weights)),
			}
			if e.rebalance != Never {
				je.Rebalance = e.rebalance.String()
			}
			for ticker, weight := range e.weights {
				je.Weights[ticker], _ = weight.Float64()
			}
			jt.Playbook = append(jt.Playbook, je)
		}
		jl.Teams = append(jl.Teams, jt)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&jl); err != nil {
		return fmt.Errorf("persist error: cannot write league file: %w", err)
	}
	return enc.Close()
}
