package fantasy

import (
	"fmt"
	"strings"
	"time"
)

// Frequency is a rebalancing cadence for a team's playbook.
//
// The zero value is Never: positions are bought once and left to drift.
type Frequency int

const (
	Never Frequency = iota
	Daily
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (f Frequency) String() string {
	switch f {
	case Never:
		return "never"
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown frequency %d", f))
	}
}

// ParseFrequency parses a cadence name. It accepts the period noun
// ("month") as well as the adverb ("monthly"), and "none" or "annually"
// as found in older league files.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "never", "none":
		return Never, nil
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year", "annually":
		return Yearly, nil
	default:
		return Never, fmt.Errorf("unknown frequency %q", s)
	}
}

// Next returns the first scheduled rebalance date strictly after a rebalance
// on 'on'. ok is false for Never.
//
// Calendar rules: Daily is the next calendar day; Weekly the next Friday (a
// full week when 'on' is a Friday); Monthly, Quarterly and Yearly the last
// calendar day of the current month, quarter or year, rolling to the next
// one when 'on' is already on or past it. Whether the returned date trades
// is the caller's concern: the backtest fires on the first trading day on or
// after it.
func (f Frequency) Next(on Date) (next Date, ok bool) {
	switch f {
	case Daily:
		return on.Add(1), true
	case Weekly:
		days := int(time.Friday-on.Weekday()) % 7
		if days <= 0 {
			days += 7
		}
		return on.Add(days), true
	case Monthly:
		end := on.EndOf(Monthly)
		if !on.Before(end) {
			end = NewDate(on.Year(), on.Month()+2, 0)
		}
		return end, true
	case Quarterly:
		end := on.EndOf(Quarterly)
		if !on.Before(end) {
			end = NewDate(end.Year(), end.Month()+4, 0)
		}
		return end, true
	case Yearly:
		end := NewDate(on.Year(), time.December, 31)
		if !on.Before(end) {
			end = NewDate(on.Year()+1, time.December, 31)
		}
		return end, true
	default:
		return Date{}, false
	}
}

// StartOf returns the first day of the period of the given frequency containing d.
func (d Date) StartOf(f Frequency) Date {
	switch f {
	case Daily:
		return d
	case Weekly:
		weekday := d.Weekday() // time.Sunday = 0, ..., time.Saturday = 6
		offset := int(weekday - time.Monday)
		for offset < 0 {
			offset += 7
		}
		return d.Add(-offset)
	case Monthly:
		return NewDate(d.Year(), d.Month(), 1)
	case Quarterly:
		quarter := (d.Month() - 1) / 3
		startMonth := time.Month(quarter*3 + 1)
		return NewDate(d.Year(), startMonth, 1)
	case Yearly:
		return NewDate(d.Year(), time.January, 1)
	default:
		panic("no period for frequency " + f.String())
	}
}

// EndOf returns the last day of the period of the given frequency containing d.
func (d Date) EndOf(f Frequency) Date {
	switch f {
	case Daily:
		return d
	case Weekly:
		weekday := d.Weekday() // time.Sunday = 0, ..., time.Saturday = 6
		offset := int(7 - weekday)
		for offset >= 7 {
			offset -= 7
		}
		return d.Add(offset)
	case Monthly:
		return NewDate(d.Year(), d.Month()+1, 0)
	case Quarterly:
		quarter := (d.Month() - 1) / 3          // in [0..3]
		endMonth := time.Month(quarter*3 + 3)   // in [1..12] hence the +3
		return NewDate(d.Year(), endMonth+1, 0) // last is next month on the day 0
	case Yearly:
		return NewDate(d.Year()+1, time.January, 0)
	default:
		panic("no period for frequency " + f.String())
	}
}

// RangeOf returns the Range of the given frequency containing the date d.
func (f Frequency) RangeOf(d Date) Range {
	return Range{From: d.StartOf(f), To: d.EndOf(f)}
}
