package fantasy

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// benchmarkDateFormat is the date layout of benchmark level files,
// e.g. "28-Mar-24".
const benchmarkDateFormat = "02-Jan-06"

// Benchmark is a reference curve of index levels to check a replay
// against, typically an export from another backtesting tool.
type Benchmark struct {
	name   string
	levels *History[float64]
}

// DecodeBenchmark reads a benchmark from a "date,level" CSV stream. The
// header row is optional.
func DecodeBenchmark(name string, r io.Reader) (*Benchmark, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark csv: %w", err)
	}

	b := &Benchmark{name: name, levels: &History[float64]{}}
	for i, rec := range records {
		day, err := time.Parse(benchmarkDateFormat, strings.TrimSpace(rec[0]))
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("benchmark %q line %d: bad date %q", name, i+1, rec[0])
		}
		level, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("benchmark %q line %d: bad level %q", name, i+1, rec[1])
		}
		b.levels.Append(NewDate(day.Date()), level)
	}
	if b.levels.Len() == 0 {
		return nil, fmt.Errorf("benchmark %q has no level rows", name)
	}
	return b, nil
}

// EncodeBenchmark writes an equity curve as a "date,level" CSV stream, the
// format DecodeBenchmark reads back.
func EncodeBenchmark(w io.Writer, equity *History[float64]) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "level"}); err != nil {
		return fmt.Errorf("failed to write benchmark csv: %w", err)
	}
	for day, level := range equity.Values() {
		row := []string{day.Format(benchmarkDateFormat), strconv.FormatFloat(level, 'f', -1, 64)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write benchmark csv: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// Name returns the benchmark's display name.
func (b *Benchmark) Name() string { return b.name }

// Levels returns the raw index levels.
func (b *Benchmark) Levels() *History[float64] { return b.levels }

// Expected rescales the levels into the equity a book tracking the
// benchmark would have shown, starting from the given capital.
func (b *Benchmark) Expected(capital Money) *History[float64] {
	expected := &History[float64]{}
	_, first := b.levels.First()
	for day, level := range b.levels.Values() {
		expected.Append(day, level/first*capital.AsFloat())
	}
	return expected
}

// ComparisonRow pairs one day's replayed value with the benchmark's.
type ComparisonRow struct {
	Day      Date
	Actual   Money
	Expected Money
	Diff     Percent // actual over expected
}

// Comparison lines a replay up against a benchmark, day by day.
type Comparison struct {
	team      string
	benchmark string
	rows      []ComparisonRow
}

// NewComparison rescales the benchmark to the starting capital and pairs
// it with the replayed curve. Days only one side knows are dropped.
func NewComparison(r *Result, b *Benchmark, capital Money) *Comparison {
	c := &Comparison{team: r.Team().Name(), benchmark: b.name}
	expected := b.Expected(capital)
	currency := capital.Currency()
	for day, actual := range r.Equity().Values() {
		exp, ok := expected.Get(day)
		if !ok {
			continue
		}
		c.rows = append(c.rows, ComparisonRow{
			Day:      day,
			Actual:   M(actual, currency),
			Expected: M(exp, currency),
			Diff:     PercentOf(actual/exp - 1),
		})
	}
	return c
}

// Team returns the replayed team's name.
func (c *Comparison) Team() string { return c.team }

// Benchmark returns the benchmark's name.
func (c *Comparison) Benchmark() string { return c.benchmark }

// Rows returns every paired day in chronological order.
func (c *Comparison) Rows() []ComparisonRow { return c.rows }

// Tail returns the last n paired days.
func (c *Comparison) Tail(n int) []ComparisonRow {
	if n >= len(c.rows) {
		return c.rows
	}
	return c.rows[len(c.rows)-n:]
}

// WorstDiff returns the largest absolute deviation between the curves.
func (c *Comparison) WorstDiff() Percent {
	var worst Percent
	for _, row := range c.rows {
		if d := Percent(math.Abs(float64(row.Diff))); d > worst {
			worst = d
		}
	}
	return worst
}
