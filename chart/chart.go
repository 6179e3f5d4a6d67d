// Package chart renders equity curves to a self-contained interactive
// HTML file.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
)

// Equity renders every team's equity curve as one line chart, with an
// optional benchmark overlay. The benchmark may be nil.
func Equity(w io.Writer, l *fantasy.League, results []*fantasy.Result, benchmark *fantasy.Benchmark) error {
	if len(results) == 0 {
		return fmt.Errorf("no curves to chart")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s Equity", l.Name()),
			Subtitle: fmt.Sprintf("Daily closing values, starting purse %s", l.Capital()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "620px"}),
	)

	// Every replay shares the market's trading axis, the first one serves
	// as the X axis for all.
	axis := make([]fantasy.Date, 0, results[0].Equity().Len())
	days := make([]string, 0, results[0].Equity().Len())
	for day := range results[0].Equity().Values() {
		axis = append(axis, day)
		days = append(days, day.String())
	}
	line.SetXAxis(days)

	for _, r := range results {
		points := make([]opts.LineData, 0, r.Equity().Len())
		for _, v := range r.Equity().Values() {
			points = append(points, opts.LineData{Value: v})
		}
		line.AddSeries(r.Team().Name(), points)
	}

	if benchmark != nil {
		expected := benchmark.Expected(l.Capital())
		points := make([]opts.LineData, 0, len(axis))
		for _, d := range axis {
			if v, ok := expected.ValueAsOf(d); ok {
				points = append(points, opts.LineData{Value: v})
			} else {
				points = append(points, opts.LineData{Value: nil})
			}
		}
		line.AddSeries(benchmark.Name(), points)
	}

	return line.Render(w)
}
