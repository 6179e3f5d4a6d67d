package fantasy

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// tradingDaysPerYear annualizes daily return ratios.
const tradingDaysPerYear = 252

// Stats are the season summary figures for one team.
type Stats struct {
	Team        string
	FinalValue  Money
	TotalReturn Percent
	MaxDrawdown Percent
	Sharpe      float64
	Rebalances  int
}

// NewStats computes a replay's summary figures against the starting capital.
func NewStats(r *Result, capital Money) Stats {
	return Stats{
		Team:        r.Team().Name(),
		FinalValue:  r.FinalValue(),
		TotalReturn: TotalReturn(r.Equity(), capital),
		MaxDrawdown: MaxDrawdown(r.Equity()),
		Sharpe:      SharpeRatio(r.Equity()),
		Rebalances:  r.Rebalances(),
	}
}

// TotalReturn returns the growth of the curve's final mark over the
// starting capital.
func TotalReturn(equity *History[float64], capital Money) Percent {
	if equity.Len() == 0 {
		return 0
	}
	_, final := equity.Latest()
	return PercentOf(final/capital.AsFloat() - 1)
}

// MaxDrawdown returns the deepest loss from a running peak, as a negative
// percentage (zero for a curve that never dips).
func MaxDrawdown(equity *History[float64]) Percent {
	var worst float64
	peak := math.Inf(-1)
	for _, v := range equity.Values() {
		if v > peak {
			peak = v
		}
		if dd := (v - peak) / peak; dd < worst {
			worst = dd
		}
	}
	return PercentOf(worst)
}

// SharpeRatio returns the annualized ratio of the curve's mean daily return
// to its sample deviation. A flat curve scores zero.
func SharpeRatio(equity *History[float64]) float64 {
	returns := dailyReturns(equity)
	if len(returns) < 2 {
		return 0
	}
	std := stat.StdDev(returns, nil)
	if std == 0 {
		return 0
	}
	return stat.Mean(returns, nil) / std * math.Sqrt(tradingDaysPerYear)
}

// dailyReturns returns the day-over-day growth ratios of the curve.
func dailyReturns(equity *History[float64]) []float64 {
	returns := make([]float64, 0, equity.Len())
	prev := math.NaN()
	for _, v := range equity.Values() {
		if !math.IsNaN(prev) && prev != 0 {
			returns = append(returns, v/prev-1)
		}
		prev = v
	}
	return returns
}
