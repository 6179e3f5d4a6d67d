package fantasy

import (
	"math"
	"sort"
)

// Award records one completed month's two prizes: best cumulative return
// since the season start, and shallowest drawdown since the season start.
// Tied teams all take the point.
type Award struct {
	Month           string // e.g. "2024-03"
	ReturnWinners   []string
	BestReturn      Percent
	DrawdownWinners []string
	BestDrawdown    Percent
}

// Standing is one team's scoreboard line.
type Standing struct {
	Rank       int
	Team       string
	Score      int
	Rebalances int
}

// Standings is the season scoreboard: monthly awards summed into scores,
// ranked by score, then by fewest rebalances.
type Standings struct {
	awards  []Award
	ranking []Standing
}

// NewStandings scores the teams' replays month by month. The month being
// played is left out, it has no prizes yet. Every replay must share the
// same trading axis, which holds whenever they ran against the same market.
func NewStandings(results []*Result) *Standings {
	s := &Standings{}
	if len(results) == 0 {
		return s
	}

	type month struct {
		id  string
		end Date
	}
	var months []month
	seen := make(map[string]struct{})
	today := Today()
	for day := range results[0].Equity().Values() {
		r := Monthly.RangeOf(day)
		if r.Contains(today) {
			continue
		}
		if _, dup := seen[r.Identifier()]; dup {
			continue
		}
		seen[r.Identifier()] = struct{}{}
		months = append(months, month{id: r.Identifier(), end: r.To})
	}

	scores := make(map[string]int, len(results))
	drawdowns := make([]*History[float64], len(results))
	for i, r := range results {
		scores[r.Team().Name()] = 0
		drawdowns[i] = expandingDrawdown(r.Equity())
	}

	for _, m := range months {
		rets := make([]float64, len(results))
		dds := make([]float64, len(results))
		bestRet, bestDD := math.Inf(-1), math.Inf(-1)
		for i, r := range results {
			_, first := r.Equity().First()
			last, _ := r.Equity().ValueAsOf(m.end)
			rets[i] = last/first - 1
			dds[i], _ = drawdowns[i].ValueAsOf(m.end)
			bestRet = math.Max(bestRet, rets[i])
			bestDD = math.Max(bestDD, dds[i])
		}

		a := Award{Month: m.id, BestReturn: PercentOf(bestRet), BestDrawdown: PercentOf(bestDD)}
		for i, r := range results {
			name := r.Team().Name()
			if rets[i] == bestRet {
				a.ReturnWinners = append(a.ReturnWinners, name)
				scores[name]++
			}
			if dds[i] == bestDD {
				a.DrawdownWinners = append(a.DrawdownWinners, name)
				scores[name]++
			}
		}
		s.awards = append(s.awards, a)
	}

	s.ranking = make([]Standing, 0, len(results))
	for _, r := range results {
		s.ranking = append(s.ranking, Standing{
			Team:       r.Team().Name(),
			Score:      scores[r.Team().Name()],
			Rebalances: r.Rebalances(),
		})
	}
	sort.SliceStable(s.ranking, func(i, j int) bool {
		if s.ranking[i].Score != s.ranking[j].Score {
			return s.ranking[i].Score > s.ranking[j].Score
		}
		return s.ranking[i].Rebalances < s.ranking[j].Rebalances
	})
	for i := range s.ranking {
		s.ranking[i].Rank = i + 1
	}
	return s
}

// Awards returns the monthly prizes in chronological order.
func (s *Standings) Awards() []Award { return s.awards }

// Ranking returns the scoreboard, best team first.
func (s *Standings) Ranking() []Standing { return s.ranking }

// Winner returns the leading team, or "" for an empty league.
func (s *Standings) Winner() string {
	if len(s.ranking) == 0 {
		return ""
	}
	return s.ranking[0].Team
}

// expandingDrawdown tracks, day by day, the worst drawdown the curve has
// reached so far.
func expandingDrawdown(equity *History[float64]) *History[float64] {
	h := &History[float64]{}
	peak := math.Inf(-1)
	worst := 0.0
	for day, v := range equity.Values() {
		if v > peak {
			peak = v
		}
		if dd := (v - peak) / peak; dd < worst {
			worst = dd
		}
		h.Append(day, worst)
	}
	return h
}
