package fantasy

import (
	"testing"
	"time"
)

// TestPlaybookSorted checks that entries end up chronological no matter
// the declaration order, and that same-day entries keep it.
func TestPlaybookSorted(t *testing.T) {
	e1 := NewEntry(NewDate(2024, time.June, 1), Never, w(map[string]float64{"SPY": 1}))
	e2 := NewEntry(NewDate(2024, time.January, 1), Never, w(map[string]float64{"TLT": 1}))
	e3 := NewEntry(NewDate(2024, time.June, 1), Never, w(map[string]float64{"QQQ": 1}))

	team := NewTeam("Shuffled", e1, e2, e3)

	playbook := team.Playbook()
	if playbook[0] != e2 || playbook[1] != e1 || playbook[2] != e3 {
		t.Errorf("Playbook() order = [%s %s %s], want the January entry first and the June pair stable",
			playbook[0].Date(), playbook[1].Date(), playbook[2].Date())
	}
}

func TestSettingsAsOf(t *testing.T) {
	jan := NewEntry(NewDate(2024, time.January, 1), Never, w(map[string]float64{"SPY": 1}))
	jun := NewEntry(NewDate(2024, time.June, 1), Never, w(map[string]float64{"TLT": 1}))
	team := NewTeam("Two Minds", jan, jun)

	tests := []struct {
		day  Date
		want *Entry
	}{
		{NewDate(2023, time.December, 31), nil}, // before the playbook, cash only
		{NewDate(2024, time.January, 1), jan},
		{NewDate(2024, time.May, 31), jan},
		{NewDate(2024, time.June, 1), jun},
		{NewDate(2025, time.January, 1), jun},
	}
	for _, tt := range tests {
		if got := team.SettingsAsOf(tt.day); got != tt.want {
			t.Errorf("SettingsAsOf(%s) = %v, want %v", tt.day, got, tt.want)
		}
	}

	// Two entries on the same day: the later declared one wins.
	rev := NewEntry(NewDate(2024, time.January, 1), Never, w(map[string]float64{"QQQ": 1}))
	again := NewTeam("Second Thoughts", jan, rev)
	if got := again.SettingsAsOf(NewDate(2024, time.March, 1)); got != rev {
		t.Errorf("SettingsAsOf with a same-day refiling = %v, want the later declared entry", got)
	}
}

func TestLeagueTickers(t *testing.T) {
	l := leagueOf(
		NewTeam("A", NewEntry(NewDate(2024, time.January, 1), Never, w(map[string]float64{"SPY": 0.5, "TLT": 0.5}))),
		NewTeam("B", NewEntry(NewDate(2024, time.January, 1), Never, w(map[string]float64{"SPY": 0.5, "AGG": 0.5}))),
	)
	got := l.Tickers()
	want := []string{"AGG", "SPY", "TLT"}
	if len(got) != len(want) {
		t.Fatalf("Tickers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tickers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if l.Team("B") == nil || l.Team("B").Name() != "B" {
		t.Error("Team(B) lookup failed")
	}
	if l.Team("nobody") != nil {
		t.Error("Team(nobody) = non-nil, want nil")
	}
}

func TestHorizon(t *testing.T) {
	pinNow(t, "2025-03-05 15:04:05")
	today := NewDate(2025, time.March, 5)

	tests := []struct {
		name  string
		start Date
		end   Date
		want  Range
		err   bool
	}{
		{"declared end kept", NewDate(2024, time.January, 1), NewDate(2025, time.January, 1),
			Range{NewDate(2024, time.January, 1), NewDate(2025, time.January, 1)}, false},
		{"open season runs through today", NewDate(2024, time.January, 1), Date{},
			Range{NewDate(2024, time.January, 1), today}, false},
		{"future end clamped to today", NewDate(2024, time.January, 1), NewDate(2030, time.January, 1),
			Range{NewDate(2024, time.January, 1), today}, false},
		{"no start", Date{}, Date{}, Range{}, true},
		{"start not before effective end", today, Date{}, Range{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLeague("L", "USD", DefaultCapital, tt.start, tt.end)
			got, err := l.Horizon()
			if (err != nil) != tt.err {
				t.Fatalf("Horizon() error = %v, wantErr %v", err, tt.err)
			}
			if !tt.err && got != tt.want {
				t.Errorf("Horizon() = [%s, %s], want [%s, %s]", got.From, got.To, tt.want.From, tt.want.To)
			}
		})
	}
}

func TestEntryWeights(t *testing.T) {
	e := NewEntry(NewDate(2024, time.January, 1), Monthly, w(map[string]float64{"SPY": 0.6, "TLT": 0.3}))

	tickers := e.Tickers()
	if len(tickers) != 2 || tickers[0] != "SPY" || tickers[1] != "TLT" {
		t.Errorf("Tickers() = %v, want [SPY TLT]", tickers)
	}
	if !e.Weight("QQQ").IsZero() {
		t.Error("Weight of an absent ticker should be zero")
	}
	if got := e.WeightSum(); got.String() != "0.9" {
		t.Errorf("WeightSum() = %s, want 0.9", got)
	}
	if e.Rebalance() != Monthly {
		t.Errorf("Rebalance() = %v, want Monthly", e.Rebalance())
	}
}
