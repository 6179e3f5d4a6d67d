package fantasy

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	jan := NewDate(2024, time.January, 1)
	spy := func() *Entry { return NewEntry(jan, Never, w(map[string]float64{"SPY": 1})) }

	tests := []struct {
		name   string
		league *League
		want   string // substring of the error, "" for a valid league
	}{
		{
			"valid",
			leagueOf(NewTeam("A", spy()), NewTeam("B", spy())),
			"",
		},
		{
			"no name",
			NewLeague("", "USD", DefaultCapital, jan, Date{}).AddTeam(NewTeam("A", spy())),
			"league has no name",
		},
		{
			"capital not positive",
			NewLeague("L", "USD", 0, jan, Date{}).AddTeam(NewTeam("A", spy())),
			"capital must be positive",
		},
		{
			"no start",
			NewLeague("L", "USD", DefaultCapital, Date{}, Date{}).AddTeam(NewTeam("A", spy())),
			"league has no start date",
		},
		{
			"start after end",
			NewLeague("L", "USD", DefaultCapital, NewDate(2025, time.January, 1), jan).AddTeam(NewTeam("A", spy())),
			"must be before end",
		},
		{
			"no teams",
			NewLeague("L", "USD", DefaultCapital, jan, Date{}),
			"league has no teams",
		},
		{
			"duplicate team",
			leagueOf(NewTeam("A", spy()), NewTeam("A", spy())),
			`team "A" is declared twice`,
		},
		{
			"empty playbook",
			leagueOf(NewTeam("A")),
			"empty playbook",
		},
		{
			"duplicate entry date",
			leagueOf(NewTeam("A", spy(), spy())),
			"two playbook entries on 2024-01-01",
		},
		{
			"bad ticker",
			leagueOf(NewTeam("A", NewEntry(jan, Never, w(map[string]float64{"spy": 1})))),
			"invalid ticker",
		},
		{
			"negative weight",
			leagueOf(NewTeam("A", NewEntry(jan, Never, w(map[string]float64{"SPY": -0.2})))),
			"must not be negative",
		},
		{
			"weights above one",
			leagueOf(NewTeam("A", NewEntry(jan, Never, w(map[string]float64{"SPY": 0.7, "TLT": 0.7})))),
			"must not exceed 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.league.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want a failure")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

// TestValidateJoinsAll checks that a broken league reports every problem
// at once, not just the first.
func TestValidateJoinsAll(t *testing.T) {
	l := NewLeague("", "USD", 0, Date{}, Date{})
	err := l.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want failures")
	}
	for _, want := range []string{"no name", "capital", "start date", "no teams"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("joined error misses %q: %v", want, err)
		}
	}
}
