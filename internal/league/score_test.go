package league

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestComputeScore(t *testing.T) {
	t.Parallel()

	tracker := newTestLeague(t)
	fixture := newMatch(barcelona, realMadrid, "", 28)
	if err := tracker.AddMatch(fixture); err != nil {
		t.Fatalf("add match: %v", err)
	}

	cases := []struct {
		name     string
		scorers  []string
		ownGoals []string
		want     string
	}{
		{name: "no goals", want: "0-0"},
		{name: "one each", scorers: []string{"Lionel Messi", "Karim Benzema"}, want: "1-1"},
		{name: "own goal counts for opponent", scorers: []string{"Lionel Messi"}, ownGoals: []string{"Luis Suarez"}, want: "1-1"},
		{name: "repeated scorer", scorers: []string{"Karim Benzema", "Karim Benzema", "Sergio Ramos"}, want: "0-3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidate := fixture.WithResult(tc.scorers, tc.ownGoals, "")
			got, err := tracker.ComputeScore(fixture, candidate)
			if err != nil {
				t.Fatalf("compute score: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}

	if got := goalsOf(t, tracker, "Lionel Messi"); got != 0 {
		t.Fatalf("compute score must not touch goal counters, got %d", got)
	}
}

func TestComputeScore_ScorerFromAnotherTeam(t *testing.T) {
	t.Parallel()

	tracker := newTestLeague(t)
	fixture := newMatch(barcelona, realMadrid, "", 28)

	candidate := fixture.WithResult([]string{"Lionel Messi", "Jesus Navas"}, nil, "")
	_, err := tracker.ComputeScore(fixture, candidate)
	if !errors.Is(err, ErrPlayerNotInTeam) {
		t.Fatalf("expected ErrPlayerNotInTeam, got %v", err)
	}

	candidate = fixture.WithResult(nil, []string{"Nobody"}, "")
	if _, err := tracker.ComputeScore(fixture, candidate); !errors.Is(err, ErrPlayerNotInTeam) {
		t.Fatalf("expected ErrPlayerNotInTeam for unknown own goal scorer, got %v", err)
	}
}

func TestComputeScore_UnknownTeam(t *testing.T) {
	t.Parallel()

	tracker := newTestLeague(t)
	fixture := newMatch(barcelona, "Atletico Madrid", "", 28)
	if _, err := tracker.ComputeScore(fixture, fixture); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}
