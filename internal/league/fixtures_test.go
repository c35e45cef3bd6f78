package league

import (
	"slices"
	"testing"
	"time"

	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/domain/player"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
	"github.com/riskibarqy/league-tracker/internal/platform/logging"
)

const (
	barcelona  = "Barcelona"
	realMadrid = "Real Madrid"
	sevilla    = "Sevilla"
)

func newPlayer(name, teamName string, jersey int) player.Player {
	return player.Player{
		Name:         name,
		Position:     "Forward",
		Age:          28,
		TeamName:     teamName,
		Nationality:  "Spain",
		JerseyNumber: jersey,
		HealthStatus: "Healthy",
	}
}

func newMatch(home, away, score string, day int, scorers ...string) match.Match {
	return match.Match{
		Date:        time.Date(2018, 10, day, 0, 0, 0, 0, time.UTC),
		Home:        home,
		Away:        away,
		HomeSales:   1_000,
		AwaySales:   100,
		Score:       score,
		GoalScorers: scorers,
	}
}

// newTestLeague builds three teams with two players each and no matches.
func newTestLeague(t *testing.T) *Tracker {
	t.Helper()

	tracker := New(logging.NewNop())
	for _, tm := range []team.Team{
		{Name: barcelona, Country: "Spain", Sponsorship: 10_000},
		{Name: realMadrid, Country: "Spain", Sponsorship: 9_000},
		{Name: sevilla, Country: "Spain", Sponsorship: 1_000},
	} {
		if err := tracker.AddTeam(tm); err != nil {
			t.Fatalf("add team %s: %v", tm.Name, err)
		}
	}
	for _, p := range []player.Player{
		newPlayer("Lionel Messi", barcelona, 10),
		newPlayer("Luis Suarez", barcelona, 9),
		newPlayer("Karim Benzema", realMadrid, 9),
		newPlayer("Sergio Ramos", realMadrid, 4),
		newPlayer("Jesus Navas", sevilla, 16),
		newPlayer("Ever Banega", sevilla, 10),
	} {
		if err := tracker.AddPlayer(p); err != nil {
			t.Fatalf("add player %s: %v", p.Name, err)
		}
	}
	return tracker
}

// requireConsistent checks that every roster lists exactly the players that
// name the team, and every match link points at a match the team played.
func requireConsistent(t *testing.T, tracker *Tracker) {
	t.Helper()

	for tm := range tracker.teams.All() {
		var want []string
		for p := range tracker.players.All() {
			if p.TeamName == tm.Name {
				want = append(want, p.Name)
			}
		}
		got := slices.Clone(tm.PlayerNames)
		slices.Sort(got)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Fatalf("roster of %s = %v, players naming it = %v", tm.Name, got, want)
		}

		for _, key := range tm.MatchKeys {
			m, err := tracker.matches.Find(key)
			if err != nil {
				t.Fatalf("team %s links missing match: %v", tm.Name, err)
			}
			if !m.Involves(tm.Name) {
				t.Fatalf("team %s links match %s it did not play", tm.Name, m)
			}
		}
	}

	for m := range tracker.matches.All() {
		for _, name := range []string{m.Home, m.Away} {
			tm, err := tracker.teams.Find(name)
			if err != nil {
				t.Fatalf("match %s references missing team %s", m, name)
			}
			if !tm.HasMatch(m.Key()) {
				t.Fatalf("team %s does not link match %s", name, m)
			}
		}
	}
}

func goalsOf(t *testing.T, tracker *Tracker, name string) int {
	t.Helper()

	p, err := tracker.FindPlayer(name)
	if err != nil {
		t.Fatalf("find player %s: %v", name, err)
	}
	return p.GoalsScored
}
