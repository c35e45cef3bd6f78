package memory

import (
	"github.com/riskibarqy/league-tracker/internal/infrastructure/storage"
	"github.com/riskibarqy/league-tracker/internal/league"
	"github.com/riskibarqy/league-tracker/internal/platform/logging"
)

const (
	TeamBarcelona  = "Barcelona"
	TeamRealMadrid = "Real Madrid"
	TeamManUnited  = "Manchester United"
	TeamBayern     = "Bayern Munich"
)

// NewTracker returns a league tracker loaded with the demo league.
func NewTracker(logger *logging.Logger) (*league.Tracker, error) {
	tracker := league.New(logger)
	if err := SeedLeague().Apply(tracker); err != nil {
		return nil, err
	}
	return tracker, nil
}

func SeedLeague() storage.Seed {
	return storage.Seed{
		Teams:   SeedTeams(),
		Players: SeedPlayers(),
		Matches: SeedMatches(),
	}
}

func SeedTeams() []storage.SeedTeam {
	return []storage.SeedTeam{
		{Name: TeamBarcelona, Country: "Spain", Sponsorship: 180_000_000, Tags: []string{"laliga"}},
		{Name: TeamRealMadrid, Country: "Spain", Sponsorship: 170_000_000, Tags: []string{"laliga"}},
		{Name: TeamManUnited, Country: "England", Sponsorship: 150_000_000},
		{Name: TeamBayern, Country: "Germany", Sponsorship: 140_000_000},
	}
}

func SeedPlayers() []storage.SeedPlayer {
	return []storage.SeedPlayer{
		{Name: "Lionel Messi", Position: "Forward", Age: 31, Salary: 50_000_000, Team: TeamBarcelona, Nationality: "Argentina", JerseyNumber: 10, Appearances: 600, HealthStatus: "Healthy", Tags: []string{"captain"}},
		{Name: "Luis Suarez", Position: "Striker", Age: 31, Salary: 25_000_000, Team: TeamBarcelona, Nationality: "Uruguay", JerseyNumber: 9, Appearances: 250, HealthStatus: "Healthy"},
		{Name: "Gerard Pique", Position: "Defender", Age: 31, Salary: 15_000_000, Team: TeamBarcelona, Nationality: "Spain", JerseyNumber: 3, Appearances: 450, HealthStatus: "Healthy"},
		{Name: "Sergio Ramos", Position: "Defender", Age: 32, Salary: 20_000_000, Team: TeamRealMadrid, Nationality: "Spain", JerseyNumber: 4, Appearances: 550, HealthStatus: "Healthy", Tags: []string{"captain"}},
		{Name: "Karim Benzema", Position: "Striker", Age: 30, Salary: 18_000_000, Team: TeamRealMadrid, Nationality: "France", JerseyNumber: 9, Appearances: 400, HealthStatus: "Healthy"},
		{Name: "Luka Modric", Position: "Midfielder", Age: 33, Salary: 17_000_000, Team: TeamRealMadrid, Nationality: "Croatia", JerseyNumber: 19, Appearances: 300, HealthStatus: "Injured"},
		{Name: "Paul Pogba", Position: "Midfielder", Age: 25, Salary: 16_000_000, Team: TeamManUnited, Nationality: "France", JerseyNumber: 6, Appearances: 120, HealthStatus: "Healthy"},
		{Name: "Thomas Muller", Position: "Forward", Age: 29, Salary: 14_000_000, Team: TeamBayern, Nationality: "Germany", JerseyNumber: 25, Appearances: 480, HealthStatus: "Healthy"},
	}
}

func SeedMatches() []storage.SeedMatch {
	return []storage.SeedMatch{
		{
			Date:        "2018-10-28",
			Home:        TeamBarcelona,
			Away:        TeamRealMadrid,
			HomeSales:   95_000,
			AwaySales:   4_000,
			Score:       "2-1",
			GoalScorers: []string{"Luis Suarez", "Lionel Messi", "Karim Benzema"},
		},
		{
			Date:      "2018-11-04",
			Home:      TeamManUnited,
			Away:      TeamBayern,
			HomeSales: 70_000,
			AwaySales: 3_500,
		},
	}
}
