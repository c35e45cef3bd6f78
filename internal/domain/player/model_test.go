package player

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-tracker/internal/platform/validation"
)

func validPlayer() Player {
	return Player{
		Name:         "Lionel Messi",
		Position:     "Forward",
		Age:          31,
		Salary:       50_000_000,
		TeamName:     "Barcelona",
		Nationality:  "Argentina",
		JerseyNumber: 10,
		HealthStatus: "Healthy",
		Tags:         []string{"captain"},
	}
}

func TestPlayer_Validate(t *testing.T) {
	t.Parallel()

	if err := validPlayer().Validate(); err != nil {
		t.Fatalf("expected valid player, got %v", err)
	}

	cases := map[string]func(p *Player){
		"missing name":   func(p *Player) { p.Name = "" },
		"jersey zero":    func(p *Player) { p.JerseyNumber = 0 },
		"jersey too big": func(p *Player) { p.JerseyNumber = 100 },
		"negative goals": func(p *Player) { p.GoalsScored = -1 },
		"missing team":   func(p *Player) { p.TeamName = "" },
		"empty tag":      func(p *Player) { p.Tags = []string{""} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := validPlayer()
			mutate(&p)
			if err := p.Validate(); !errors.Is(err, validation.ErrInvalid) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestPlayer_WithGoalsFloorsAtZero(t *testing.T) {
	t.Parallel()

	p := validPlayer().WithGoals(2)
	if p.GoalsScored != 2 {
		t.Fatalf("expected 2 goals, got %d", p.GoalsScored)
	}
	if got := p.WithGoals(-5).GoalsScored; got != 0 {
		t.Fatalf("expected goals floored at 0, got %d", got)
	}
	if got := p.WithoutGoals().GoalsScored; got != 0 {
		t.Fatalf("expected goals reset, got %d", got)
	}
}

func TestPlayer_CopiesDoNotAlias(t *testing.T) {
	t.Parallel()

	p := validPlayer()
	moved := p.WithTeam("Real Madrid")
	moved.Tags[0] = "changed"

	if p.TeamName != "Barcelona" || p.Tags[0] != "captain" {
		t.Fatalf("original player mutated: %+v", p)
	}
	if moved.TeamName != "Real Madrid" {
		t.Fatalf("unexpected team: %s", moved.TeamName)
	}
}

func TestCompare_OrdersByName(t *testing.T) {
	t.Parallel()

	players := []Player{{Name: "Suarez"}, {Name: "Messi"}, {Name: "Pique"}}
	slices.SortFunc(players, Compare)

	var names []string
	for _, p := range players {
		names = append(names, p.Name)
	}
	if !slices.Equal(names, []string{"Messi", "Pique", "Suarez"}) {
		t.Fatalf("unexpected order: %v", names)
	}
}
