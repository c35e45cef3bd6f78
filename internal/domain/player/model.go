package player

import (
	"slices"
	"strings"

	"github.com/riskibarqy/league-tracker/internal/platform/validation"
)

// Position is the free-form playing position, e.g. "Striker" or "GK".
type Position string

// Player is an athlete registered in the league. Name is the identity.
type Player struct {
	Name          string   `json:"name" validate:"required,max=64"`
	Position      Position `json:"position" validate:"required,max=32"`
	Age           int      `json:"age" validate:"gte=15,lte=60"`
	Salary        int64    `json:"salary" validate:"gte=0"`
	GoalsScored   int      `json:"goals_scored" validate:"gte=0"`
	GoalsAssisted int      `json:"goals_assisted" validate:"gte=0"`
	TeamName      string   `json:"team_name" validate:"required,max=64"`
	Nationality   string   `json:"nationality" validate:"required,max=64"`
	JerseyNumber  int      `json:"jersey_number" validate:"gte=1,lte=99"`
	Appearances   int      `json:"appearances" validate:"gte=0"`
	HealthStatus  string   `json:"health_status" validate:"required,max=32"`
	Tags          []string `json:"tags,omitempty" validate:"dive,required,max=32"`
}

func (p Player) Key() string {
	return p.Name
}

func (p Player) Clone() Player {
	copied := p
	copied.Tags = slices.Clone(p.Tags)
	return copied
}

func (p Player) Validate() error {
	return validation.Struct(p)
}

// WithTeam returns a copy of p registered to teamName.
func (p Player) WithTeam(teamName string) Player {
	out := p.Clone()
	out.TeamName = teamName
	return out
}

// WithGoals returns a copy of p with goalsScored moved by delta, floored at zero.
func (p Player) WithGoals(delta int) Player {
	out := p.Clone()
	out.GoalsScored = max(out.GoalsScored+delta, 0)
	return out
}

func (p Player) WithoutGoals() Player {
	out := p.Clone()
	out.GoalsScored = 0
	return out
}

// Compare orders players by name.
func Compare(a, b Player) int {
	return strings.Compare(a.Name, b.Name)
}
