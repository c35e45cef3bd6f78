package team

import (
	"slices"
	"strings"

	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/platform/validation"
)

const (
	PointsWin  = 3
	PointsDraw = 1
)

// Team is a club in the league. Name is the identity.
//
// PlayerNames and MatchKeys reference records owned by the league tracker and
// Standing is derived from MatchKeys; the tracker keeps all three in sync.
type Team struct {
	Name        string      `json:"name" validate:"required,max=64"`
	Country     string      `json:"country" validate:"required,max=64"`
	Sponsorship int64       `json:"sponsorship" validate:"gte=0"`
	Tags        []string    `json:"tags,omitempty" validate:"dive,required,max=32"`
	PlayerNames []string    `json:"player_names,omitempty"`
	MatchKeys   []match.Key `json:"match_keys,omitempty"`
	Standing    Standing    `json:"standing"`
}

// Standing is a league table row derived from a team's played matches.
type Standing struct {
	Played       int `json:"played"`
	Won          int `json:"won"`
	Drawn        int `json:"drawn"`
	Lost         int `json:"lost"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
	Points       int `json:"points"`
}

func (s Standing) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

func (t Team) Key() string {
	return t.Name
}

func (t Team) Clone() Team {
	copied := t
	copied.Tags = slices.Clone(t.Tags)
	copied.PlayerNames = slices.Clone(t.PlayerNames)
	copied.MatchKeys = slices.Clone(t.MatchKeys)
	return copied
}

func (t Team) Validate() error {
	return validation.Struct(t)
}

func (t Team) HasPlayer(name string) bool {
	return slices.Contains(t.PlayerNames, name)
}

func (t Team) HasMatch(key match.Key) bool {
	return slices.Contains(t.MatchKeys, key)
}

func (t Team) WithPlayer(name string) Team {
	out := t.Clone()
	if !out.HasPlayer(name) {
		out.PlayerNames = append(out.PlayerNames, name)
	}
	return out
}

func (t Team) WithoutPlayer(name string) Team {
	out := t.Clone()
	out.PlayerNames = slices.DeleteFunc(out.PlayerNames, func(v string) bool { return v == name })
	return out
}

func (t Team) WithMatch(key match.Key) Team {
	out := t.Clone()
	if !out.HasMatch(key) {
		out.MatchKeys = append(out.MatchKeys, key)
	}
	return out
}

func (t Team) WithoutMatch(key match.Key) Team {
	out := t.Clone()
	out.MatchKeys = slices.DeleteFunc(out.MatchKeys, func(v match.Key) bool { return v == key })
	return out
}

func (t Team) WithoutPlayers() Team {
	out := t.Clone()
	out.PlayerNames = nil
	return out
}

// WithoutMatches drops every match link and resets the standing.
func (t Team) WithoutMatches() Team {
	out := t.Clone()
	out.MatchKeys = nil
	out.Standing = Standing{}
	return out
}

func (t Team) WithStanding(s Standing) Team {
	out := t.Clone()
	out.Standing = s
	return out
}

// ComputeStanding aggregates the played matches of teamName. Matches that do
// not involve the team or have no score are ignored.
func ComputeStanding(teamName string, matches []match.Match) (Standing, error) {
	var s Standing
	for _, m := range matches {
		if !m.Involves(teamName) || !m.IsPlayed() {
			continue
		}
		home, away, err := match.ParseScore(m.Score)
		if err != nil {
			return Standing{}, err
		}

		scored, conceded := home, away
		if m.Away == teamName {
			scored, conceded = away, home
		}

		s.Played++
		s.GoalsFor += scored
		s.GoalsAgainst += conceded
		switch {
		case scored > conceded:
			s.Won++
			s.Points += PointsWin
		case scored == conceded:
			s.Drawn++
			s.Points += PointsDraw
		default:
			s.Lost++
		}
	}

	return s, nil
}

// Compare orders teams by points, then goal difference (both descending),
// then name.
func Compare(a, b Team) int {
	if a.Standing.Points != b.Standing.Points {
		return b.Standing.Points - a.Standing.Points
	}
	if gdA, gdB := a.Standing.GoalDifference(), b.Standing.GoalDifference(); gdA != gdB {
		return gdB - gdA
	}
	return strings.Compare(a.Name, b.Name)
}
