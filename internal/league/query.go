package league

import (
	"slices"

	"github.com/riskibarqy/league-tracker/internal/domain/collection"
	"github.com/riskibarqy/league-tracker/internal/domain/finance"
	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/domain/player"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
)

// GetAllPlayers returns an independent copy of the player collection.
func (t *Tracker) GetAllPlayers() *collection.UniqueList[string, player.Player] {
	return t.players.Clone()
}

// GetAllTeams sorts teams by standing and returns an independent copy.
func (t *Tracker) GetAllTeams() *collection.UniqueList[string, team.Team] {
	t.teams.Sort(team.Compare)
	return t.teams.Clone()
}

// GetAllMatches sorts matches by date and returns an independent copy.
func (t *Tracker) GetAllMatches() *collection.UniqueList[match.Key, match.Match] {
	t.matches.Sort(match.Compare)
	return t.matches.Clone()
}

func (t *Tracker) GetAllFinances() *collection.UniqueList[string, finance.Finance] {
	return t.finances.Clone()
}

func (t *Tracker) GetAllTransferRecords() []string {
	return slices.Clone(t.transferRecords)
}

func (t *Tracker) FindPlayer(name string) (player.Player, error) {
	return t.players.Find(name)
}

func (t *Tracker) FindTeam(name string) (team.Team, error) {
	return t.teams.Find(name)
}

func (t *Tracker) FindMatch(key match.Key) (match.Match, error) {
	return t.matches.Find(key)
}

func (t *Tracker) ContainsPlayer(name string) bool {
	return t.players.Contains(name)
}

func (t *Tracker) ContainsTeam(name string) bool {
	return t.teams.Contains(name)
}

func (t *Tracker) ContainsMatch(key match.Key) bool {
	return t.matches.Contains(key)
}

func (t *Tracker) ContainsFinance(teamName string) bool {
	return t.finances.Contains(teamName)
}

// Roster resolves the roster of the named team to player records.
func (t *Tracker) Roster(teamName string) ([]player.Player, error) {
	tm, err := t.teams.Find(teamName)
	if err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(tm.PlayerNames))
	for _, name := range tm.PlayerNames {
		p, err := t.players.Find(name)
		must(err)
		out = append(out, p)
	}
	return out, nil
}
