package league

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-tracker/internal/domain/finance"
	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/domain/player"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
	"github.com/riskibarqy/league-tracker/internal/platform/logging"
)

// Snapshot is the complete state of a Tracker in a serialisable shape.
type Snapshot struct {
	Players         []player.Player   `json:"players"`
	Teams           []team.Team       `json:"teams"`
	Matches         []match.Match     `json:"matches"`
	Finances        []finance.Finance `json:"finances"`
	TransferRecords []string          `json:"transfer_records"`
}

func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		Players:         t.players.Items(),
		Teams:           t.teams.Items(),
		Matches:         t.matches.Items(),
		Finances:        t.finances.Items(),
		TransferRecords: slices.Clone(t.transferRecords),
	}
}

// Restore rebuilds a Tracker from s. Links and standings are re-derived and
// must agree with the ones recorded in s. Goal counters are taken as stored.
func Restore(s Snapshot, logger *logging.Logger) (*Tracker, error) {
	t := New(logger)

	for _, tm := range s.Teams {
		if err := t.AddTeam(tm); err != nil {
			return nil, errors.Wrap(err, "restore team")
		}
	}
	for _, p := range s.Players {
		if err := t.AddPlayer(p); err != nil {
			return nil, errors.Wrap(err, "restore player")
		}
	}
	for _, m := range s.Matches {
		if err := t.checkMatch(m); err != nil {
			return nil, errors.Wrap(err, "restore match")
		}
		if t.matches.Contains(m.Key()) {
			return nil, errors.Wrapf(match.ErrDuplicate, "restore match %s", m)
		}
		t.insertMatch(m, false)
	}
	for _, f := range s.Finances {
		if err := t.AddFinance(f); err != nil {
			return nil, errors.Wrap(err, "restore finance")
		}
	}
	t.transferRecords = slices.Clone(s.TransferRecords)

	for _, stored := range s.Teams {
		rebuilt, err := t.teams.Find(stored.Name)
		must(err)
		if !sameSet(stored.PlayerNames, rebuilt.PlayerNames) {
			return nil, errors.Wrapf(ErrInconsistentSnapshot, "roster of team %s disagrees with its players", stored.Name)
		}
		if !sameSet(stored.MatchKeys, rebuilt.MatchKeys) {
			return nil, errors.Wrapf(ErrInconsistentSnapshot, "match list of team %s disagrees with its matches", stored.Name)
		}
	}

	t.logger.Debug("league restored",
		"teams", t.teams.Len(), "players", t.players.Len(), "matches", t.matches.Len())
	return t, nil
}

func sameSet[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[T]int, len(a))
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		if seen[v] == 0 {
			return false
		}
		seen[v]--
	}
	return true
}
