package league

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-tracker/internal/domain/match"
)

// ComputeScore derives the score of candidate against the rosters of the
// teams that played old. A goal counts for the side whose roster holds the
// scorer; an own goal counts for the opposing side. Every listed name must
// belong to one of the two rosters. State is not modified.
func (t *Tracker) ComputeScore(old, candidate match.Match) (string, error) {
	home, err := t.teams.Find(old.Home)
	if err != nil {
		return "", err
	}
	away, err := t.teams.Find(old.Away)
	if err != nil {
		return "", err
	}

	homeScore := countScorers(candidate.GoalScorers, home.PlayerNames) +
		countScorers(candidate.OwnGoalScorers, away.PlayerNames)
	awayScore := countScorers(candidate.GoalScorers, away.PlayerNames) +
		countScorers(candidate.OwnGoalScorers, home.PlayerNames)

	if len(candidate.GoalScorers)+len(candidate.OwnGoalScorers) != homeScore+awayScore {
		for _, name := range slices.Concat(candidate.GoalScorers, candidate.OwnGoalScorers) {
			if !home.HasPlayer(name) && !away.HasPlayer(name) {
				return "", errors.Wrapf(ErrPlayerNotInTeam, "%s plays for neither %s nor %s", name, home.Name, away.Name)
			}
		}
		return "", ErrPlayerNotInTeam
	}

	return match.FormatScore(homeScore, awayScore), nil
}

func countScorers(scorers, roster []string) int {
	count := 0
	for _, name := range scorers {
		if slices.Contains(roster, name) {
			count++
		}
	}
	return count
}
