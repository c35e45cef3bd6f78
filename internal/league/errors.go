package league

import (
	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
)

var (
	ErrDuplicateJerseyInTeam = errors.New("jersey number already taken in team")
	ErrPlayerNotInTeam       = errors.New("scorer is not a player of either team")
	ErrTeamRenameOrphans     = errors.New("team with players or matches cannot be renamed")
	ErrPlayerRenameScored    = errors.New("player listed in match results cannot be renamed")
	ErrInconsistentSnapshot  = errors.New("inconsistent snapshot")

	ErrTeamNotFound = team.ErrNotFound
	ErrSameTeam     = match.ErrSameTeam
	ErrMatchUpdated = match.ErrUpdated
)
