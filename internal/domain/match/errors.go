package match

import (
	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-tracker/internal/domain/collection"
)

var (
	ErrDuplicate = errors.Wrap(collection.ErrDuplicateEntity, "match")
	ErrNotFound  = errors.Wrap(collection.ErrEntityNotFound, "match")

	// ErrSameTeam is returned for a match whose home and away teams are equal.
	ErrSameTeam = errors.New("home and away teams must be different")
	// ErrUpdated is returned when a replacement match already exists.
	ErrUpdated      = errors.New("match has already been updated")
	ErrInvalidScore = errors.New("invalid score")
)

var Kind = collection.Kind{Name: "match", ErrDuplicate: ErrDuplicate, ErrNotFound: ErrNotFound}
