package player

import (
	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-tracker/internal/domain/collection"
)

var (
	ErrDuplicate = errors.Wrap(collection.ErrDuplicateEntity, "player")
	ErrNotFound  = errors.Wrap(collection.ErrEntityNotFound, "player")
)

var Kind = collection.Kind{Name: "player", ErrDuplicate: ErrDuplicate, ErrNotFound: ErrNotFound}
