package team

import (
	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-tracker/internal/domain/collection"
)

var (
	ErrDuplicate = errors.Wrap(collection.ErrDuplicateEntity, "team")
	ErrNotFound  = errors.Wrap(collection.ErrEntityNotFound, "team")
)

var Kind = collection.Kind{Name: "team", ErrDuplicate: ErrDuplicate, ErrNotFound: ErrNotFound}
