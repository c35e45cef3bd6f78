package usecase

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-tracker/internal/domain/collection"
	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/platform/logging"
	"github.com/riskibarqy/league-tracker/internal/platform/validation"
)

// MatchRecorder is the part of the league tracker used to record results.
type MatchRecorder interface {
	FindMatch(key match.Key) (match.Match, error)
	ComputeScore(old, candidate match.Match) (string, error)
	UpdateMatch(oldKey match.Key, next match.Match) error
}

type RecordResultInput struct {
	MatchKey       match.Key `validate:"required"`
	GoalScorers    []string  `validate:"dive,required,max=64"`
	OwnGoalScorers []string  `validate:"dive,required,max=64"`
}

type MatchService struct {
	recorder MatchRecorder
	logger   *logging.Logger
}

func NewMatchService(recorder MatchRecorder, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		recorder: recorder,
		logger:   logger.Named("match"),
	}
}

// RecordResult stores the scorers of a match. The score is derived from the
// rosters of both teams and the match is replaced in the league.
func (s *MatchService) RecordResult(ctx context.Context, input RecordResultInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult")
	defer span.End()

	if err := validation.StructCtx(ctx, input); err != nil {
		return match.Match{}, errors.Mark(errors.Wrap(err, "record result input"), ErrInvalidInput)
	}

	old, err := s.recorder.FindMatch(input.MatchKey)
	if err != nil {
		if errors.Is(err, collection.ErrEntityNotFound) {
			return match.Match{}, errors.Mark(err, ErrNotFound)
		}
		return match.Match{}, errors.Wrap(err, "find match")
	}

	candidate := old.WithResult(input.GoalScorers, input.OwnGoalScorers, "")
	score, err := s.recorder.ComputeScore(old, candidate)
	if err != nil {
		return match.Match{}, errors.Wrapf(err, "compute score of %s", old)
	}
	candidate.Score = score

	if err := s.recorder.UpdateMatch(input.MatchKey, candidate); err != nil {
		return match.Match{}, errors.Wrapf(err, "update match %s", old)
	}

	s.logger.InfoContext(ctx, "match result recorded", "match", candidate.String())
	return candidate, nil
}
