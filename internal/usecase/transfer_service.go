package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/league-tracker/internal/domain/collection"
	"github.com/riskibarqy/league-tracker/internal/domain/player"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
	"github.com/riskibarqy/league-tracker/internal/platform/logging"
	"github.com/riskibarqy/league-tracker/internal/platform/validation"
)

const (
	MessageTransferSuccess      = "Player %s is successfully transferred from %s to %s"
	MessagePlayerNotFound       = "This player %s does not exist in the league tracker"
	MessageNoSuchTeam           = "This team %s does not exist, please enter an existing team"
	MessageDestinationIsCurrent = "Destination team is same as current team %s"
	transferRecordTemplate      = "%s: %s transferred from %s to %s"
)

// TransferOutcome classifies how a transfer request ended.
type TransferOutcome string

const (
	TransferSucceeded            TransferOutcome = "TRANSFERRED"
	TransferPlayerNotFound       TransferOutcome = "PLAYER_NOT_FOUND"
	TransferNoSuchTeam           TransferOutcome = "NO_SUCH_TEAM"
	TransferDestinationIsCurrent TransferOutcome = "DESTINATION_IS_CURRENT"
)

// TransferRoster is the part of the league tracker a transfer needs.
type TransferRoster interface {
	GetAllPlayers() *collection.UniqueList[string, player.Player]
	GetAllTeams() *collection.UniqueList[string, team.Team]
	CheckJersey(p player.Player, exclude string) error
	RemovePlayer(name string) error
	AddPlayer(p player.Player) error
	AddTransferRecord(record string)
}

type TransferInput struct {
	PlayerName string `validate:"required,max=64"`
	TeamName   string `validate:"required,max=64"`
}

type TransferResult struct {
	Outcome    TransferOutcome
	Message    string
	PlayerName string
	FromTeam   string
	ToTeam     string
}

type TransferService struct {
	roster   TransferRoster
	clock    clockwork.Clock
	location *time.Location
	logger   *logging.Logger
}

func NewTransferService(
	roster TransferRoster,
	clock clockwork.Clock,
	location *time.Location,
	logger *logging.Logger,
) *TransferService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &TransferService{
		roster:   roster,
		clock:    clock,
		location: location,
		logger:   logger.Named("transfer"),
	}
}

// Transfer moves a player to another team. Rejections that leave the league
// untouched are reported through the result outcome; errors are returned for
// invalid input, a jersey clash in the destination team, or a broken league
// invariant (marked ErrInternal). Names are matched exactly as given.
func (s *TransferService) Transfer(ctx context.Context, input TransferInput) (TransferResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Transfer")
	defer span.End()

	if err := validation.StructCtx(ctx, input); err != nil {
		return TransferResult{}, errors.Mark(errors.Wrap(err, "transfer input"), ErrInvalidInput)
	}

	var (
		oldPlayer player.Player
		found     bool
	)
	for p := range s.roster.GetAllPlayers().All() {
		if p.Name != input.PlayerName {
			continue
		}
		oldPlayer, found = p, true
		if p.TeamName == input.TeamName {
			return TransferResult{
				Outcome:    TransferDestinationIsCurrent,
				Message:    fmt.Sprintf(MessageDestinationIsCurrent, p.TeamName),
				PlayerName: p.Name,
				FromTeam:   p.TeamName,
				ToTeam:     input.TeamName,
			}, nil
		}
	}
	if !found {
		return TransferResult{
			Outcome:    TransferPlayerNotFound,
			Message:    fmt.Sprintf(MessagePlayerNotFound, input.PlayerName),
			PlayerName: input.PlayerName,
			ToTeam:     input.TeamName,
		}, nil
	}

	newPlayer := oldPlayer.WithTeam(input.TeamName)

	if !s.roster.GetAllTeams().Contains(input.TeamName) {
		return TransferResult{
			Outcome:    TransferNoSuchTeam,
			Message:    fmt.Sprintf(MessageNoSuchTeam, input.TeamName),
			PlayerName: oldPlayer.Name,
			FromTeam:   oldPlayer.TeamName,
			ToTeam:     input.TeamName,
		}, nil
	}
	if err := s.roster.CheckJersey(newPlayer, oldPlayer.Name); err != nil {
		return TransferResult{}, errors.Wrapf(err, "transfer %s", oldPlayer.Name)
	}

	if err := s.roster.RemovePlayer(oldPlayer.Name); err != nil {
		return TransferResult{}, s.invariantViolated(ctx, err, "remove transferred player", oldPlayer)
	}
	if err := s.roster.AddPlayer(newPlayer); err != nil {
		return TransferResult{}, s.invariantViolated(ctx, err, "add transferred player", oldPlayer)
	}

	stamp := s.clock.Now().In(s.location).Format(time.RFC3339)
	s.roster.AddTransferRecord(fmt.Sprintf(transferRecordTemplate, stamp, oldPlayer.Name, oldPlayer.TeamName, input.TeamName))

	s.logger.InfoContext(ctx, "player transferred",
		"player", oldPlayer.Name, "from", oldPlayer.TeamName, "to", input.TeamName)

	return TransferResult{
		Outcome:    TransferSucceeded,
		Message:    fmt.Sprintf(MessageTransferSuccess, oldPlayer.Name, oldPlayer.TeamName, input.TeamName),
		PlayerName: oldPlayer.Name,
		FromTeam:   oldPlayer.TeamName,
		ToTeam:     input.TeamName,
	}, nil
}

func (s *TransferService) invariantViolated(ctx context.Context, cause error, step string, p player.Player) error {
	err := errors.NewAssertionErrorWithWrappedErrf(cause, "transfer %s: %s", p.Name, step)
	s.logger.ErrorContext(ctx, "transfer invariant violated",
		"player", p.Name, "team", p.TeamName, "step", step, "error", err)
	return errors.Mark(err, ErrInternal)
}
