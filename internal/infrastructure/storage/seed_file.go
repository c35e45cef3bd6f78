package storage

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/domain/player"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
)

var ErrSeedScoreMismatch = errors.New("seed score does not match its scorers")

// SeedTarget receives the records of a seed file.
type SeedTarget interface {
	AddTeam(tm team.Team) error
	AddPlayer(p player.Player) error
	AddMatch(m match.Match) error
	ComputeScore(old, candidate match.Match) (string, error)
}

// Seed is the YAML layout used to bootstrap a league.
type Seed struct {
	Teams   []SeedTeam   `yaml:"teams"`
	Players []SeedPlayer `yaml:"players"`
	Matches []SeedMatch  `yaml:"matches"`
}

type SeedTeam struct {
	Name        string   `yaml:"name"`
	Country     string   `yaml:"country"`
	Sponsorship int64    `yaml:"sponsorship"`
	Tags        []string `yaml:"tags"`
}

type SeedPlayer struct {
	Name          string   `yaml:"name"`
	Position      string   `yaml:"position"`
	Age           int      `yaml:"age"`
	Salary        int64    `yaml:"salary"`
	GoalsAssisted int      `yaml:"goals_assisted"`
	Team          string   `yaml:"team"`
	Nationality   string   `yaml:"nationality"`
	JerseyNumber  int      `yaml:"jersey_number"`
	Appearances   int      `yaml:"appearances"`
	HealthStatus  string   `yaml:"health_status"`
	Tags          []string `yaml:"tags"`
}

type SeedMatch struct {
	Date           string   `yaml:"date"`
	Home           string   `yaml:"home"`
	Away           string   `yaml:"away"`
	HomeSales      int64    `yaml:"home_sales"`
	AwaySales      int64    `yaml:"away_sales"`
	Score          string   `yaml:"score"`
	GoalScorers    []string `yaml:"goal_scorers"`
	OwnGoalScorers []string `yaml:"own_goal_scorers"`
	Tags           []string `yaml:"tags"`
}

func LoadSeed(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, errors.Wrapf(err, "read seed %s", path)
	}
	seed, err := ParseSeed(raw)
	if err != nil {
		return Seed{}, errors.Wrapf(err, "seed %s", path)
	}
	return seed, nil
}

// ParseSeed decodes a YAML seed. Unknown keys are rejected.
func ParseSeed(raw []byte) (Seed, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var seed Seed
	if err := dec.Decode(&seed); err != nil {
		return Seed{}, errors.Wrap(err, "decode seed")
	}
	return seed, nil
}

// Apply validates every record and adds teams, then players, then matches to
// target. A played match must carry a score that agrees with its scorers;
// an empty score is filled in from the scorers.
func (s Seed) Apply(target SeedTarget) error {
	for _, item := range s.Teams {
		tm := team.Team{
			Name:        item.Name,
			Country:     item.Country,
			Sponsorship: item.Sponsorship,
			Tags:        item.Tags,
		}
		if err := tm.Validate(); err != nil {
			return errors.Wrapf(err, "seed team %q", item.Name)
		}
		if err := target.AddTeam(tm); err != nil {
			return err
		}
	}

	for _, item := range s.Players {
		p := player.Player{
			Name:          item.Name,
			Position:      player.Position(item.Position),
			Age:           item.Age,
			Salary:        item.Salary,
			GoalsAssisted: item.GoalsAssisted,
			TeamName:      item.Team,
			Nationality:   item.Nationality,
			JerseyNumber:  item.JerseyNumber,
			Appearances:   item.Appearances,
			HealthStatus:  item.HealthStatus,
			Tags:          item.Tags,
		}
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, "seed player %q", item.Name)
		}
		if err := target.AddPlayer(p); err != nil {
			return err
		}
	}

	for _, item := range s.Matches {
		date, err := match.ParseDate(item.Date)
		if err != nil {
			return err
		}
		m := match.Match{
			Date:           date,
			Home:           item.Home,
			Away:           item.Away,
			HomeSales:      item.HomeSales,
			AwaySales:      item.AwaySales,
			Score:          item.Score,
			GoalScorers:    item.GoalScorers,
			OwnGoalScorers: item.OwnGoalScorers,
			Tags:           item.Tags,
		}
		if err := m.Validate(); err != nil {
			return errors.Wrapf(err, "seed match %s", m)
		}

		if len(m.GoalScorers)+len(m.OwnGoalScorers) > 0 {
			computed, err := target.ComputeScore(m, m)
			if err != nil {
				return errors.Wrapf(err, "seed match %s", m)
			}
			switch m.Score {
			case "":
				m.Score = computed
			case computed:
			default:
				return errors.Wrapf(ErrSeedScoreMismatch, "match %s: scorers give %s", m, computed)
			}
		}

		if err := target.AddMatch(m); err != nil {
			return err
		}
	}

	return nil
}
