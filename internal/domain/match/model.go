package match

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/league-tracker/internal/platform/validation"
)

const dateLayout = "2006-01-02"

// Key is the structural identity of a match: two matches with equal fields
// share a key.
type Key string

// Match is one fixture between two teams. An empty Score means unplayed.
type Match struct {
	Date           time.Time `json:"date" validate:"required"`
	Home           string    `json:"home" validate:"required,max=64"`
	Away           string    `json:"away" validate:"required,max=64,nefield=Home"`
	HomeSales      int64     `json:"home_sales" validate:"gte=0"`
	AwaySales      int64     `json:"away_sales" validate:"gte=0"`
	Score          string    `json:"score,omitempty"`
	GoalScorers    []string  `json:"goal_scorers,omitempty" validate:"dive,required"`
	OwnGoalScorers []string  `json:"own_goal_scorers,omitempty" validate:"dive,required"`
	Tags           []string  `json:"tags,omitempty" validate:"dive,required,max=32"`
}

// Key encodes every field of m. Values are written Go-quoted, so separator
// bytes inside a name or tag cannot shift a field boundary.
func (m Match) Key() Key {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	field := func(v string) {
		buf.B = strconv.AppendQuote(buf.B, v)
		_ = buf.WriteByte(0x1f)
	}
	list := func(vs []string) {
		buf.B = strconv.AppendInt(buf.B, int64(len(vs)), 10)
		for _, v := range vs {
			_ = buf.WriteByte(0x1e)
			buf.B = strconv.AppendQuote(buf.B, v)
		}
		_ = buf.WriteByte(0x1f)
	}

	field(m.Date.UTC().Format(dateLayout))
	field(m.Home)
	field(m.Away)
	field(strconv.FormatInt(m.HomeSales, 10))
	field(strconv.FormatInt(m.AwaySales, 10))
	field(m.Score)
	list(m.GoalScorers)
	list(m.OwnGoalScorers)
	list(m.Tags)

	return Key(buf.String())
}

func (m Match) Clone() Match {
	copied := m
	copied.GoalScorers = slices.Clone(m.GoalScorers)
	copied.OwnGoalScorers = slices.Clone(m.OwnGoalScorers)
	copied.Tags = slices.Clone(m.Tags)
	return copied
}

func (m Match) Validate() error {
	if m.Home != "" && m.Home == m.Away {
		return errors.Wrapf(ErrSameTeam, "%s", m.Home)
	}
	if err := validation.Struct(m); err != nil {
		return err
	}
	if m.Score != "" {
		if _, _, err := ParseScore(m.Score); err != nil {
			return err
		}
	}
	return nil
}

func (m Match) Involves(teamName string) bool {
	return m.Home == teamName || m.Away == teamName
}

func (m Match) IsPlayed() bool {
	return m.Score != ""
}

// WithResult returns a copy of m carrying the given scorers and score.
func (m Match) WithResult(goalScorers, ownGoalScorers []string, score string) Match {
	out := m.Clone()
	out.GoalScorers = slices.Clone(goalScorers)
	out.OwnGoalScorers = slices.Clone(ownGoalScorers)
	out.Score = score
	return out
}

func (m Match) String() string {
	label := m.Date.UTC().Format(dateLayout) + " " + m.Home + " vs " + m.Away
	if m.IsPlayed() {
		label += " (" + m.Score + ")"
	}
	return label
}

// ParseScore reads a "home-away" score.
func ParseScore(score string) (int, int, error) {
	homeRaw, awayRaw, ok := strings.Cut(strings.TrimSpace(score), "-")
	if !ok {
		return 0, 0, errors.Wrapf(ErrInvalidScore, "%q", score)
	}
	home, err := strconv.Atoi(strings.TrimSpace(homeRaw))
	if err != nil || home < 0 {
		return 0, 0, errors.Wrapf(ErrInvalidScore, "%q", score)
	}
	away, err := strconv.Atoi(strings.TrimSpace(awayRaw))
	if err != nil || away < 0 {
		return 0, 0, errors.Wrapf(ErrInvalidScore, "%q", score)
	}
	return home, away, nil
}

func FormatScore(home, away int) string {
	return strconv.Itoa(home) + "-" + strconv.Itoa(away)
}

// ParseDate reads a match date in YYYY-MM-DD form.
func ParseDate(raw string) (time.Time, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse match date %q", raw)
	}
	return date, nil
}

// Compare orders matches by date, then home and away team names.
func Compare(a, b Match) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	if c := strings.Compare(a.Home, b.Home); c != 0 {
		return c
	}
	return strings.Compare(a.Away, b.Away)
}
