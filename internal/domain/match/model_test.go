package match

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func clasico() Match {
	return Match{
		Date:        time.Date(2018, 10, 28, 0, 0, 0, 0, time.UTC),
		Home:        "Barcelona",
		Away:        "Real Madrid",
		HomeSales:   95_000,
		AwaySales:   4_000,
		Score:       "2-1",
		GoalScorers: []string{"Luis Suarez", "Lionel Messi", "Karim Benzema"},
	}
}

func TestMatch_KeyIsStructural(t *testing.T) {
	t.Parallel()

	a, b := clasico(), clasico()
	if a.Key() != b.Key() {
		t.Fatalf("equal matches must share a key")
	}

	b.GoalScorers = []string{"Luis Suarez", "Lionel Messi", "Sergio Ramos"}
	if a.Key() == b.Key() {
		t.Fatalf("matches with different scorers must not share a key")
	}

	c := clasico()
	c.GoalScorers = []string{"Luis Suarez Lionel Messi", "Karim Benzema"}
	if a.Key() == c.Key() {
		t.Fatalf("list boundaries must be part of the key")
	}

	d := clasico()
	d.GoalScorers = []string{"Luis Suarez\x1eLionel Messi", "Karim Benzema"}
	if a.Key() == d.Key() {
		t.Fatalf("separator bytes inside a scorer name must not split it")
	}

	e, f := clasico(), clasico()
	e.Home, e.Away = "Real\x1fBetis", "Sevilla"
	f.Home, f.Away = "Real", "Betis\x1fSevilla"
	if e.Key() == f.Key() {
		t.Fatalf("separator bytes inside a team name must not move a field boundary")
	}

	g, h := clasico(), clasico()
	g.Tags = []string{"derby\x1f", "x"}
	h.Tags = []string{"derby", "\x1fx"}
	if g.Key() == h.Key() {
		t.Fatalf("separator bytes inside a tag must not move a list boundary")
	}

	i, j := clasico(), clasico()
	i.Tags = nil
	j.Tags = []string{""}
	if i.Key() == j.Key() {
		t.Fatalf("an empty list and a list of one empty tag must not share a key")
	}
}

func TestMatch_Validate(t *testing.T) {
	t.Parallel()

	if err := clasico().Validate(); err != nil {
		t.Fatalf("expected valid match, got %v", err)
	}

	same := clasico()
	same.Away = same.Home
	if err := same.Validate(); !errors.Is(err, ErrSameTeam) {
		t.Fatalf("expected same team error, got %v", err)
	}

	badScore := clasico()
	badScore.Score = "two-one"
	if err := badScore.Validate(); !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("expected invalid score error, got %v", err)
	}
}

func TestParseScore(t *testing.T) {
	t.Parallel()

	home, away, err := ParseScore(" 3 - 0 ")
	if err != nil || home != 3 || away != 0 {
		t.Fatalf("unexpected parse result: %d %d %v", home, away, err)
	}

	for _, raw := range []string{"", "3", "a-1", "1--1", "-1-2"} {
		if _, _, err := ParseScore(raw); !errors.Is(err, ErrInvalidScore) {
			t.Fatalf("expected invalid score for %q, got %v", raw, err)
		}
	}

	if got := FormatScore(1, 1); got != "1-1" {
		t.Fatalf("unexpected format: %s", got)
	}
}

func TestMatch_WithResultDoesNotAlias(t *testing.T) {
	t.Parallel()

	m := clasico()
	scorers := []string{"Gerard Pique"}
	next := m.WithResult(scorers, nil, "1-0")
	scorers[0] = "changed"

	if next.GoalScorers[0] != "Gerard Pique" || next.Score != "1-0" {
		t.Fatalf("unexpected result copy: %+v", next)
	}
	if m.Score != "2-1" || len(m.GoalScorers) != 3 {
		t.Fatalf("original match mutated: %+v", m)
	}
}

func TestCompare_OrdersByDateThenTeams(t *testing.T) {
	t.Parallel()

	early := clasico()
	late := clasico()
	late.Date = late.Date.AddDate(0, 0, 7)
	if Compare(early, late) >= 0 {
		t.Fatalf("expected earlier match first")
	}

	other := clasico()
	other.Home = "Atletico Madrid"
	if Compare(other, early) >= 0 {
		t.Fatalf("expected home team ordering on equal dates")
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	date, err := ParseDate("2018-10-28")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if !date.Equal(clasico().Date) {
		t.Fatalf("unexpected date: %v", date)
	}
	if _, err := ParseDate("28/10/2018"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
	if got := clasico().String(); got != "2018-10-28 Barcelona vs Real Madrid (2-1)" {
		t.Fatalf("unexpected label: %s", got)
	}
}
