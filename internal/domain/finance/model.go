package finance

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-tracker/internal/domain/collection"
	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
)

const Quarters = 4

var (
	ErrDuplicate = errors.Wrap(collection.ErrDuplicateEntity, "finance")
	ErrNotFound  = errors.Wrap(collection.ErrEntityNotFound, "finance")
)

var Kind = collection.Kind{Name: "finance", ErrDuplicate: ErrDuplicate, ErrNotFound: ErrNotFound}

// Finance is the revenue summary of one team, derived at refresh time.
type Finance struct {
	TeamName      string          `json:"team_name"`
	Sponsorship   int64           `json:"sponsorship"`
	TicketRevenue int64           `json:"ticket_revenue"`
	Total         int64           `json:"total"`
	Quarterly     [Quarters]int64 `json:"quarterly"`
}

// New derives the finance of t from its sponsorship and the ticket sales of
// the given matches: home sales for home fixtures, away sales for away ones.
func New(t team.Team, matches []match.Match) Finance {
	f := Finance{
		TeamName:    t.Name,
		Sponsorship: t.Sponsorship,
	}
	for _, m := range matches {
		switch t.Name {
		case m.Home:
			f.TicketRevenue += m.HomeSales
		case m.Away:
			f.TicketRevenue += m.AwaySales
		}
	}
	f.Total = f.Sponsorship + f.TicketRevenue

	share := f.Total / Quarters
	for i := range f.Quarterly {
		f.Quarterly[i] = share
	}
	f.Quarterly[Quarters-1] += f.Total - share*Quarters

	return f
}

func (f Finance) Key() string {
	return f.TeamName
}

func (f Finance) Clone() Finance {
	return f
}

// Compare orders finances by total revenue descending, then team name.
func Compare(a, b Finance) int {
	switch {
	case a.Total > b.Total:
		return -1
	case a.Total < b.Total:
		return 1
	}
	return strings.Compare(a.TeamName, b.TeamName)
}
