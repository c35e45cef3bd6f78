package league

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-tracker/internal/domain/collection"
	"github.com/riskibarqy/league-tracker/internal/domain/finance"
	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/domain/player"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
	"github.com/riskibarqy/league-tracker/internal/platform/logging"
)

// Tracker owns every collection of the league and is the only place where
// links between them are written. Players and matches are canonical here;
// teams reference them by key.
//
// Each mutation checks all of its pre-conditions before touching state and
// then updates, in order, the global collection, the affected teams and the
// affected players' goal counters.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	players         *collection.UniqueList[string, player.Player]
	teams           *collection.UniqueList[string, team.Team]
	matches         *collection.UniqueList[match.Key, match.Match]
	finances        *collection.UniqueList[string, finance.Finance]
	transferRecords []string
	logger          *logging.Logger
}

func New(logger *logging.Logger) *Tracker {
	if logger == nil {
		logger = logging.Default()
	}

	return &Tracker{
		players:  collection.MustNew[string, player.Player](player.Kind),
		teams:    collection.MustNew[string, team.Team](team.Kind),
		matches:  collection.MustNew[match.Key, match.Match](match.Kind),
		finances: collection.MustNew[string, finance.Finance](finance.Kind),
		logger:   logger.Named("league"),
	}
}

// AddPlayer registers p and, when p's team exists, appends p to its roster.
func (t *Tracker) AddPlayer(p player.Player) error {
	if t.players.Contains(p.Name) {
		return errors.Wrapf(player.ErrDuplicate, "player %s", p.Name)
	}
	if err := t.CheckJersey(p, ""); err != nil {
		return err
	}

	must(t.players.Add(p))
	t.joinRoster(p)

	t.logger.Debug("player added", "player", p.Name, "team", p.TeamName)
	return nil
}

// EditPlayer replaces the player named oldName with p. The old record leaves
// its team's roster and p joins the roster of its own team. A player named in
// the scorer lists of a recorded match keeps its name: renaming it fails with
// ErrPlayerRenameScored.
func (t *Tracker) EditPlayer(oldName string, p player.Player) error {
	old, err := t.players.Find(oldName)
	if err != nil {
		return err
	}
	if p.Name != oldName {
		if t.players.Contains(p.Name) {
			return errors.Wrapf(player.ErrDuplicate, "player %s", p.Name)
		}
		if m, ok := t.matchNaming(oldName); ok {
			return errors.Wrapf(ErrPlayerRenameScored, "player %s is listed in match %s", oldName, m)
		}
	}
	if err := t.CheckJersey(p, oldName); err != nil {
		return err
	}

	must(t.players.Edit(oldName, p))
	t.leaveRoster(old)
	t.joinRoster(p)

	t.logger.Debug("player edited", "player", oldName, "new_name", p.Name, "team", p.TeamName)
	return nil
}

func (t *Tracker) RemovePlayer(name string) error {
	old, err := t.players.Find(name)
	if err != nil {
		return err
	}

	must(t.players.Remove(name))
	t.leaveRoster(old)

	t.logger.Debug("player removed", "player", name, "team", old.TeamName)
	return nil
}

// CheckJersey reports ErrDuplicateJerseyInTeam when another player of p's
// team wears p's jersey number. The player named exclude is ignored.
func (t *Tracker) CheckJersey(p player.Player, exclude string) error {
	for other := range t.players.All() {
		if other.Name == exclude || other.Name == p.Name {
			continue
		}
		if other.TeamName == p.TeamName && other.JerseyNumber == p.JerseyNumber {
			return errors.Wrapf(ErrDuplicateJerseyInTeam, "team %s jersey %d is worn by %s",
				p.TeamName, p.JerseyNumber, other.Name)
		}
	}
	return nil
}

// AddTeam registers tm. Links on tm are ignored: the roster is rebuilt from
// players already registered under tm's name and the match list starts empty.
func (t *Tracker) AddTeam(tm team.Team) error {
	if t.teams.Contains(tm.Name) {
		return errors.Wrapf(team.ErrDuplicate, "team %s", tm.Name)
	}

	next := tm.WithoutPlayers().WithoutMatches()
	for p := range t.players.All() {
		if p.TeamName == next.Name {
			next = next.WithPlayer(p.Name)
		}
	}
	must(t.teams.Add(next))

	t.logger.Debug("team added", "team", next.Name, "roster_size", len(next.PlayerNames))
	return nil
}

// EditTeam replaces the team named oldName with tm, carrying over its roster,
// match list and standing. Renaming a team that still has players or matches
// fails with ErrTeamRenameOrphans. A renamed team adopts the players already
// registered under its new name, as AddTeam does.
func (t *Tracker) EditTeam(oldName string, tm team.Team) error {
	old, err := t.teams.Find(oldName)
	if err != nil {
		return err
	}
	if tm.Name != oldName {
		if t.teams.Contains(tm.Name) {
			return errors.Wrapf(team.ErrDuplicate, "team %s", tm.Name)
		}
		if len(old.PlayerNames) > 0 || len(old.MatchKeys) > 0 {
			return errors.Wrapf(ErrTeamRenameOrphans, "team %s has %d players and %d matches",
				oldName, len(old.PlayerNames), len(old.MatchKeys))
		}
	}

	next := tm.Clone()
	next.PlayerNames = slices.Clone(old.PlayerNames)
	next.MatchKeys = slices.Clone(old.MatchKeys)
	next.Standing = old.Standing
	if next.Name != oldName {
		next = next.WithoutPlayers()
		for p := range t.players.All() {
			if p.TeamName == next.Name {
				next = next.WithPlayer(p.Name)
			}
		}
	}
	must(t.teams.Edit(oldName, next))

	t.logger.Debug("team edited", "team", oldName, "new_name", next.Name, "roster_size", len(next.PlayerNames))
	return nil
}

// RemoveTeam deletes the team named name together with every player
// registered to it and every match it played in. Opponents drop those
// matches and have their standings recomputed.
func (t *Tracker) RemoveTeam(name string) error {
	if _, err := t.teams.Find(name); err != nil {
		return err
	}

	var doomedPlayers []string
	for p := range t.players.All() {
		if p.TeamName == name {
			doomedPlayers = append(doomedPlayers, p.Name)
		}
	}
	var doomedMatches []match.Match
	for m := range t.matches.All() {
		if m.Involves(name) {
			doomedMatches = append(doomedMatches, m)
		}
	}

	must(t.teams.Remove(name))
	for _, playerName := range doomedPlayers {
		must(t.players.Remove(playerName))
	}
	for _, m := range doomedMatches {
		t.dropMatch(m)
	}

	t.logger.Debug("team removed", "team", name,
		"removed_players", len(doomedPlayers), "removed_matches", len(doomedMatches))
	return nil
}

// AddMatch registers m and links it to both participating teams. Every goal
// scorer of m must be a registered player.
func (t *Tracker) AddMatch(m match.Match) error {
	if err := t.checkMatch(m); err != nil {
		return err
	}
	if t.matches.Contains(m.Key()) {
		return errors.Wrapf(match.ErrDuplicate, "match %s", m)
	}
	if err := t.checkScorers(m); err != nil {
		return err
	}

	t.insertMatch(m, true)

	t.logger.Debug("match added", "match", m.String())
	return nil
}

// RemoveMatch deletes the match identified by key, unlinks it from both teams
// and takes its goals off the scorers' counters.
func (t *Tracker) RemoveMatch(key match.Key) error {
	m, err := t.matches.Find(key)
	if err != nil {
		return err
	}

	t.dropMatch(m)

	t.logger.Debug("match removed", "match", m.String())
	return nil
}

// UpdateMatch replaces the match identified by oldKey with next. Teams swap
// the old link for the new one and the goals of the old match are replaced
// by the goals of next on the scorers' counters.
func (t *Tracker) UpdateMatch(oldKey match.Key, next match.Match) error {
	old, err := t.matches.Find(oldKey)
	if err != nil {
		return err
	}
	newKey := next.Key()
	if t.matches.Contains(newKey) {
		return errors.Wrapf(match.ErrUpdated, "match %s", next)
	}
	if err := t.checkMatch(next); err != nil {
		return err
	}
	if err := t.checkScorers(next); err != nil {
		return err
	}

	must(t.matches.Remove(oldKey))
	must(t.matches.Add(next))

	t.unlinkMatch(old.Home, oldKey)
	t.unlinkMatch(old.Away, oldKey)
	t.linkMatch(next.Home, newKey)
	t.linkMatch(next.Away, newKey)
	t.recomputeStandings(old.Home, old.Away, next.Home, next.Away)

	t.adjustGoals(old.GoalScorers, -1)
	t.adjustGoals(next.GoalScorers, 1)

	t.logger.Debug("match updated", "old", old.String(), "new", next.String())
	return nil
}

// ClearMatch deletes every match, resets every standing and every goal count.
func (t *Tracker) ClearMatch() {
	t.matches.Clear()
	for tm := range t.teams.All() {
		must(t.teams.Edit(tm.Name, tm.WithoutMatches()))
	}
	for p := range t.players.All() {
		must(t.players.Edit(p.Name, p.WithoutGoals()))
	}

	t.logger.Debug("matches cleared")
}

// ClearPlayer deletes every player and empties every roster.
func (t *Tracker) ClearPlayer() {
	t.players.Clear()
	for tm := range t.teams.All() {
		must(t.teams.Edit(tm.Name, tm.WithoutPlayers()))
	}

	t.logger.Debug("players cleared")
}

// ClearTeam resets the league: teams, players, matches and finances.
func (t *Tracker) ClearTeam() {
	t.teams.Clear()
	t.players.Clear()
	t.matches.Clear()
	t.finances.Clear()

	t.logger.Debug("league cleared")
}

// RefreshFinance rebuilds the finance collection with one entry per team.
func (t *Tracker) RefreshFinance() error {
	t.finances.Clear()
	for tm := range t.teams.All() {
		if err := t.finances.Add(finance.New(tm, t.teamMatches(tm))); err != nil {
			return err
		}
	}

	t.logger.Debug("finances refreshed", "count", t.finances.Len())
	return nil
}

func (t *Tracker) AddFinance(f finance.Finance) error {
	return t.finances.Add(f)
}

func (t *Tracker) AddTransferRecord(record string) {
	t.transferRecords = append(t.transferRecords, record)
}

func (t *Tracker) SortPlayers() {
	t.players.Sort(player.Compare)
}

func (t *Tracker) SortFinances() {
	t.finances.Sort(finance.Compare)
}

func (t *Tracker) checkMatch(m match.Match) error {
	if _, err := t.teams.Find(m.Home); err != nil {
		return err
	}
	if _, err := t.teams.Find(m.Away); err != nil {
		return err
	}
	if m.Home == m.Away {
		return errors.Wrapf(match.ErrSameTeam, "team %s", m.Home)
	}
	if m.IsPlayed() {
		if _, _, err := match.ParseScore(m.Score); err != nil {
			return err
		}
	}
	return nil
}

// checkScorers reports player.ErrNotFound for the first goal scorer of m that
// is not registered, so every counted goal lands on a counter.
func (t *Tracker) checkScorers(m match.Match) error {
	for _, name := range m.GoalScorers {
		if !t.players.Contains(name) {
			return errors.Wrapf(player.ErrNotFound, "goal scorer %s of match %s", name, m)
		}
	}
	return nil
}

// matchNaming returns a match that lists name as a goal or own-goal scorer.
func (t *Tracker) matchNaming(name string) (match.Match, bool) {
	for m := range t.matches.All() {
		if slices.Contains(m.GoalScorers, name) || slices.Contains(m.OwnGoalScorers, name) {
			return m, true
		}
	}
	return match.Match{}, false
}

func (t *Tracker) insertMatch(m match.Match, countGoals bool) {
	key := m.Key()
	must(t.matches.Add(m))

	t.linkMatch(m.Home, key)
	t.linkMatch(m.Away, key)
	t.recomputeStandings(m.Home, m.Away)

	if countGoals {
		t.adjustGoals(m.GoalScorers, 1)
	}
}

func (t *Tracker) dropMatch(m match.Match) {
	key := m.Key()
	must(t.matches.Remove(key))

	t.unlinkMatch(m.Home, key)
	t.unlinkMatch(m.Away, key)
	t.recomputeStandings(m.Home, m.Away)

	t.adjustGoals(m.GoalScorers, -1)
}

func (t *Tracker) joinRoster(p player.Player) {
	tm, err := t.teams.Find(p.TeamName)
	if err != nil {
		return
	}
	must(t.teams.Edit(tm.Name, tm.WithPlayer(p.Name)))
}

func (t *Tracker) leaveRoster(p player.Player) {
	tm, err := t.teams.Find(p.TeamName)
	if err != nil {
		return
	}
	must(t.teams.Edit(tm.Name, tm.WithoutPlayer(p.Name)))
}

func (t *Tracker) linkMatch(teamName string, key match.Key) {
	tm, err := t.teams.Find(teamName)
	if err != nil {
		return
	}
	must(t.teams.Edit(tm.Name, tm.WithMatch(key)))
}

func (t *Tracker) unlinkMatch(teamName string, key match.Key) {
	tm, err := t.teams.Find(teamName)
	if err != nil {
		return
	}
	must(t.teams.Edit(tm.Name, tm.WithoutMatch(key)))
}

// recomputeStandings re-derives the standing of each named team that still
// exists from its current match list.
func (t *Tracker) recomputeStandings(teamNames ...string) {
	seen := make(map[string]struct{}, len(teamNames))
	for _, name := range teamNames {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		tm, err := t.teams.Find(name)
		if err != nil {
			continue
		}
		standing, err := team.ComputeStanding(tm.Name, t.teamMatches(tm))
		must(err)
		must(t.teams.Edit(tm.Name, tm.WithStanding(standing)))
	}
}

// adjustGoals moves the goal counter of every listed scorer by delta. Adding
// goals requires every scorer to be registered. When goals are taken back, a
// scorer removed since the match was recorded took its counter along and is
// skipped.
func (t *Tracker) adjustGoals(scorers []string, delta int) {
	for _, name := range scorers {
		p, err := t.players.Find(name)
		if err != nil && delta < 0 {
			t.logger.Debug("goal scorer removed since match was recorded", "player", name)
			continue
		}
		must(err)
		must(t.players.Edit(name, p.WithGoals(delta)))
	}
}

func (t *Tracker) teamMatches(tm team.Team) []match.Match {
	out := make([]match.Match, 0, len(tm.MatchKeys))
	for _, key := range tm.MatchKeys {
		m, err := t.matches.Find(key)
		must(err)
		out = append(out, m)
	}
	return out
}

// must panics on errors that can only come from a broken internal invariant,
// such as editing a key that was found a moment earlier.
func must(err error) {
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "league tracker invariant violated"))
	}
}
