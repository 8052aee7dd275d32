/* fakes_test.go
 * Contains fake bracket and rating clients used by the logic package tests
 * Authors: Zachary Bower
 */

package logic

import (
	"context"
	"sync"
	"sync/atomic"

	"wahoo-bot/api/external"
)

type fakeBracket struct {
	outcome  external.SearchOutcome
	matches  []external.Match
	opponent *external.Team
	err      error
	fetchErr error

	gotMatchID string
	gotSide    external.Side
	fetched    bool
}

func (f *fakeBracket) FindTeamsByName(ctx context.Context, tournamentID string, name string) (external.SearchOutcome, error) {
	return f.outcome, f.err
}

func (f *fakeBracket) ListMatches(ctx context.Context, stageID string, round int) ([]external.Match, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]external.Match, len(f.matches))
	copy(out, f.matches)
	return out, nil
}

func (f *fakeBracket) FetchExtendedMatch(ctx context.Context, matchID string, self external.Side) (*external.Team, error) {
	f.fetched = true
	f.gotMatchID = matchID
	f.gotSide = self
	return f.opponent, f.fetchErr
}

// fakeFinder returns ratings from a map, and an error for any battletag not in it
type fakeFinder struct {
	ratings map[string]external.RatedPlayer
	errs    map[string]error
	block   chan struct{}

	mu       sync.Mutex
	asked    []string
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (f *fakeFinder) FindPlayer(ctx context.Context, battletag string) (external.RatedPlayer, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		seen := f.maxSeen.Load()
		if n <= seen || f.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}

	f.mu.Lock()
	f.asked = append(f.asked, battletag)
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return external.RatedPlayer{}, ctx.Err()
		}
	}

	if err, ok := f.errs[battletag]; ok {
		return external.RatedPlayer{}, err
	}
	return f.ratings[battletag], nil
}

func team(pid string, name string) external.Team {
	return external.Team{
		ID:               "rec-" + pid,
		PersistentTeamID: pid,
		PersistentTeam:   external.PersistentTeam{Name: name},
	}
}

func match(id string, top external.Team, bottom external.Team) external.Match {
	return external.Match{
		ID:     id,
		Top:    external.MatchTeam{Team: top},
		Bottom: external.MatchTeam{Team: bottom},
	}
}
