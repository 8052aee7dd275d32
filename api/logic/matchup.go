/* matchup.go
 * Contains the logic used to find a team's match in a bracket round and resolve the team they are playing against
 * Authors: Zachary Bower
 */

package logic

import (
	"context"
	"fmt"

	"wahoo-bot/api/external"

	"github.com/rs/zerolog"
)

// BracketClient is the subset of the Battlefy client the resolver and api depend on
type BracketClient interface {
	FindTeamsByName(ctx context.Context, tournamentID string, name string) (external.SearchOutcome, error)
	ListMatches(ctx context.Context, stageID string, round int) ([]external.Match, error)
	FetchExtendedMatch(ctx context.Context, matchID string, self external.Side) (*external.Team, error)
}

var _ BracketClient = (*external.BattlefyClient)(nil)

// HasTeam reports whether teamID plays in m, and on which side
func HasTeam(m external.Match, teamID string) (external.Side, bool) {
	if m.Top.Team.PersistentTeamID == teamID {
		return external.SideTop, true
	} else if m.Bottom.Team.PersistentTeamID == teamID {
		return external.SideBottom, true
	}
	return external.SideTop, false
}

// FindMatch claims the first match teamID plays in. The match is removed from matches so it cannot be claimed twice
// Preconditions: Receives pointer to the round's matches and the team's persistent id
// Postconditions: Returns the match and the side the team is on, or false if the team has no match. An empty
// teamID never matches, as empty slots in the bracket would otherwise compare equal
func FindMatch(matches *[]external.Match, teamID string) (external.Match, external.Side, bool) {
	if teamID == "" {
		return external.Match{}, external.SideTop, false
	}

	for i, m := range *matches {
		if side, ok := HasTeam(m, teamID); ok {
			*matches = append((*matches)[:i], (*matches)[i+1:]...)
			return m, side, true
		}
	}
	return external.Match{}, external.SideTop, false
}

// Resolver finds who a team plays against in a bracket round
type Resolver struct {
	bracket BracketClient
	logger  zerolog.Logger
}

func NewResolver(bracket BracketClient, logger zerolog.Logger) *Resolver {
	return &Resolver{bracket: bracket, logger: logger}
}

// OpponentOf fetches the full roster of the team on the other side of m. self must be the side returned by FindMatch
func (r *Resolver) OpponentOf(ctx context.Context, m external.Match, self external.Side) (*external.Team, error) {
	return r.bracket.FetchExtendedMatch(ctx, m.ID, self)
}

// Matchup finds the team that teamID plays in a round of a stage
// Preconditions: Receives context, stage id, the team's persistent id and a round number that is not negative
// Postconditions: Returns the opposing team with its roster, nil if there is no match for the team in that round,
// or an error if Battlefy could not be asked
func (r *Resolver) Matchup(ctx context.Context, stageID string, teamID string, round int) (*external.Team, error) {
	matches, err := r.bracket.ListMatches(ctx, stageID, round)
	if err != nil {
		return nil, fmt.Errorf("error fetching round %d matches: %w", round, err)
	}

	m, side, ok := FindMatch(&matches, teamID)
	if !ok {
		r.logger.Info().Str("stage_id", stageID).Str("team_id", teamID).Int("round", round).Msg("no match found for team")
		return nil, nil
	}

	team, err := r.OpponentOf(ctx, m, side)
	if err != nil {
		return nil, fmt.Errorf("error fetching match %s: %w", m.ID, err)
	}
	return team, nil
}
