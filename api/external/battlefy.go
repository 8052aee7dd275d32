/* battlefy.go
 * Contains the client for the Battlefy tournament API. It searches teams in a tournament, lists the matches of a
 * bracket round and re-fetches a single match with the opposing roster expanded
 * Authors: Zachary Bower
 */

package external

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBattlefyURL is the CDN Battlefy serves its public API from
const DefaultBattlefyURL = "https://dtmwra1jsgyb0.cloudfront.net/"

type BattlefyClient struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewBattlefyClient creates a Battlefy client. An empty baseURL uses DefaultBattlefyURL
func NewBattlefyClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *BattlefyClient {
	if baseURL == "" {
		baseURL = DefaultBattlefyURL
	}
	return &BattlefyClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
		logger:  logger,
	}
}

// FindTeamsByName searches for teams in a tournament by name. Battlefy's name match is trusted as is, nothing is
// filtered client side
// Preconditions: Receives context, tournament id and the name (or start of the name) to search for
// Postconditions: Returns NoMatch, ExactlyOne or Ambiguous, or a NetworkError / DecodeError if it occurs
func (c *BattlefyClient) FindTeamsByName(ctx context.Context, tournamentID string, name string) (SearchOutcome, error) {
	u := joinURL(c.baseURL, fmt.Sprintf("tournaments/%s/teams?name=%s", url.PathEscape(tournamentID), url.QueryEscape(name)))

	teams, err := getJSON[[]Team](ctx, c.client, u)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Str("tournament_id", tournamentID).Str("name", name).Int("results", len(teams)).Msg("team search")
	return newSearchOutcome(teams), nil
}

// ListMatches fetches every match of a bracket round. Battlefy returns the whole round in one response
func (c *BattlefyClient) ListMatches(ctx context.Context, stageID string, round int) ([]Match, error) {
	u := joinURL(c.baseURL, fmt.Sprintf("stages/%s/rounds/%d/matches", url.PathEscape(stageID), round))

	matches, err := getJSON[[]Match](ctx, c.client, u)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Str("stage_id", stageID).Int("round", round).Int("matches", len(matches)).Msg("fetched round")
	return matches, nil
}

// FetchExtendedMatch re-fetches a match asking Battlefy to expand the roster of the side that is not self
// Preconditions: Receives context, the match id and the side the caller's own team sits on
// Postconditions: Returns the opposing team, nil if Battlefy did not return exactly one match, or an error if it occurs
func (c *BattlefyClient) FetchExtendedMatch(ctx context.Context, matchID string, self Side) (*Team, error) {
	other := self.Opposite()
	u := joinURL(c.baseURL, fmt.Sprintf("matches/%s?extend[%s.team][players][users]&extend[%s.team][persistentTeam]",
		url.PathEscape(matchID), other, other))

	matches, err := getJSON[[]Match](ctx, c.client, u)
	if err != nil {
		return nil, err
	}

	if len(matches) != 1 {
		c.logger.Warn().Str("match_id", matchID).Int("matches", len(matches)).Msg("unexpected match count in extended match")
		return nil, nil
	}

	team := matches[0].Slot(other)
	return &team, nil
}
