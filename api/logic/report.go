/* report.go
 * Contains the logic used to turn a team and its rated players into the report posted to discord
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"sort"
	"strconv"

	"wahoo-bot/api/external"
)

// TopN is how many of the highest rated players are averaged
const TopN = 6

const battlefyTeamURL = "https://battlefy.com/teams/%s"

// Report is a team's roster sorted by SR along with the average of its best players
type Report struct {
	TeamName string                 `json:"team_name"`
	TeamURL  string                 `json:"team_url"`
	LogoURL  string                 `json:"logo_url"`
	Players  []external.RatedPlayer `json:"players"`

	// TopAverage is only meaningful when HasAverage is set, a roster without rated players has no average
	TopAverage int  `json:"top_average"`
	HasAverage bool `json:"has_average"`
}

// BuildReport sorts the players by SR, highest first, and averages the top TopN. Players with the same SR keep the
// order they were fetched in
func BuildReport(team external.Team, rated []external.RatedPlayer) Report {
	players := make([]external.RatedPlayer, len(rated))
	copy(players, rated)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].SR > players[j].SR
	})

	average, ok := TopAverage(players)

	return Report{
		TeamName:   team.Name(),
		TeamURL:    fmt.Sprintf(battlefyTeamURL, team.PID()),
		LogoURL:    team.LogoURL(),
		Players:    players,
		TopAverage: average,
		HasAverage: ok,
	}
}

// TopAverage averages the SR of the first TopN players using integer division. players must already be sorted
// Preconditions: Receives players sorted by SR, highest first
// Postconditions: Returns the floored average and true, or false if there are no players
func TopAverage(players []external.RatedPlayer) (int, bool) {
	top := players
	if len(top) > TopN {
		top = top[:TopN]
	}
	if len(top) == 0 {
		return 0, false
	}

	sum := 0
	for _, p := range top {
		sum += p.SR
	}
	return sum / len(top), true
}

// AverageText returns the top average for display, or "?" when there is none
func (r Report) AverageText() string {
	if !r.HasAverage {
		return "?"
	}
	return strconv.Itoa(r.TopAverage)
}
