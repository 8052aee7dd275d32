/* models.go
 * This file contain the structs that relate to DB objects
 * Authors: Zachary Bower
 */

package store

import "errors"

// ErrNotConfigured is returned when a server, channel or team has nothing stored for the lookup
var ErrNotConfigured = errors.New("not configured")

// Team is a team registered on a discord server. A team with an empty name is the server's default team, used for
// any channel not claimed by another team
type Team struct {
	ID       int     `bson:"_id"`
	ServerID int64   `bson:"server_id"`
	TeamName string  `bson:"team_name"`
	Channels []int64 `bson:"channels,omitempty"`
}

// BattlefyConfig is the Battlefy team and tournament a registered team plays in
type BattlefyConfig struct {
	Team           int    `bson:"team"`
	StageID        string `bson:"stage_id,omitempty"`
	TeamID         string `bson:"team_id,omitempty"`
	TournamentLink string `bson:"tournament_link,omitempty"`
}

// HasTeam reports whether a Battlefy team has been set
func (c BattlefyConfig) HasTeam() bool {
	return c.TeamID != ""
}

// HasTournament reports whether a tournament has been set
func (c BattlefyConfig) HasTournament() bool {
	return c.StageID != "" && c.TournamentLink != ""
}
