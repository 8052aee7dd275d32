/* models.go
 * This file contains the models used by the external package when fetching data from Battlefy and Overbuff
 * Authors: Zachary Bower
 */

package external

import "strings"

type Battlenet struct {
	Battletag string `json:"battletag"`
}

type Accounts struct {
	Battlenet Battlenet `json:"battlenet"`
}

type User struct {
	Name     string   `json:"name"`
	Accounts Accounts `json:"accounts"`
}

// Player is a roster entry as returned by Battlefy
type Player struct {
	ID                 string `json:"_id"`
	PersistentPlayerID string `json:"persistentPlayerID"`
	InGameName         string `json:"inGameName"`
	User               User   `json:"user"`
}

// Battletag returns the player's displayable account handle. The in game name wins over the linked battle.net
// account, and a player with neither cannot be looked up on Overbuff
func (p Player) Battletag() (string, bool) {
	if p.InGameName != "" {
		return p.InGameName, true
	}
	if p.User.Accounts.Battlenet.Battletag != "" {
		return p.User.Accounts.Battlenet.Battletag, true
	}
	return "", false
}

type PersistentTeam struct {
	Name                string   `json:"name"`
	LogoURL             string   `json:"logoUrl"`
	PersistentPlayerIDs []string `json:"persistentPlayerIDs"`
	PersistentCaptainID string   `json:"persistentCaptainID"`
}

// Team is a tournament team. PersistentTeamID identifies the team across tournaments and is what matches are
// resolved against, ID is only the id of this tournament's record
type Team struct {
	ID               string         `json:"_id"`
	PersistentTeamID string         `json:"persistentTeamID"`
	PersistentTeam   PersistentTeam `json:"persistentTeam"`
	Players          []Player       `json:"players,omitempty"`
}

func (t Team) Name() string {
	return t.PersistentTeam.Name
}

func (t Team) PID() string {
	return t.PersistentTeamID
}

func (t Team) LogoURL() string {
	return t.PersistentTeam.LogoURL
}

type MatchTeam struct {
	Team Team `json:"team"`
}

// Match is a single bracket match between the top and bottom slot
type Match struct {
	ID     string    `json:"_id"`
	Top    MatchTeam `json:"top"`
	Bottom MatchTeam `json:"bottom"`
}

// Slot returns the team sitting in the given side of the match
func (m Match) Slot(side Side) Team {
	if side == SideTop {
		return m.Top.Team
	}
	return m.Bottom.Team
}

// Side identifies one of the two slots of a match
type Side int

const (
	SideTop Side = iota
	SideBottom
)

func (s Side) String() string {
	if s == SideTop {
		return "top"
	}
	return "bottom"
}

// Opposite returns the other slot of the match
func (s Side) Opposite() Side {
	if s == SideTop {
		return SideBottom
	}
	return SideTop
}

// SearchOutcome is the result of a team name search. It is one of NoMatch, ExactlyOne or Ambiguous
type SearchOutcome interface {
	isSearchOutcome()
}

type NoMatch struct{}

type ExactlyOne struct {
	Team Team
}

type Ambiguous struct {
	Teams []Team
}

func (NoMatch) isSearchOutcome()    {}
func (ExactlyOne) isSearchOutcome() {}
func (Ambiguous) isSearchOutcome()  {}

// newSearchOutcome classifies the teams returned by a search
func newSearchOutcome(teams []Team) SearchOutcome {
	switch len(teams) {
	case 0:
		return NoMatch{}
	case 1:
		return ExactlyOne{Team: teams[0]}
	default:
		return Ambiguous{Teams: teams}
	}
}

// Role is the most played role scraped from a player's Overbuff profile
type Role int

const (
	RoleUnknown Role = iota
	RoleTank
	RoleOffense
	RoleSupport
	RoleDefense
)

func (r Role) String() string {
	switch r {
	case RoleTank:
		return "Tank"
	case RoleOffense:
		return "Offense"
	case RoleSupport:
		return "Support"
	case RoleDefense:
		return "Defense"
	default:
		return "Unknown"
	}
}

// MarshalText lets reports carry the role name instead of its number
func (r Role) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(r.String())), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	*r = RoleUnknown
	for _, role := range []Role{RoleTank, RoleOffense, RoleSupport, RoleDefense} {
		if strings.EqualFold(string(text), role.String()) {
			*r = role
		}
	}
	return nil
}

// roleFromName maps the literal role names Overbuff prints to a Role
func roleFromName(name string) Role {
	switch name {
	case "Tank":
		return RoleTank
	case "Offense":
		return RoleOffense
	case "Support":
		return RoleSupport
	case "Defense":
		return RoleDefense
	default:
		return RoleUnknown
	}
}

// RatedPlayer is a player with the data scraped from Overbuff. An SR of 0 means it could not be found
type RatedPlayer struct {
	Battletag string `json:"battletag"`
	SR        int    `json:"sr"`
	Role      Role   `json:"role"`
}
