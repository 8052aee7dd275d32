/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 * Authors: Zachary Bower
 */

package store

import "context"

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	TeamIDIn(ctx context.Context, guildID int64, channelID int64) (int, error)
	BattlefyConfig(ctx context.Context, teamID int) (BattlefyConfig, error)
	SetBattlefyTeam(ctx context.Context, teamID int, battlefyTeamID string) error
	SetBattlefyTournament(ctx context.Context, teamID int, link string, stageID string) error
	Ping(ctx context.Context) error

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}

// Ping checks the database can be reached
func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, nil)
}
