/* teams.go
 * Contains the methods for looking up which registered team a discord channel belongs to
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TeamIDIn finds the team a channel belongs to
// Preconditions: Receives context, the discord server id and channel id
// Postconditions: Returns the id of the team that claims the channel, or the server's default team if none does.
// Returns ErrNotConfigured if the server has neither
func (s *Store) TeamIDIn(ctx context.Context, guildID int64, channelID int64) (int, error) {
	var team Team

	filter := bson.D{{Key: "server_id", Value: guildID}, {Key: "channels", Value: channelID}}
	err := s.Collections.Teams.FindOne(ctx, filter).Decode(&team)
	if err == nil {
		return team.ID, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, fmt.Errorf("error finding team for channel %d: %w", channelID, err)
	}

	filter = bson.D{{Key: "server_id", Value: guildID}, {Key: "team_name", Value: ""}}
	err = s.Collections.Teams.FindOne(ctx, filter).Decode(&team)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, ErrNotConfigured
	} else if err != nil {
		return 0, fmt.Errorf("error finding default team for server %d: %w", guildID, err)
	}
	return team.ID, nil
}
