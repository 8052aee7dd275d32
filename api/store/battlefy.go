/* battlefy.go
 * Contains the methods for reading and updating the Battlefy team and tournament stored for a registered team
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BattlefyConfig returns the Battlefy settings for a team, or ErrNotConfigured if nothing has been set
func (s *Store) BattlefyConfig(ctx context.Context, teamID int) (BattlefyConfig, error) {
	var cfg BattlefyConfig
	err := s.Collections.Battlefy.FindOne(ctx, bson.D{{Key: "team", Value: teamID}}).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return BattlefyConfig{}, ErrNotConfigured
	} else if err != nil {
		return BattlefyConfig{}, fmt.Errorf("error fetching battlefy config for team %d: %w", teamID, err)
	}
	return cfg, nil
}

// SetBattlefyTeam stores the persistent Battlefy team id a team plays as
func (s *Store) SetBattlefyTeam(ctx context.Context, teamID int, battlefyTeamID string) error {
	return s.upsertBattlefy(ctx, teamID, bson.D{{Key: "team_id", Value: battlefyTeamID}})
}

// SetBattlefyTournament stores the tournament link and the stage parsed from it
func (s *Store) SetBattlefyTournament(ctx context.Context, teamID int, link string, stageID string) error {
	return s.upsertBattlefy(ctx, teamID, bson.D{
		{Key: "tournament_link", Value: link},
		{Key: "stage_id", Value: stageID},
	})
}

func (s *Store) upsertBattlefy(ctx context.Context, teamID int, fields bson.D) error {
	filter := bson.D{{Key: "team", Value: teamID}}
	update := bson.D{{Key: "$set", Value: fields}}
	opts := options.Update().SetUpsert(true)

	_, err := s.Collections.Battlefy.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("error updating battlefy config for team %d: %w", teamID, err)
	}
	return nil
}
