/* store_test.go
 * Contains unit tests for store.go, teams.go and battlefy.go
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestNewStore_EmptyDatabaseName(t *testing.T) {
	_, err := NewStore(t.Context(), "", "mongodb://localhost:27017")
	assert.Error(t, err)
}

func TestNewStore_Collections(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sets collection names", func(mt *mtest.T) {
		s := newStore(mt.Client, mt.DB)

		assert.Equal(t, "teams", s.Collections.Teams.Name())
		assert.Equal(t, "battlefy", s.Collections.Battlefy.Name())
		assert.Equal(t, mt.DB.Name(), s.GetDatabase().Name())
		assert.NotNil(t, s.GetClient())
	})
}

func TestBattlefyConfig_HasFields(t *testing.T) {
	assert.False(t, BattlefyConfig{}.HasTeam())
	assert.False(t, BattlefyConfig{StageID: "s"}.HasTournament())
	assert.True(t, BattlefyConfig{TeamID: "t"}.HasTeam())
	assert.True(t, BattlefyConfig{StageID: "s", TournamentLink: "l"}.HasTournament())
}

func TestTeamIDIn_ChannelTeam(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the team claiming the channel", func(mt *mtest.T) {
		s := NewStoreWithCollections(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.teams", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: 7},
			{Key: "server_id", Value: int64(100)},
			{Key: "team_name", Value: "Academy"},
			{Key: "channels", Value: bson.A{int64(200)}},
		}))

		id, err := s.TeamIDIn(context.Background(), 100, 200)

		require.NoError(t, err)
		assert.Equal(t, 7, id)
	})
}

func TestTeamIDIn_DefaultTeam(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("falls back to the server default team", func(mt *mtest.T) {
		s := NewStoreWithCollections(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "test.teams", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "test.teams", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: 3},
				{Key: "server_id", Value: int64(100)},
				{Key: "team_name", Value: ""},
			}),
		)

		id, err := s.TeamIDIn(context.Background(), 100, 999)

		require.NoError(t, err)
		assert.Equal(t, 3, id)
	})
}

func TestTeamIDIn_NotConfigured(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns ErrNotConfigured when the server has no teams", func(mt *mtest.T) {
		s := NewStoreWithCollections(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "test.teams", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "test.teams", mtest.FirstBatch),
		)

		_, err := s.TeamIDIn(context.Background(), 100, 200)

		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestTeamIDIn_Error(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when FindOne fails", func(mt *mtest.T) {
		s := NewStoreWithCollections(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "database error",
		}))

		_, err := s.TeamIDIn(context.Background(), 100, 200)

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotConfigured)
		assert.Contains(t, err.Error(), "database error")
	})
}

func TestBattlefyConfig_Found(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes the stored config", func(mt *mtest.T) {
		s := NewStoreWithCollections(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.battlefy", mtest.FirstBatch, bson.D{
			{Key: "team", Value: 3},
			{Key: "stage_id", Value: "5c7b2b5d7f1e4b03f7c7d6a1"},
			{Key: "team_id", Value: "5bfe1b9418ddd9114f14efb0"},
			{Key: "tournament_link", Value: "https://battlefy.com/org/slug/5c6f6ea3a8b0cd0339a1b4d6/stage/5c7b2b5d7f1e4b03f7c7d6a1/bracket/"},
		}))

		cfg, err := s.BattlefyConfig(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Team)
		assert.Equal(t, "5c7b2b5d7f1e4b03f7c7d6a1", cfg.StageID)
		assert.Equal(t, "5bfe1b9418ddd9114f14efb0", cfg.TeamID)
		assert.True(t, cfg.HasTournament())
	})
}

func TestBattlefyConfig_NotConfigured(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns ErrNotConfigured when nothing is stored", func(mt *mtest.T) {
		s := NewStoreWithCollections(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.battlefy", mtest.FirstBatch))

		_, err := s.BattlefyConfig(context.Background(), 3)

		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestSetBattlefyTeam(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("upserts the team id", func(mt *mtest.T) {
		s := NewStoreWithCollections(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "n", Value: 1},
			{Key: "nModified", Value: 1},
		})

		err := s.SetBattlefyTeam(context.Background(), 3, "5bfe1b9418ddd9114f14efb0")

		require.NoError(t, err)
		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		assert.Equal(t, "update", started.CommandName)
		assert.Contains(t, started.Command.String(), "upsert")
		assert.Contains(t, started.Command.String(), "5bfe1b9418ddd9114f14efb0")
	})
}

func TestSetBattlefyTournament(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("upserts the link and stage", func(mt *mtest.T) {
		s := NewStoreWithCollections(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := s.SetBattlefyTournament(context.Background(), 3, "https://battlefy.com/x", "5c7b2b5d7f1e4b03f7c7d6a1")

		require.NoError(t, err)
		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		assert.Contains(t, started.Command.String(), "tournament_link")
		assert.Contains(t, started.Command.String(), "5c7b2b5d7f1e4b03f7c7d6a1")
	})

	mt.Run("returns error when UpdateOne fails", func(mt *mtest.T) {
		s := NewStoreWithCollections(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := s.SetBattlefyTournament(context.Background(), 3, "https://battlefy.com/x", "stage")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "team 3")
	})
}

func TestPing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("pings the server", func(mt *mtest.T) {
		s := NewStoreWithCollections(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(t, s.Ping(context.Background()))
	})
}

// TestStore_Integration runs against a real database when MONGO_TEST_URI is set
func TestStore_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	s, cleanup, err := CreateTestStore(t.Context(), uri)
	require.NoError(t, err)
	defer cleanup()

	_, err = s.BattlefyConfig(t.Context(), 1)
	assert.ErrorIs(t, err, ErrNotConfigured)

	require.NoError(t, s.SetBattlefyTeam(t.Context(), 1, "5bfe1b9418ddd9114f14efb0"))
	require.NoError(t, s.SetBattlefyTournament(t.Context(), 1, "https://battlefy.com/x", "stage"))

	cfg, err := s.BattlefyConfig(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "5bfe1b9418ddd9114f14efb0", cfg.TeamID)
	assert.Equal(t, "stage", cfg.StageID)
}
