/* test_helpers.go
 * Contains test helper functions for store package tests
 * Authors: Zachary Bower
 */

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function that drops the database.
func CreateTestStore(ctx context.Context, mongoURI string) (*Store, func(), error) {
	store, err := NewStore(ctx, "test_wahoo", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		store.Database.Drop(context.Background())
		store.Client.Disconnect(context.Background())
	}

	return store, cleanup, nil
}

// CreateTestClient creates a test MongoDB client.
func CreateTestClient(ctx context.Context, mongoURI string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
}

// NewStoreWithCollections creates a Store whose collections are both coll. Used with mtest mock clients, which only
// expose a single collection
func NewStoreWithCollections(client *mongo.Client, db *mongo.Database, coll *mongo.Collection) *Store {
	return &Store{
		Client:   client,
		Database: db,
		Collections: Collections{
			Teams:    coll,
			Battlefy: coll,
		},
	}
}
