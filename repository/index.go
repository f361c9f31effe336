package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the indexes the repositories rely on. The unique
// email index is load-bearing: it is what actually enforces one user per
// email; the pre-insert existence check is just an early exit.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	usersCollection := db.Collection("users")
	notesCollection := db.Collection("notes")

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("unique_email").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_index").
				SetUnique(true),
		},
	}

	noteIndexes := []mongo.IndexModel{
		// List ordering index
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "pinned", Value: -1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_notes_order").
				SetUnique(false),
		},
		// Partition index
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_private", Value: 1},
			},
			Options: options.Index().
				SetName("user_notes_partition"),
		},
	}

	if _, err := usersCollection.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}

	if _, err := notesCollection.Indexes().CreateMany(ctx, noteIndexes); err != nil {
		return fmt.Errorf("failed to create notes indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
