package repository

import (
	"context"
	"fmt"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "notes")
	collectionName := utils.GetEnvAsString("NOTES_COLLECTION", "notes")
	if os.Getenv("GO_ENV") == "test" {
		dbName = dbName + "_test"
	}
	return &NotesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateNote inserts a new note
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.UserID == "" {
		return fmt.Errorf("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
		return err
	}

	return nil
}

// GetUserNotes retrieves the requested partition of a user's notes,
// pinned first, then newest first.
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID string, visibility model.Visibility) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	switch visibility {
	case model.VisibilityPublic:
		filter["is_private"] = false
	case model.VisibilityPrivate:
		filter["is_private"] = true
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "pinned", Value: -1},
		{Key: "created_at", Value: -1},
	})

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "note_list_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote retrieves a single note scoped to its owner. A note owned by
// someone else is indistinguishable from a missing one.
func (r *NotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, err
	}
	return &note, nil
}

// UpdateNote applies a partial update to an owned note. Unset fields are
// left untouched.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID string, updates *model.NoteUpdate) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	set := bson.M{}
	if updates.Title != nil {
		set["title"] = *updates.Title
	}
	if updates.Content != nil {
		set["content"] = *updates.Content
	}
	if updates.Color != nil {
		set["color"] = *updates.Color
	}
	if updates.Pinned != nil {
		set["pinned"] = *updates.Pinned
	}
	if updates.IsPrivate != nil {
		set["is_private"] = *updates.IsPrivate
	}
	if len(set) == 0 {
		return nil
	}

	filter := bson.M{
		"_id":     noteID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteNote deletes an owned note
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     noteID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
