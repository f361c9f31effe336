package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func GetUserRepo(client *mongo.Client) *UserRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "notes")
	collectionName := utils.GetEnvAsString("USERS_COLLECTION", "users")
	if os.Getenv("GO_ENV") == "test" {
		dbName = dbName + "_test"
	}
	return &UserRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// AddUser inserts a new user. The unique index on email turns a
// concurrent duplicate registration into ErrEmailTaken here, regardless
// of any earlier existence check.
func (r *UserRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if user.Email == "" || user.PasswordHash == "" {
		utils.TrackError("database", "invalid_user_data")
		return errors.New("email and password hash required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.TrackError("database", "duplicate_email")
			return ErrEmailTaken
		}
		utils.TrackError("database", "user_creation_failed")
		return fmt.Errorf("failed to add user: %w", err)
	}

	return nil
}

// FindUserByEmail returns nil, nil when no user has the email.
func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	filter := bson.D{{Key: "email", Value: email}}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	filter := bson.D{{Key: "user_id", Value: userID}}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}

// SetPrivatePassword overwrites the user's private credential hash
// unconditionally.
func (r *UserRepo) SetPrivatePassword(ctx context.Context, userID, hash string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	if hash == "" {
		utils.TrackError("database", "invalid_password_hash")
		return errors.New("password hashing error")
	}

	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"private_password_hash": hash,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "private_password_update_failed")
		return fmt.Errorf("failed to update private password: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
