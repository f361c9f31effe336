package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// GrantStore holds short-lived private-access grants in Redis. A grant
// is minted when a user re-proves knowledge of their private password
// and is required to read the private partition of their notes. One
// grant per user: re-validating replaces the previous one.
type GrantStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGrantStore(redisURL string, ttl time.Duration) (*GrantStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &GrantStore{client: client, ttl: ttl}, nil
}

func grantKey(userID string) string {
	return fmt.Sprintf("private:grant:%s", userID)
}

// Issue stores a fresh grant token for the user, replacing any existing
// one, and returns it.
func (s *GrantStore) Issue(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("userID cannot be empty")
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, grantKey(userID), token, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store private grant: %w", err)
	}

	return token, nil
}

// Check reports whether the presented token is the user's current grant.
// An expired or never-issued grant is a plain false, not an error.
func (s *GrantStore) Check(ctx context.Context, userID, token string) (bool, error) {
	if userID == "" || token == "" {
		return false, nil
	}

	stored, err := s.client.Get(ctx, grantKey(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read private grant: %w", err)
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1, nil
}
