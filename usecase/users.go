package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPasswordMismatch = errors.New("passwords do not match")
)

// UserRepository is the credential store the auth flow runs against.
type UserRepository interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUser(ctx context.Context, userID string) (*model.User, error)
	SetPrivatePassword(ctx context.Context, userID, hash string) error
}

// GrantStore issues and checks short-lived private-access grants.
type GrantStore interface {
	Issue(ctx context.Context, userID string) (string, error)
	Check(ctx context.Context, userID, token string) (bool, error)
}

type AuthService struct {
	UsersRepo UserRepository
	Grants    GrantStore
}

// Register creates a user with a hashed primary credential and returns a
// fresh session token. Input shape validation (name, email, password
// policy) happens at the binding layer before this is called.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	// Early exit only; the unique index on email is the real guarantee
	existing, err := s.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return "", repository.ErrEmailTaken
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.UsersRepo.AddUser(ctx, user); err != nil {
		return "", err
	}

	utils.TrackAuthAttempt("success", "register")
	return services.GenerateToken(user.UserID, user.Email)
}

// Login verifies the primary credential and returns a fresh session
// token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil || !services.ComparePasswords(user.PasswordHash, password) {
		utils.TrackAuthAttempt("failure", "login")
		return "", ErrInvalidCredentials
	}

	utils.TrackAuthAttempt("success", "login")
	return services.GenerateToken(user.UserID, user.Email)
}

// SetPrivatePassword hashes and stores the private credential,
// overwriting any previous value. No re-authentication with the old
// private password is required.
func (s *AuthService) SetPrivatePassword(ctx context.Context, userID, password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash private password: %w", err)
	}

	return s.UsersRepo.SetPrivatePassword(ctx, userID, hash)
}

// PrivatePasswordResult reports the outcome of a private-password check.
// The "no private password set" message is deliberately distinct from a
// plain mismatch so clients can show a "create" instead of an "unlock"
// prompt.
type PrivatePasswordResult struct {
	Valid        bool
	Message      string
	PrivateToken string
}

// ValidatePrivatePassword re-proves knowledge of the private credential.
// On success a short-lived grant is issued for reading the private
// partition; re-validating replaces the previous grant.
func (s *AuthService) ValidatePrivatePassword(ctx context.Context, userID, password string) (*PrivatePasswordResult, error) {
	user, err := s.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.HasPrivatePassword() {
		return &PrivatePasswordResult{Valid: false, Message: "No private password set"}, nil
	}

	if !services.ComparePasswords(user.PrivatePasswordHash, password) {
		utils.TrackAuthAttempt("failure", "private")
		return &PrivatePasswordResult{Valid: false}, nil
	}

	grant, err := s.Grants.Issue(ctx, userID)
	if err != nil {
		return nil, err
	}

	utils.TrackAuthAttempt("success", "private")
	return &PrivatePasswordResult{Valid: true, PrivateToken: grant}, nil
}
