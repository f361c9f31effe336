package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	os.Setenv("GO_ENV", "test")
	gin.SetMode(gin.TestMode)
	utils.InitJWT()
}

type stubUserRepo struct {
	users map[string]*model.User // by email
}

func (s *stubUserRepo) AddUser(ctx context.Context, user *model.User) error {
	s.users[user.Email] = user
	return nil
}

func (s *stubUserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, exists := s.users[email]
	if !exists {
		return nil, nil
	}
	return user, nil
}

func (s *stubUserRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	for _, user := range s.users {
		if user.UserID == userID {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) SetPrivatePassword(ctx context.Context, userID, hash string) error {
	return nil
}

func newAuthTestRouter(repo *stubUserRepo) *gin.Engine {
	router := gin.New()
	router.Use(AuthMiddleware(repo))
	router.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(ContextUserID),
			"email":   c.GetString(ContextEmail),
		})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*model.User{
		"alice@example.com": {UserID: "user-1", Email: "alice@example.com"},
	}}
	router := newAuthTestRouter(repo)

	validToken, err := services.GenerateToken("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	// Token for a user that was since removed
	ghostToken, err := services.GenerateToken("user-9", "ghost@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	originalTTL := utils.JWTExpirationTime
	utils.JWTExpirationTime = -time.Minute
	expiredToken, err := services.GenerateToken("user-1", "alice@example.com")
	utils.JWTExpirationTime = originalTTL
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tests := []struct {
		name         string
		authHeader   string
		expectedCode int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"deleted user", "Bearer " + ghostToken, http.StatusUnauthorized},
		{"valid token", "Bearer " + validToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.expectedCode, w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareRejectsStaleIdentity(t *testing.T) {
	// Same email, but the account was recreated with a new user ID; the
	// old token must not resolve to the new account
	repo := &stubUserRepo{users: map[string]*model.User{
		"alice@example.com": {UserID: "user-2", Email: "alice@example.com"},
	}}
	router := newAuthTestRouter(repo)

	staleToken, err := services.GenerateToken("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+staleToken)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
