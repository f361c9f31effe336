package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"strings"
	"sync"

	"main/middleware"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	os.Setenv("GO_ENV", "test")
	gin.SetMode(gin.TestMode)
	utils.InitValidator()
	utils.InitJWT()
}

type memUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*model.User
}

func (f *memUserRepo) AddUser(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byEmail[user.Email]; exists {
		return repository.ErrEmailTaken
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *memUserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, exists := f.byEmail[email]
	if !exists {
		return nil, nil
	}
	return user, nil
}

func (f *memUserRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.byEmail {
		if user.UserID == userID {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *memUserRepo) SetPrivatePassword(ctx context.Context, userID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.byEmail {
		if user.UserID == userID {
			user.PrivatePasswordHash = hash
			return nil
		}
	}
	return repository.ErrNotFound
}

type memGrantStore struct {
	mu     sync.Mutex
	grants map[string]string
	issued int
}

func (f *memGrantStore) Issue(ctx context.Context, userID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued++
	token := fmt.Sprintf("grant-%d", f.issued)
	f.grants[userID] = token
	return token, nil
}

func (f *memGrantStore) Check(ctx context.Context, userID, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return token != "" && f.grants[userID] == token, nil
}

type memNotesRepo struct {
	mu    sync.Mutex
	notes map[string]*model.Note
}

func (f *memNotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *note
	f.notes[note.ID] = &copied
	return nil
}

func (f *memNotesRepo) GetUserNotes(ctx context.Context, userID string, visibility model.Visibility) ([]*model.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []*model.Note{}
	for _, note := range f.notes {
		if note.UserID != userID {
			continue
		}
		if visibility == model.VisibilityPublic && note.IsPrivate {
			continue
		}
		if visibility == model.VisibilityPrivate && !note.IsPrivate {
			continue
		}
		copied := *note
		result = append(result, &copied)
	}
	// Same ordering the Mongo repository asks for: pinned first, then
	// newest first
	sort.Slice(result, func(i, j int) bool {
		if result[i].Pinned != result[j].Pinned {
			return result[i].Pinned
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *memNotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	note, exists := f.notes[noteID]
	if !exists || note.UserID != userID {
		return nil, repository.ErrNotFound
	}
	copied := *note
	return &copied, nil
}

func (f *memNotesRepo) UpdateNote(ctx context.Context, noteID, userID string, updates *model.NoteUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	note, exists := f.notes[noteID]
	if !exists || note.UserID != userID {
		return repository.ErrNotFound
	}
	updates.Apply(note)
	return nil
}

func (f *memNotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	note, exists := f.notes[noteID]
	if !exists || note.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.notes, noteID)
	return nil
}

// setupTestRouter wires the full API surface over in-memory stores,
// mirroring the route layout in main.go.
func setupTestRouter() *gin.Engine {
	userRepo := &memUserRepo{byEmail: make(map[string]*model.User)}
	notesRepo := &memNotesRepo{notes: make(map[string]*model.Note)}
	grants := &memGrantStore{grants: make(map[string]string)}

	authService := &usecase.AuthService{UsersRepo: userRepo, Grants: grants}
	notesService := &usecase.NotesService{NotesRepo: notesRepo, Grants: grants}

	router := gin.New()

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				RegistrationHandler(c, authService)
			})
			auth.POST("/login", func(c *gin.Context) {
				LoginHandler(c, authService)
			})
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(userRepo))
	{
		auth := protected.Group("/auth")
		{
			auth.POST("/set-private-password", func(c *gin.Context) {
				SetPrivatePasswordHandler(c, authService)
			})
			auth.POST("/validate-private-password", func(c *gin.Context) {
				ValidatePrivatePasswordHandler(c, authService)
			})
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				GetUserNotesHandler(c, notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				GetNoteHandler(c, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				CreateNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				DeleteNoteHandler(c, notesService)
			})
		}
	}

	return router
}

func doJSON(router *gin.Engine, method, path, body, token, privateToken string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if privateToken != "" {
		req.Header.Set(PrivateTokenHeader, privateToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
