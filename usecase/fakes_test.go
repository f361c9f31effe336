package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"main/model"
	"main/repository"
)

// In-memory stand-ins for the Mongo repositories and the Redis grant
// store, matching their error contracts.

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*model.User)}
}

func (f *fakeUserRepo) AddUser(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byEmail[user.Email]; exists {
		return repository.ErrEmailTaken
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, exists := f.byEmail[email]
	if !exists {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUserRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.byEmail {
		if user.UserID == userID {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) SetPrivatePassword(ctx context.Context, userID, hash string) error {
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

type fakeGrantStore struct {
	mu     sync.Mutex
	grants map[string]string
	issued int
}

func newFakeGrantStore() *fakeGrantStore {
	return &fakeGrantStore{grants: make(map[string]string)}
}

func (f *fakeGrantStore) Issue(ctx context.Context, userID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued++
	token := fmt.Sprintf("grant-%d", f.issued)
	f.grants[userID] = token
	return token, nil
}

func (f *fakeGrantStore) Check(ctx context.Context, userID, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return token != "" && f.grants[userID] == token, nil
}

type fakeNotesRepo struct {
	mu    sync.Mutex
	notes map[string]*model.Note
}

func newFakeNotesRepo() *fakeNotesRepo {
	return &fakeNotesRepo{notes: make(map[string]*model.Note)}
}

func (f *fakeNotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *note
	f.notes[note.ID] = &copied
	return nil
}

func (f *fakeNotesRepo) GetUserNotes(ctx context.Context, userID string, visibility model.Visibility) ([]*model.Note, error) {
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

func (f *fakeNotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	note, exists := f.notes[noteID]
	if !exists || note.UserID != userID {
		return nil, repository.ErrNotFound
	}
	copied := *note
	return &copied, nil
}

func (f *fakeNotesRepo) UpdateNote(ctx context.Context, noteID, userID string, updates *model.NoteUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	note, exists := f.notes[noteID]
	if !exists || note.UserID != userID {
		return repository.ErrNotFound
	}
	updates.Apply(note)
	return nil
}

func (f *fakeNotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	note, exists := f.notes[noteID]
	if !exists || note.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.notes, noteID)
	return nil
}
