package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"main/dto"
	"main/model"
	"main/utils"

	"github.com/google/uuid"
)

// ErrPrivateAccessDenied means the caller tried to read the private
// partition without a valid grant.
var ErrPrivateAccessDenied = errors.New("private access not granted")

type NotesRepository interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetUserNotes(ctx context.Context, userID string, visibility model.Visibility) ([]*model.Note, error)
	GetNote(ctx context.Context, noteID, userID string) (*model.Note, error)
	UpdateNote(ctx context.Context, noteID, userID string, updates *model.NoteUpdate) error
	DeleteNote(ctx context.Context, noteID, userID string) error
}

type NotesService struct {
	NotesRepo NotesRepository
	Grants    GrantStore
}

func (svc *NotesService) validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errors.New("note title is required")
	}
	// Characters, not bytes; the binding-layer max=80 counts runes too
	if utf8.RuneCountInString(title) > 80 {
		return "", errors.New("note title exceeds maximum length")
	}
	return title, nil
}

// CreateNote creates a note owned by the caller. Creating a private note
// needs no grant; only reading the private partition does.
func (svc *NotesService) CreateNote(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*model.Note, error) {
	title, err := svc.validateTitle(req.Title)
	if err != nil {
		return nil, err
	}

	if req.Content == "" {
		return nil, errors.New("note content is required")
	}

	color := req.Color
	if color == "" {
		color = model.DefaultNoteColor
	}

	note := &model.Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   req.Content,
		Color:     color,
		Pinned:    req.Pinned,
		IsPrivate: req.IsPrivate,
		CreatedAt: time.Now(),
	}

	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// ListNotes returns the requested partition of the caller's notes.
// Anything beyond the public partition requires a valid private grant.
func (svc *NotesService) ListNotes(ctx context.Context, userID string, visibility model.Visibility, grantToken string) ([]*model.Note, error) {
	if visibility != model.VisibilityPublic {
		ok, err := svc.Grants.Check(ctx, userID, grantToken)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrPrivateAccessDenied
		}
	}

	return svc.NotesRepo.GetUserNotes(ctx, userID, visibility)
}

// GetNote returns a single owned note. A private note additionally
// requires a valid grant.
func (svc *NotesService) GetNote(ctx context.Context, noteID, userID, grantToken string) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if note.IsPrivate {
		ok, err := svc.Grants.Check(ctx, userID, grantToken)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrPrivateAccessDenied
		}
	}

	return note, nil
}

// UpdateNote applies a partial update to an owned note and returns the
// result. Absent fields are left unchanged.
func (svc *NotesService) UpdateNote(ctx context.Context, noteID, userID string, req *dto.UpdateNoteRequest) (*model.Note, error) {
	existing, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	updates := req.ToUpdate()
	if updates.Title != nil {
		title, err := svc.validateTitle(*updates.Title)
		if err != nil {
			return nil, err
		}
		updates.Title = &title
	}
	if updates.Content != nil && *updates.Content == "" {
		return nil, errors.New("note content is required")
	}

	if updates.IsEmpty() {
		return existing, nil
	}

	if err := svc.NotesRepo.UpdateNote(ctx, noteID, userID, updates); err != nil {
		return nil, err
	}

	updates.Apply(existing)
	utils.TrackNoteOperation("update")
	return existing, nil
}

// DeleteNote removes an owned note.
func (svc *NotesService) DeleteNote(ctx context.Context, noteID, userID string) error {
	if err := svc.NotesRepo.DeleteNote(ctx, noteID, userID); err != nil {
		return err
	}

	utils.TrackNoteOperation("delete")
	return nil
}
