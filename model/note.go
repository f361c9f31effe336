package model

import "time"

const DefaultNoteColor = "#ffffff"

type Note struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Color     string    `bson:"color" json:"color"`
	Pinned    bool      `bson:"pinned" json:"pinned"`
	IsPrivate bool      `bson:"is_private" json:"is_private"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// NoteUpdate is a partial update. A nil field means "leave unchanged".
type NoteUpdate struct {
	Title     *string
	Content   *string
	Color     *string
	Pinned    *bool
	IsPrivate *bool
}

// IsEmpty reports whether the update would change nothing.
func (u *NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Color == nil &&
		u.Pinned == nil && u.IsPrivate == nil
}

// Apply copies the set fields onto the note.
func (u *NoteUpdate) Apply(n *Note) {
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	if u.Color != nil {
		n.Color = *u.Color
	}
	if u.Pinned != nil {
		n.Pinned = *u.Pinned
	}
	if u.IsPrivate != nil {
		n.IsPrivate = *u.IsPrivate
	}
}
