package dto

import "main/model"

type CreateNoteRequest struct {
	Title     string `json:"title" binding:"required,max=80"`
	Content   string `json:"content" binding:"required"`
	Color     string `json:"color"`
	Pinned    bool   `json:"pinned"`
	IsPrivate bool   `json:"is_private"`
}

// UpdateNoteRequest carries a partial update; absent fields leave the
// stored note untouched.
type UpdateNoteRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=80"`
	Content   *string `json:"content"`
	Color     *string `json:"color"`
	Pinned    *bool   `json:"pinned"`
	IsPrivate *bool   `json:"is_private"`
}

func (r *UpdateNoteRequest) ToUpdate() *model.NoteUpdate {
	return &model.NoteUpdate{
		Title:     r.Title,
		Content:   r.Content,
		Color:     r.Color,
		Pinned:    r.Pinned,
		IsPrivate: r.IsPrivate,
	}
}
