package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type NoteResponse struct {
	Id      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Version int       `json:"version"`
}

type ListNotesQuery struct {
	Page int `query:"page" validate:"min=1"`
	Size int `query:"size" validate:"min=1,max=1000"`
}

// ListNotesResponse carries a page of notes with their content replaced by
// summaries, plus the total row count.
type ListNotesResponse struct {
	Notes      []*NoteResponse `json:"notes"`
	CountItems int64           `json:"count_items"`
}

type NoteHistoryResponse struct {
	Id        uuid.UUID `json:"id"`
	Version   int       `json:"version"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DetailNoteResponse struct {
	Id      uuid.UUID              `json:"id"`
	Title   string                 `json:"title"`
	Content string                 `json:"content"`
	Version int                    `json:"version"`
	History []*NoteHistoryResponse `json:"history"`
}

type UpdateNoteRequest struct {
	Id      uuid.UUID
	Content string `json:"content" validate:"required"`
}

type RollbackNoteRequest struct {
	Id      uuid.UUID
	Version int `json:"version" validate:"min=1"`
}
