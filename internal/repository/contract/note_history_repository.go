package contract

import (
	"context"

	"notesai-be/internal/entity"
	"notesai-be/internal/repository/specification"
)

// NoteHistoryRepository appends and reads snapshots. There is no update or
// single-row delete on purpose: history rows only ever disappear through the
// store-level cascade when their note is deleted.
type NoteHistoryRepository interface {
	Create(ctx context.Context, history *entity.NoteHistory) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteHistory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteHistory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
