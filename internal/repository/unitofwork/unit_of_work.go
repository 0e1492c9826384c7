package unitofwork

import (
	"context"

	"notesai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteRepository() contract.NoteRepository
	NoteHistoryRepository() contract.NoteHistoryRepository
}
