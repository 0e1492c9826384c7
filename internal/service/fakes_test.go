package service

import (
	"context"
	"errors"
	"sync"

	"notesai-be/internal/entity"
	"notesai-be/internal/repository/contract"
	"notesai-be/internal/repository/specification"
	"notesai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore backs the in-memory repository fakes. Notes keep insertion
// order, which stands in for created_at ordering. A Begin snapshots both
// slices so Rollback can restore pre-transaction state, mimicking the
// all-or-nothing behavior of the real store.
type fakeStore struct {
	notes     []*entity.Note
	histories []*entity.NoteHistory

	failHistoryCreate bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func copyNotes(notes []*entity.Note) []*entity.Note {
	out := make([]*entity.Note, len(notes))
	for i, n := range notes {
		c := *n
		out[i] = &c
	}
	return out
}

func copyHistories(histories []*entity.NoteHistory) []*entity.NoteHistory {
	out := make([]*entity.NoteHistory, len(histories))
	for i, h := range histories {
		c := *h
		out[i] = &c
	}
	return out
}

type fakeUnitOfWork struct {
	store *fakeStore

	inTx          bool
	snapNotes     []*entity.Note
	snapHistories []*entity.NoteHistory
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	if u.inTx {
		return errors.New("transaction already started")
	}
	u.inTx = true
	u.snapNotes = copyNotes(u.store.notes)
	u.snapHistories = copyHistories(u.store.histories)
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	if !u.inTx {
		return errors.New("no transaction to commit")
	}
	u.inTx = false
	u.snapNotes = nil
	u.snapHistories = nil
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if !u.inTx {
		return errors.New("no transaction to rollback")
	}
	u.store.notes = u.snapNotes
	u.store.histories = u.snapHistories
	u.inTx = false
	u.snapNotes = nil
	u.snapHistories = nil
	return nil
}

func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepository{store: u.store}
}

func (u *fakeUnitOfWork) NoteHistoryRepository() contract.NoteHistoryRepository {
	return &fakeNoteHistoryRepository{store: u.store}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: newFakeStore()}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeNoteRepository struct {
	store *fakeStore
}

func (r *fakeNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	c := *note
	r.store.notes = append(r.store.notes, &c)
	return nil
}

func (r *fakeNoteRepository) BumpVersion(ctx context.Context, id uuid.UUID, content string) (*entity.Note, error) {
	for _, n := range r.store.notes {
		if n.Id == id {
			n.Content = content
			n.Version++
			c := *n
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	notes := r.store.notes[:0]
	for _, n := range r.store.notes {
		if n.Id != id {
			notes = append(notes, n)
		}
	}
	r.store.notes = notes

	// Store-level cascade
	histories := r.store.histories[:0]
	for _, h := range r.store.histories {
		if h.NoteId != id {
			histories = append(histories, h)
		}
	}
	r.store.histories = histories
	return nil
}

func (r *fakeNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			c := *n
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	matched := make([]*entity.Note, 0)
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			c := *n
			matched = append(matched, &c)
		}
	}

	for _, spec := range specs {
		if p, ok := spec.(specification.Paginate); ok {
			if p.Offset >= len(matched) {
				return []*entity.Note{}, nil
			}
			end := p.Offset + p.Limit
			if end > len(matched) {
				end = len(matched)
			}
			matched = matched[p.Offset:end]
		}
	}
	return matched, nil
}

func (r *fakeNoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	count := int64(0)
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			count++
		}
	}
	return count, nil
}

func noteMatches(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok && n.Id != byID.ID {
			return false
		}
	}
	return true
}

type fakeNoteHistoryRepository struct {
	store *fakeStore
}

func (r *fakeNoteHistoryRepository) Create(ctx context.Context, history *entity.NoteHistory) error {
	if r.store.failHistoryCreate {
		return errors.New("simulated store failure")
	}
	c := *history
	r.store.histories = append(r.store.histories, &c)
	return nil
}

func (r *fakeNoteHistoryRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteHistory, error) {
	for _, h := range r.store.histories {
		if historyMatches(h, specs) {
			c := *h
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteHistoryRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteHistory, error) {
	matched := make([]*entity.NoteHistory, 0)
	for _, h := range r.store.histories {
		if historyMatches(h, specs) {
			c := *h
			matched = append(matched, &c)
		}
	}
	// Insertion order equals version order per note, so OrderByVersionAsc
	// needs no extra work here.
	return matched, nil
}

func (r *fakeNoteHistoryRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	count := int64(0)
	for _, h := range r.store.histories {
		if historyMatches(h, specs) {
			count++
		}
	}
	return count, nil
}

func historyMatches(h *entity.NoteHistory, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByNoteID:
			if h.NoteId != s.NoteID {
				return false
			}
		case specification.ByVersion:
			if h.Version != s.Version {
				return false
			}
		}
	}
	return true
}

// stubSummarizer summarizes deterministically and can be told to fail for
// specific contents. Calls is the total number of provider invocations,
// letting tests observe cache hits.
type stubSummarizer struct {
	mu      sync.Mutex
	failFor map[string]bool
	calls   int
}

func newStubSummarizer() *stubSummarizer {
	return &stubSummarizer{failFor: make(map[string]bool)}
}

func (s *stubSummarizer) Summarize(ctx context.Context, content string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failFor[content] {
		return "", errors.New("model unavailable")
	}
	return "Summary: " + content, nil
}

func (s *stubSummarizer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
