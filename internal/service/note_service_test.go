package service

import (
	"context"
	"testing"
	"time"

	"notesai-be/internal/apperror"
	"notesai-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNoteService(factory *fakeFactory, sum *stubSummarizer) INoteService {
	return NewNoteService(factory, nil, sum, time.Minute)
}

func TestCreateWritesInitialHistory(t *testing.T) {
	factory := newFakeFactory()
	svc := newTestNoteService(factory, newStubSummarizer())

	res, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
		Title:   "Note-1",
		Content: "Test note for test task",
	})
	require.NoError(t, err)

	assert.Equal(t, "Note-1", res.Title)
	assert.Equal(t, "Test note for test task", res.Content)
	assert.Equal(t, 1, res.Version)

	require.Len(t, factory.store.histories, 1)
	assert.Equal(t, res.Id, factory.store.histories[0].NoteId)
	assert.Equal(t, 1, factory.store.histories[0].Version)
	assert.Equal(t, "Test note for test task", factory.store.histories[0].Content)
}

func TestCreateRollsBackWhenHistoryInsertFails(t *testing.T) {
	factory := newFakeFactory()
	factory.store.failHistoryCreate = true
	svc := newTestNoteService(factory, newStubSummarizer())

	_, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
		Title:   "Note-1",
		Content: "content",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrCreationFailed)

	// No partial note may remain visible
	assert.Empty(t, factory.store.notes)
	assert.Empty(t, factory.store.histories)
}

func TestUpdateBumpsVersionMonotonically(t *testing.T) {
	factory := newFakeFactory()
	svc := newTestNoteService(factory, newStubSummarizer())

	created, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
		Title:   "Note-1",
		Content: "v1",
	})
	require.NoError(t, err)

	const updates = 4
	var last *dto.NoteResponse
	for i := 0; i < updates; i++ {
		last, err = svc.Update(context.Background(), &dto.UpdateNoteRequest{
			Id:      created.Id,
			Content: "updated",
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 1+updates, last.Version)

	require.Len(t, factory.store.histories, updates+1)
	for i, h := range factory.store.histories {
		assert.Equal(t, i+1, h.Version)
	}
}

func TestUpdateUnknownNoteReturnsNotFound(t *testing.T) {
	factory := newFakeFactory()
	svc := newTestNoteService(factory, newStubSummarizer())

	_, err := svc.Update(context.Background(), &dto.UpdateNoteRequest{
		Id:      uuid.New(),
		Content: "content",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateIsAtomicWhenHistoryAppendFails(t *testing.T) {
	factory := newFakeFactory()
	svc := newTestNoteService(factory, newStubSummarizer())

	created, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
		Title:   "Note-1",
		Content: "original",
	})
	require.NoError(t, err)

	factory.store.failHistoryCreate = true
	_, err = svc.Update(context.Background(), &dto.UpdateNoteRequest{
		Id:      created.Id,
		Content: "changed",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrStoreFailure)

	// The version bump must have been rolled back with the failed append
	require.Len(t, factory.store.notes, 1)
	assert.Equal(t, "original", factory.store.notes[0].Content)
	assert.Equal(t, 1, factory.store.notes[0].Version)
	assert.Len(t, factory.store.histories, 1)
}

func TestRollbackRestoresContentUnderFreshVersion(t *testing.T) {
	factory := newFakeFactory()
	svc := newTestNoteService(factory, newStubSummarizer())

	created, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
		Title:   "Note-1",
		Content: "first draft",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), &dto.UpdateNoteRequest{
		Id:      created.Id,
		Content: "second draft",
	})
	require.NoError(t, err)

	res, err := svc.Rollback(context.Background(), &dto.RollbackNoteRequest{
		Id:      created.Id,
		Version: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "first draft", res.Content)
	assert.Equal(t, 3, res.Version, "restore mints a new version instead of regressing")

	// A snapshot of the restored content exists under the fresh version
	require.Len(t, factory.store.histories, 3)
	assert.Equal(t, 3, factory.store.histories[2].Version)
	assert.Equal(t, "first draft", factory.store.histories[2].Content)
}

func TestRollbackUnknownVersionLeavesNoteUntouched(t *testing.T) {
	factory := newFakeFactory()
	svc := newTestNoteService(factory, newStubSummarizer())

	created, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
		Title:   "Note-1",
		Content: "content",
	})
	require.NoError(t, err)

	_, err = svc.Rollback(context.Background(), &dto.RollbackNoteRequest{
		Id:      created.Id,
		Version: 99,
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.Len(t, factory.store.notes, 1)
	assert.Equal(t, "content", factory.store.notes[0].Content)
	assert.Equal(t, 1, factory.store.notes[0].Version)
	assert.Len(t, factory.store.histories, 1)
}

func TestDeleteCascadesHistory(t *testing.T) {
	factory := newFakeFactory()
	svc := newTestNoteService(factory, newStubSummarizer())

	created, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
		Title:   "Note-1",
		Content: "v1",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), &dto.UpdateNoteRequest{
		Id:      created.Id,
		Content: "v2",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.Id))

	assert.Empty(t, factory.store.notes)
	assert.Empty(t, factory.store.histories)

	histories, err := svc.History(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Empty(t, histories)
}

func TestDeleteUnknownIdReportsSuccess(t *testing.T) {
	factory := newFakeFactory()
	svc := newTestNoteService(factory, newStubSummarizer())

	assert.NoError(t, svc.Delete(context.Background(), uuid.New()))
}

func TestShowReturnsNoteWithOrderedHistory(t *testing.T) {
	factory := newFakeFactory()
	svc := newTestNoteService(factory, newStubSummarizer())

	created, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
		Title:   "Note-1",
		Content: "v1",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), &dto.UpdateNoteRequest{Id: created.Id, Content: "v2"})
	require.NoError(t, err)

	res, err := svc.Show(context.Background(), created.Id)
	require.NoError(t, err)

	assert.Equal(t, "v2", res.Content)
	assert.Equal(t, 2, res.Version)
	require.Len(t, res.History, 2)
	assert.Equal(t, 1, res.History[0].Version)
	assert.Equal(t, "v1", res.History[0].Content)
	assert.Equal(t, 2, res.History[1].Version)
	assert.Equal(t, "v2", res.History[1].Content)
}

func TestShowUnknownNoteReturnsNotFound(t *testing.T) {
	factory := newFakeFactory()
	svc := newTestNoteService(factory, newStubSummarizer())

	_, err := svc.Show(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListIsolatesSummarizerFailures(t *testing.T) {
	factory := newFakeFactory()
	sum := newStubSummarizer()
	sum.failFor["second"] = true
	svc := newTestNoteService(factory, sum)

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
			Title:   content,
			Content: content,
		})
		require.NoError(t, err)
	}

	res, err := svc.List(context.Background(), &dto.ListNotesQuery{Page: 1, Size: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.CountItems)
	require.Len(t, res.Notes, 3)
	assert.Equal(t, "Summary: first", res.Notes[0].Content)
	assert.Equal(t, "Summarization failed: model unavailable", res.Notes[1].Content)
	assert.Equal(t, "Summary: third", res.Notes[2].Content)
}

func TestListCachesSummariesByNoteVersion(t *testing.T) {
	factory := newFakeFactory()
	sum := newStubSummarizer()
	svc := newTestNoteService(factory, sum)

	created, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
		Title:   "Note-1",
		Content: "v1",
	})
	require.NoError(t, err)

	query := &dto.ListNotesQuery{Page: 1, Size: 10}

	_, err = svc.List(context.Background(), query)
	require.NoError(t, err)
	_, err = svc.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.callCount(), "second page fetch should hit the cache")

	// A new version invalidates the cached summary
	_, err = svc.Update(context.Background(), &dto.UpdateNoteRequest{Id: created.Id, Content: "v2"})
	require.NoError(t, err)

	_, err = svc.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.callCount())
}

func TestListPaginatesInRetrievalOrder(t *testing.T) {
	factory := newFakeFactory()
	svc := newTestNoteService(factory, newStubSummarizer())

	for _, content := range []string{"a", "b", "c", "d", "e"} {
		_, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
			Title:   content,
			Content: content,
		})
		require.NoError(t, err)
	}

	res, err := svc.List(context.Background(), &dto.ListNotesQuery{Page: 2, Size: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(5), res.CountItems)
	require.Len(t, res.Notes, 2)
	assert.Equal(t, "c", res.Notes[0].Title)
	assert.Equal(t, "d", res.Notes[1].Title)
}
