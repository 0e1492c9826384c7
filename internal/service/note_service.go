package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"notesai-be/internal/apperror"
	"notesai-be/internal/dto"
	"notesai-be/internal/entity"
	"notesai-be/internal/repository/specification"
	"notesai-be/internal/repository/unitofwork"
	"notesai-be/pkg/events"
	"notesai-be/pkg/summarizer"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
)

type INoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	List(ctx context.Context, query *dto.ListNotesQuery) (*dto.ListNotesResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.DetailNoteResponse, error)
	History(ctx context.Context, id uuid.UUID) ([]*dto.NoteHistoryResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Rollback(ctx context.Context, req *dto.RollbackNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	summarizer       summarizer.Summarizer
	summaryCache     *cache.Cache
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	noteSummarizer summarizer.Summarizer,
	summaryCacheTTL time.Duration,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		summarizer:       noteSummarizer,
		summaryCache:     cache.New(summaryCacheTTL, 2*summaryCacheTTL),
	}
}

// Create inserts the note and its version-1 snapshot in one transaction.
// A note must never become visible without at least one history row.
func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.StoreFailure("begin create note", err)
	}
	defer uow.Rollback()

	note := entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Version:   1,
		CreatedAt: time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, apperror.CreationFailed("note", err)
	}

	history := entity.NoteHistory{
		Id:        uuid.New(),
		NoteId:    note.Id,
		Content:   note.Content,
		Version:   note.Version,
		UpdatedAt: time.Now(),
	}

	if err := uow.NoteHistoryRepository().Create(ctx, &history); err != nil {
		return nil, apperror.CreationFailed("note history", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.CreationFailed("note", err)
	}

	c.publishEvent(ctx, events.NoteCreated, note.Id, note.Version)

	return toNoteResponse(&note), nil
}

func (c *noteService) List(ctx context.Context, query *dto.ListNotesQuery) (*dto.ListNotesResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	offset := (query.Page - 1) * query.Size
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OrderByCreatedAtAsc{},
		specification.Paginate{Limit: query.Size, Offset: offset},
	)
	if err != nil {
		return nil, apperror.StoreFailure("list notes", err)
	}

	count, err := uow.NoteRepository().Count(ctx)
	if err != nil {
		return nil, apperror.StoreFailure("count notes", err)
	}

	// Summaries are fetched concurrently, one goroutine per note. A slow or
	// failed call only affects its own slot in the page.
	responses := make([]*dto.NoteResponse, len(notes))
	var wg sync.WaitGroup
	for i, note := range notes {
		wg.Add(1)
		go func(i int, note *entity.Note) {
			defer wg.Done()
			responses[i] = &dto.NoteResponse{
				Id:      note.Id,
				Title:   note.Title,
				Content: c.summarizeNote(ctx, note),
				Version: note.Version,
			}
		}(i, note)
	}
	wg.Wait()

	return &dto.ListNotesResponse{
		Notes:      responses,
		CountItems: count,
	}, nil
}

// summarizeNote never propagates a summarizer failure; it degrades to a
// placeholder so one bad note cannot fail the page.
func (c *noteService) summarizeNote(ctx context.Context, note *entity.Note) string {
	cacheKey := fmt.Sprintf("%s:%d", note.Id, note.Version)
	if cached, ok := c.summaryCache.Get(cacheKey); ok {
		return cached.(string)
	}

	summary, err := c.summarizer.Summarize(ctx, note.Content)
	if err != nil {
		return fmt.Sprintf("Summarization failed: %s", err)
	}

	c.summaryCache.Set(cacheKey, summary, cache.DefaultExpiration)
	return summary
}

func (c *noteService) Show(ctx context.Context, id uuid.UUID) (*dto.DetailNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.StoreFailure("find note", err)
	}
	if note == nil {
		return nil, apperror.NotFound("note")
	}

	histories, err := uow.NoteHistoryRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: id},
		specification.OrderByVersionAsc{},
	)
	if err != nil {
		return nil, apperror.StoreFailure("find note history", err)
	}

	return &dto.DetailNoteResponse{
		Id:      note.Id,
		Title:   note.Title,
		Content: note.Content,
		Version: note.Version,
		History: toHistoryResponses(histories),
	}, nil
}

func (c *noteService) History(ctx context.Context, id uuid.UUID) ([]*dto.NoteHistoryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	histories, err := uow.NoteHistoryRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: id},
		specification.OrderByVersionAsc{},
	)
	if err != nil {
		return nil, apperror.StoreFailure("find note history", err)
	}

	return toHistoryResponses(histories), nil
}

// Update bumps the version server-side and appends the matching snapshot in
// the same transaction. The note's visible version never outruns its history.
func (c *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.StoreFailure("begin update note", err)
	}
	defer uow.Rollback()

	note, err := uow.NoteRepository().BumpVersion(ctx, req.Id, req.Content)
	if err != nil {
		return nil, apperror.StoreFailure("update note", err)
	}
	if note == nil {
		return nil, apperror.NotFound("note")
	}

	history := entity.NoteHistory{
		Id:        uuid.New(),
		NoteId:    note.Id,
		Content:   note.Content,
		Version:   note.Version,
		UpdatedAt: time.Now(),
	}

	if err := uow.NoteHistoryRepository().Create(ctx, &history); err != nil {
		return nil, apperror.StoreFailure("append note history", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.StoreFailure("commit update note", err)
	}

	c.publishEvent(ctx, events.NoteUpdated, note.Id, note.Version)

	return toNoteResponse(note), nil
}

// Rollback restores historical content as a new version. The restore is
// forward-only: version numbers never regress, so a later update can never
// collide with an existing snapshot.
func (c *noteService) Rollback(ctx context.Context, req *dto.RollbackNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	target, err := uow.NoteHistoryRepository().FindOne(ctx,
		specification.ByNoteID{NoteID: req.Id},
		specification.ByVersion{Version: req.Version},
	)
	if err != nil {
		return nil, apperror.StoreFailure("find note version", err)
	}
	if target == nil {
		return nil, apperror.NotFound("note version")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.StoreFailure("begin rollback note", err)
	}
	defer uow.Rollback()

	note, err := uow.NoteRepository().BumpVersion(ctx, req.Id, target.Content)
	if err != nil {
		return nil, apperror.StoreFailure("rollback note", err)
	}
	if note == nil {
		return nil, apperror.NotFound("note")
	}

	history := entity.NoteHistory{
		Id:        uuid.New(),
		NoteId:    note.Id,
		Content:   note.Content,
		Version:   note.Version,
		UpdatedAt: time.Now(),
	}

	if err := uow.NoteHistoryRepository().Create(ctx, &history); err != nil {
		return nil, apperror.StoreFailure("append note history", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.StoreFailure("commit rollback note", err)
	}

	c.publishEvent(ctx, events.NoteRolledBack, note.Id, note.Version)

	return toNoteResponse(note), nil
}

// Delete removes the note; its history rows go with it through the store
// cascade. Deleting an unknown id still reports success.
func (c *noteService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return apperror.StoreFailure("delete note", err)
	}

	c.publishEvent(ctx, events.NoteDeleted, id, 0)

	return nil
}

func (c *noteService) publishEvent(ctx context.Context, eventType string, noteId uuid.UUID, version int) {
	if c.publisherService == nil {
		return
	}

	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"note_id": noteId,
			"version": version,
		},
		OccurredAt: time.Now(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}

	// Auxiliary: the audit trail must not fail the request.
	_ = c.publisherService.Publish(ctx, payload)
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:      note.Id,
		Title:   note.Title,
		Content: note.Content,
		Version: note.Version,
	}
}

func toHistoryResponses(histories []*entity.NoteHistory) []*dto.NoteHistoryResponse {
	responses := make([]*dto.NoteHistoryResponse, len(histories))
	for i, h := range histories {
		responses[i] = &dto.NoteHistoryResponse{
			Id:        h.Id,
			Version:   h.Version,
			Content:   h.Content,
			UpdatedAt: h.UpdatedAt,
		}
	}
	return responses
}
