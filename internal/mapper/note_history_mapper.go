package mapper

import (
	"notesai-be/internal/entity"
	"notesai-be/internal/model"
)

type NoteHistoryMapper struct{}

func NewNoteHistoryMapper() *NoteHistoryMapper {
	return &NoteHistoryMapper{}
}

func (m *NoteHistoryMapper) ToEntity(h *model.NoteHistory) *entity.NoteHistory {
	if h == nil {
		return nil
	}

	return &entity.NoteHistory{
		Id:        h.Id,
		NoteId:    h.NoteId,
		Content:   h.Content,
		Version:   h.Version,
		UpdatedAt: h.UpdatedAt,
	}
}

func (m *NoteHistoryMapper) ToModel(h *entity.NoteHistory) *model.NoteHistory {
	if h == nil {
		return nil
	}

	return &model.NoteHistory{
		Id:        h.Id,
		NoteId:    h.NoteId,
		Content:   h.Content,
		Version:   h.Version,
		UpdatedAt: h.UpdatedAt,
	}
}

func (m *NoteHistoryMapper) ToEntities(histories []*model.NoteHistory) []*entity.NoteHistory {
	entities := make([]*entity.NoteHistory, len(histories))
	for i, h := range histories {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
