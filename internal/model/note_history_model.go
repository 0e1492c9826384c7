package model

import (
	"time"

	"github.com/google/uuid"
)

type NoteHistory struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text"`
	Version   int       `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoCreateTime"`
}

func (NoteHistory) TableName() string {
	return "note_histories"
}
