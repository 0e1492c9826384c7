package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoteHistory is an immutable snapshot of a note's content at one version.
type NoteHistory struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	NoteId    uuid.UUID `gorm:"type:uuid;index"`
	Content   string
	Version   int
	UpdatedAt time.Time
}
