package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity represents one audit entry for a mutating project action.
// Entries are append-only; nothing in the system updates or deletes them.
type Activity struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID `json:"user" gorm:"type:char(36);not null;index"`
	Action      string    `json:"action" gorm:"size:512;not null"`
	Title       string    `json:"title" gorm:"size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Timestamp   time.Time `json:"timestamp" gorm:"not null;index"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID and timestamp before creating the record.
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}
	return nil
}
