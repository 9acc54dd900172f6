package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutSession is one dated training session. Deleting a session cascades
// its logged sets; record entries are left untouched.
type WorkoutSession struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Date       time.Time `gorm:"not null;index" json:"date"`
	Notes      *string   `gorm:"type:text" json:"notes,omitempty"`
	ShareToken *string   `gorm:"size:64;uniqueIndex" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	User       User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
