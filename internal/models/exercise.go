package models

import (
	"time"

	"github.com/google/uuid"
)

// Categories is the fixed exercise category set.
var Categories = []string{"chest", "back", "legs", "shoulders", "arms", "core"}

// Exercise is a named movement. Default exercises (IsDefault, UserID nil)
// are visible to everyone; custom exercises are visible only to their owner.
// An exercise cannot be deleted while any logged set references it.
type Exercise struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Category    string     `gorm:"size:50;not null;index" json:"category"`
	MuscleGroup string     `gorm:"size:50" json:"muscle_group"`
	Equipment   *string    `gorm:"size:100" json:"equipment,omitempty"`
	IsDefault   bool       `gorm:"default:false" json:"is_default"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// VisibleTo reports whether the exercise can be used by the given user.
func (e *Exercise) VisibleTo(userID uuid.UUID) bool {
	if e.IsDefault {
		return true
	}
	return e.UserID != nil && *e.UserID == userID
}
