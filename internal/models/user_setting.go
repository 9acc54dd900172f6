package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserSetting stores per-user display preferences as a free-form JSON blob
// (weight unit label, default RPE visibility, theme and the like).
type UserSetting struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Preferences datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"preferences"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	User        User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
