package models

import (
	"time"

	"github.com/google/uuid"
)

// RecordEntry holds the current best value for one
// (user, exercise, record type) triple. The composite unique index makes
// "exactly one entry per triple" a hard constraint rather than a convention.
// Entries only ever advance; they are removed solely by user or exercise
// deletion.
type RecordEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_record_entries_triple" json:"user_id"`
	ExerciseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_record_entries_triple" json:"exercise_id"`
	RecordType string    `gorm:"size:30;not null;uniqueIndex:idx_record_entries_triple" json:"record_type"`
	BestValue  float64   `gorm:"not null" json:"best_value"`
	AchievedAt time.Time `gorm:"not null" json:"achieved_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	User       User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Exercise   Exercise  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
