package models

import (
	"time"

	"github.com/google/uuid"
)

// LoggedSet is one set within a workout session. The PR flags record which
// record types this set newly achieved at the moment it was logged; they are
// fixed at creation and never retroactively altered.
type LoggedSet struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	ExerciseID uuid.UUID `gorm:"type:uuid;not null;index" json:"exercise_id"`
	SetNumber  int       `gorm:"not null" json:"set_number"`
	Reps       int       `gorm:"not null" json:"reps"`
	Weight     float64   `gorm:"not null" json:"weight"`
	RPE        *int      `json:"rpe,omitempty"`

	PRMaxWeight    bool `gorm:"default:false" json:"pr_max_weight"`
	PRMaxReps      bool `gorm:"default:false" json:"pr_max_reps"`
	PREstOneRepMax bool `gorm:"default:false" json:"pr_estimated_one_rep_max"`
	PRMaxVolume    bool `gorm:"default:false" json:"pr_max_volume"`

	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	Session   WorkoutSession `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Exercise  Exercise       `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

// HasPR reports whether the set achieved at least one record.
func (s *LoggedSet) HasPR() bool {
	return s.PRMaxWeight || s.PRMaxReps || s.PREstOneRepMax || s.PRMaxVolume
}
