package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecordResponse struct {
	ExerciseID   uuid.UUID `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name,omitempty"`
	RecordType   string    `json:"record_type"`
	BestValue    float64   `json:"best_value"`
	AchievedAt   time.Time `json:"achieved_at"`
}

type ExerciseStatsResponse struct {
	Records []RecordResponse `json:"records"`
	History []SetResponse    `json:"history"`
}

type SessionVolumeResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Volume    float64   `json:"volume"`
}
