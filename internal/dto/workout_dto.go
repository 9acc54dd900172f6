package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Notes *string `json:"notes,omitempty"`
}

type UpdateSessionRequest struct {
	Date  *string `json:"date,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

type SessionResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Notes     *string   `json:"notes,omitempty"`
	Shared    bool      `json:"shared"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

type LogSetRequest struct {
	ExerciseID uuid.UUID `json:"exercise_id"`
	SetNumber  int       `json:"set_number,omitempty"` // omitted: auto-assigned
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
	RPE        *int      `json:"rpe,omitempty"`
}

type SetResponse struct {
	ID         uuid.UUID       `json:"id"`
	SessionID  uuid.UUID       `json:"session_id"`
	ExerciseID uuid.UUID       `json:"exercise_id"`
	SetNumber  int             `json:"set_number"`
	Reps       int             `json:"reps"`
	Weight     float64         `json:"weight"`
	RPE        *int            `json:"rpe,omitempty"`
	PRFlags    map[string]bool `json:"pr_flags"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ShareResponse struct {
	ShareURL string `json:"share_url"`
}

type SharedSessionResponse struct {
	Date  string        `json:"date"`
	Notes *string       `json:"notes,omitempty"`
	Sets  []SetResponse `json:"sets"`
}
