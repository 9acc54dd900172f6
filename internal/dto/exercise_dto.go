package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateExerciseRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	MuscleGroup string  `json:"muscle_group"`
	Equipment   *string `json:"equipment,omitempty"`
}

type UpdateExerciseRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	MuscleGroup string  `json:"muscle_group"`
	Equipment   *string `json:"equipment,omitempty"`
}

type ExerciseResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	MuscleGroup string    `json:"muscle_group"`
	Equipment   *string   `json:"equipment,omitempty"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
}
