package services

import (
	"log/slog"

	"github.com/atasoydev/liftledger/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type defaultExercise struct {
	Name        string
	Category    string
	MuscleGroup string
}

var defaultExercises = []defaultExercise{
	{"Bench Press", "chest", "pectorals"},
	{"Incline Dumbbell Press", "chest", "pectorals"},
	{"Pull Up", "back", "lats"},
	{"Barbell Row", "back", "lats"},
	{"Deadlift", "back", "erectors"},
	{"Squat", "legs", "quadriceps"},
	{"Romanian Deadlift", "legs", "hamstrings"},
	{"Leg Press", "legs", "quadriceps"},
	{"Overhead Press", "shoulders", "deltoids"},
	{"Lateral Raise", "shoulders", "deltoids"},
	{"Barbell Curl", "arms", "biceps"},
	{"Tricep Pushdown", "arms", "triceps"},
	{"Plank", "core", "abdominals"},
	{"Hanging Leg Raise", "core", "abdominals"},
}

// SeedDefaultExercises inserts the shared default exercise library, skipping
// names that already exist. Safe to run on every startup.
func SeedDefaultExercises(db *gorm.DB) error {
	for _, d := range defaultExercises {
		var count int64
		if err := db.Model(&models.Exercise{}).
			Where("name = ? AND is_default = ?", d.Name, true).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		exercise := models.Exercise{
			ID:          uuid.New(),
			Name:        d.Name,
			Category:    d.Category,
			MuscleGroup: d.MuscleGroup,
			IsDefault:   true,
		}
		if err := db.Create(&exercise).Error; err != nil {
			return err
		}
	}
	slog.Info("default exercises seeded", "count", len(defaultExercises))
	return nil
}
