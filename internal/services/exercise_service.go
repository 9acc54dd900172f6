package services

import (
	"errors"
	"fmt"

	"github.com/atasoydev/liftledger/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

// ListVisible returns the shared defaults plus the user's custom exercises.
func (s *ExerciseService) ListVisible(userID uuid.UUID) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := s.db.Where("is_default = ? OR user_id = ?", true, userID).
		Order("category, name").
		Find(&exercises).Error
	return exercises, err
}

func (s *ExerciseService) Get(userID, exerciseID uuid.UUID) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := s.db.First(&exercise, "id = ?", exerciseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("failed to load exercise: %w", err)
	}
	if !exercise.VisibleTo(userID) {
		return nil, ErrExerciseNotFound
	}
	return &exercise, nil
}

func (s *ExerciseService) Create(userID uuid.UUID, name, category, muscleGroup string, equipment *string) (*models.Exercise, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !validCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}

	exercise := models.Exercise{
		ID:          uuid.New(),
		Name:        name,
		Category:    category,
		MuscleGroup: muscleGroup,
		Equipment:   equipment,
		IsDefault:   false,
		UserID:      &userID,
	}
	if err := s.db.Create(&exercise).Error; err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}
	return &exercise, nil
}

// Update edits metadata on the user's own custom exercise. Logged sets keep
// referencing the same exercise id, so edits never invalidate history.
func (s *ExerciseService) Update(userID, exerciseID uuid.UUID, name, category, muscleGroup string, equipment *string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !validCategory(category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}

	result := s.db.Model(&models.Exercise{}).
		Where("id = ? AND user_id = ?", exerciseID, userID).
		Updates(map[string]interface{}{
			"name":         name,
			"category":     category,
			"muscle_group": muscleGroup,
			"equipment":    equipment,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update exercise: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// Delete removes an exercise and its record entries, but only when no
// logged set references it. Custom exercises may be deleted by their owner;
// defaults only by an admin.
func (s *ExerciseService) Delete(userID uuid.UUID, role string, exerciseID uuid.UUID) error {
	var exercise models.Exercise
	if err := s.db.First(&exercise, "id = ?", exerciseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExerciseNotFound
		}
		return fmt.Errorf("failed to load exercise: %w", err)
	}

	ownsCustom := exercise.UserID != nil && *exercise.UserID == userID
	if !ownsCustom && role != models.RoleAdmin {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.LoggedSet{}).Where("exercise_id = ?", exerciseID).Count(&refs).Error; err != nil {
			return fmt.Errorf("failed to count set references: %w", err)
		}
		if refs > 0 {
			return fmt.Errorf("%w: %d logged sets reference this exercise", ErrRestricted, refs)
		}
		if err := tx.Where("exercise_id = ?", exerciseID).Delete(&models.RecordEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete record entries: %w", err)
		}
		return tx.Delete(&exercise).Error
	})
}

func validCategory(category string) bool {
	for _, c := range models.Categories {
		if c == category {
			return true
		}
	}
	return false
}
