package services

import (
	"fmt"
	"time"

	"github.com/atasoydev/liftledger/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatsService is the read-only query surface over logged sets and record
// entries. It shares storage with ingestion but never writes.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// BestRecords returns every ledger entry for the user, most recent first,
// with the exercise preloaded for display.
func (s *StatsService) BestRecords(userID uuid.UUID) ([]models.RecordEntry, error) {
	var entries []models.RecordEntry
	err := s.db.Preload("Exercise").
		Where("user_id = ?", userID).
		Order("achieved_at DESC").
		Find(&entries).Error
	return entries, err
}

// ExerciseRecords returns the ledger entries for one (user, exercise) pair.
func (s *StatsService) ExerciseRecords(userID, exerciseID uuid.UUID) ([]models.RecordEntry, error) {
	var entries []models.RecordEntry
	err := s.db.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).
		Order("record_type").
		Find(&entries).Error
	return entries, err
}

// ExerciseHistory returns the user's sets for an exercise in chronological
// order, each carrying the PR flags exactly as persisted at logging time.
func (s *StatsService) ExerciseHistory(userID, exerciseID uuid.UUID, limit int) ([]models.LoggedSet, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	var sets []models.LoggedSet
	err := s.db.
		Joins("JOIN workout_sessions ON workout_sessions.id = logged_sets.session_id").
		Where("workout_sessions.user_id = ? AND logged_sets.exercise_id = ?", userID, exerciseID).
		Order("logged_sets.created_at ASC, logged_sets.set_number ASC").
		Limit(limit).
		Find(&sets).Error
	return sets, err
}

// SessionVolume computes the aggregate volume (sum of weight*reps) of one
// session.
func (s *StatsService) SessionVolume(userID, sessionID uuid.UUID) (float64, error) {
	var owned int64
	if err := s.db.Model(&models.WorkoutSession{}).
		Where("id = ? AND user_id = ?", sessionID, userID).
		Count(&owned).Error; err != nil {
		return 0, fmt.Errorf("failed to check session: %w", err)
	}
	if owned == 0 {
		return 0, ErrSessionNotFound
	}

	var volume *float64
	err := s.db.Model(&models.LoggedSet{}).
		Where("session_id = ?", sessionID).
		Select("SUM(weight * reps)").
		Scan(&volume).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum session volume: %w", err)
	}
	if volume == nil {
		return 0, nil
	}
	return *volume, nil
}

// Summary aggregates the dashboard numbers: session counts for the trailing
// week and month, total sessions, and volume lifted in the trailing week.
func (s *StatsService) Summary(userID uuid.UUID) (*Summary, error) {
	now := time.Now().UTC()
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)

	var summary Summary

	if err := s.db.Model(&models.WorkoutSession{}).
		Where("user_id = ? AND date >= ?", userID, weekAgo).
		Count(&summary.WorkoutsThisWeek).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.WorkoutSession{}).
		Where("user_id = ? AND date >= ?", userID, monthAgo).
		Count(&summary.WorkoutsThisMonth).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.WorkoutSession{}).
		Where("user_id = ?", userID).
		Count(&summary.TotalWorkouts).Error; err != nil {
		return nil, err
	}

	var volume *float64
	err := s.db.Model(&models.LoggedSet{}).
		Joins("JOIN workout_sessions ON workout_sessions.id = logged_sets.session_id").
		Where("workout_sessions.user_id = ? AND workout_sessions.date >= ?", userID, weekAgo).
		Select("SUM(logged_sets.weight * logged_sets.reps)").
		Scan(&volume).Error
	if err != nil {
		return nil, err
	}
	if volume != nil {
		summary.VolumeThisWeek = *volume
	}
	return &summary, nil
}

type Summary struct {
	WorkoutsThisWeek  int64   `json:"workouts_this_week"`
	WorkoutsThisMonth int64   `json:"workouts_this_month"`
	TotalWorkouts     int64   `json:"total_workouts"`
	VolumeThisWeek    float64 `json:"volume_this_week"`
}
