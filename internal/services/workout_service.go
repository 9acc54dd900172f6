package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/atasoydev/liftledger/internal/models"
	"github.com/atasoydev/liftledger/internal/records"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("workout session not found")
	ErrSetNotFound     = errors.New("logged set not found")
)

// WorkoutService owns workout sessions and set ingestion. LogSet is the
// gateway into the record ledger: validation, evaluation, ledger advances
// and set persistence run as one all-or-nothing unit of work.
type WorkoutService struct {
	db     *gorm.DB
	ledger *records.Ledger
}

func NewWorkoutService(db *gorm.DB, ledger *records.Ledger) *WorkoutService {
	return &WorkoutService{db: db, ledger: ledger}
}

func (s *WorkoutService) CreateSession(userID uuid.UUID, date time.Time, notes *string) (*models.WorkoutSession, error) {
	session := models.WorkoutSession{
		ID:     uuid.New(),
		UserID: userID,
		Date:   date,
		Notes:  notes,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &session, nil
}

func (s *WorkoutService) GetSession(userID, sessionID uuid.UUID) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	return &session, nil
}

func (s *WorkoutService) ListSessions(userID uuid.UUID, limit, offset int) ([]models.WorkoutSession, int64, error) {
	var sessions []models.WorkoutSession
	var total int64

	s.db.Model(&models.WorkoutSession{}).Where("user_id = ?", userID).Count(&total)

	err := s.db.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&sessions).Error

	return sessions, total, err
}

func (s *WorkoutService) UpdateSession(userID, sessionID uuid.UUID, date *time.Time, notes *string) error {
	updates := map[string]interface{}{}
	if date != nil {
		updates["date"] = *date
	}
	if notes != nil {
		updates["notes"] = *notes
	}
	if len(updates) == 0 {
		return nil
	}

	result := s.db.Model(&models.WorkoutSession{}).
		Where("id = ? AND user_id = ?", sessionID, userID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteSession cascades the session's logged sets. Record entries are an
// advance-only summary, not a view over live sets, so they are left as-is.
func (s *WorkoutService) DeleteSession(userID, sessionID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", sessionID, userID).Delete(&models.WorkoutSession{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete session: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrSessionNotFound
		}
		if err := tx.Where("session_id = ?", sessionID).Delete(&models.LoggedSet{}).Error; err != nil {
			return fmt.Errorf("failed to delete logged sets: %w", err)
		}
		return nil
	})
}

// LogSet validates and admits one set. It resolves the owning user from the
// session, evaluates the record candidates, advances the ledger for each in
// the fixed record-type order and persists the set with one PR flag per
// advanced type. Everything after validation runs in a single transaction;
// a failure anywhere rolls the whole operation back.
//
// A setNumber below 1 is auto-assigned as the next set number for the
// (session, exercise) pair.
func (s *WorkoutService) LogSet(userID, sessionID, exerciseID uuid.UUID, setNumber, reps int, weight float64, rpe *int) (*models.LoggedSet, error) {
	if reps < 0 {
		return nil, fmt.Errorf("%w: reps must be zero or positive", ErrValidation)
	}
	if weight < 0 {
		return nil, fmt.Errorf("%w: weight must be zero or positive", ErrValidation)
	}
	if rpe != nil && (*rpe < 1 || *rpe > 10) {
		return nil, fmt.Errorf("%w: rpe must be between 1 and 10", ErrValidation)
	}

	var session models.WorkoutSession
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}

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

	set := models.LoggedSet{
		ID:         uuid.New(),
		SessionID:  sessionID,
		ExerciseID: exerciseID,
		SetNumber:  setNumber,
		Reps:       reps,
		Weight:     weight,
		RPE:        rpe,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if set.SetNumber < 1 {
			next, err := nextSetNumber(tx, sessionID, exerciseID)
			if err != nil {
				return err
			}
			set.SetNumber = next
		}

		now := time.Now().UTC()
		for _, cand := range records.Evaluate(reps, weight) {
			advanced, _, err := s.ledger.TryAdvance(tx, userID, exerciseID, cand.Type, cand.Value, now)
			if err != nil {
				return err
			}
			if !advanced {
				continue
			}
			switch cand.Type {
			case records.MaxWeight:
				set.PRMaxWeight = true
			case records.MaxReps:
				set.PRMaxReps = true
			case records.EstimatedOneRepMax:
				set.PREstOneRepMax = true
			case records.MaxVolume:
				set.PRMaxVolume = true
			}
		}

		if err := tx.Create(&set).Error; err != nil {
			return fmt.Errorf("failed to create logged set: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// DeleteSet removes one logged set. The ledger is never rolled back: a
// record stays the best-known value even after its originating set is gone.
func (s *WorkoutService) DeleteSet(userID, sessionID, setID uuid.UUID) error {
	if _, err := s.GetSession(userID, sessionID); err != nil {
		return err
	}
	result := s.db.Where("id = ? AND session_id = ?", setID, sessionID).Delete(&models.LoggedSet{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete logged set: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSetNotFound
	}
	return nil
}

// SessionSets returns a session's sets in logging order.
func (s *WorkoutService) SessionSets(userID, sessionID uuid.UUID) ([]models.LoggedSet, error) {
	if _, err := s.GetSession(userID, sessionID); err != nil {
		return nil, err
	}
	var sets []models.LoggedSet
	err := s.db.Where("session_id = ?", sessionID).
		Order("created_at ASC, set_number ASC").
		Find(&sets).Error
	return sets, err
}

// ShareSession issues (or returns the existing) share token for a session.
func (s *WorkoutService) ShareSession(userID, sessionID uuid.UUID) (string, error) {
	session, err := s.GetSession(userID, sessionID)
	if err != nil {
		return "", err
	}
	if session.ShareToken != nil {
		return *session.ShareToken, nil
	}

	rawBytes := make([]byte, 24)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate share token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(rawBytes)

	if err := s.db.Model(session).Update("share_token", token).Error; err != nil {
		return "", fmt.Errorf("failed to store share token: %w", err)
	}
	return token, nil
}

func (s *WorkoutService) RevokeShare(userID, sessionID uuid.UUID) error {
	result := s.db.Model(&models.WorkoutSession{}).
		Where("id = ? AND user_id = ?", sessionID, userID).
		Update("share_token", nil)
	if result.Error != nil {
		return fmt.Errorf("failed to revoke share token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// SharedSession resolves a public share token to the session and its sets.
func (s *WorkoutService) SharedSession(token string) (*models.WorkoutSession, []models.LoggedSet, error) {
	var session models.WorkoutSession
	if err := s.db.Where("share_token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, fmt.Errorf("failed to resolve share token: %w", err)
	}

	var sets []models.LoggedSet
	err := s.db.Where("session_id = ?", session.ID).
		Order("created_at ASC, set_number ASC").
		Find(&sets).Error
	if err != nil {
		return nil, nil, err
	}
	return &session, sets, nil
}

func nextSetNumber(tx *gorm.DB, sessionID, exerciseID uuid.UUID) (int, error) {
	var max int
	err := tx.Model(&models.LoggedSet{}).
		Where("session_id = ? AND exercise_id = ?", sessionID, exerciseID).
		Select("COALESCE(MAX(set_number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute next set number: %w", err)
	}
	return max + 1, nil
}
