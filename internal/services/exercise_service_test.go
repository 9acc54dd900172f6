package services

import (
	"testing"
	"time"

	"github.com/atasoydev/liftledger/internal/models"
	"github.com/atasoydev/liftledger/internal/records"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVisibleExercises(t *testing.T) {
	db := newTestDB(t)
	svc := NewExerciseService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	createDefaultExercise(t, db, "Bench Press")
	createCustomExercise(t, db, alice.ID, "Cable Fly Variant")
	createCustomExercise(t, db, bob.ID, "Bob Special")

	visible, err := svc.ListVisible(alice.ID)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	for _, e := range visible {
		assert.True(t, e.VisibleTo(alice.ID))
	}
}

func TestGetExerciseVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := NewExerciseService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	private := createCustomExercise(t, db, bob.ID, "Bob Special")

	_, err := svc.Get(alice.ID, private.ID)
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	got, err := svc.Get(bob.ID, private.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob Special", got.Name)

	_, err = svc.Get(alice.ID, uuid.New())
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestCreateExerciseValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewExerciseService(db)
	alice := createTestUser(t, db, "alice")

	_, err := svc.Create(alice.ID, "", "chest", "pectorals", nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(alice.ID, "Wrist Curl", "forearms", "forearms", nil)
	assert.ErrorIs(t, err, ErrValidation)

	equipment := "dumbbell"
	created, err := svc.Create(alice.ID, "Hammer Curl", "arms", "biceps", &equipment)
	require.NoError(t, err)
	assert.False(t, created.IsDefault)
	require.NotNil(t, created.UserID)
	assert.Equal(t, alice.ID, *created.UserID)
}

func TestUpdateExerciseOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewExerciseService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	custom := createCustomExercise(t, db, alice.ID, "Cable Fly Variant")

	err := svc.Update(bob.ID, custom.ID, "Renamed", "chest", "pectorals", nil)
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	require.NoError(t, svc.Update(alice.ID, custom.ID, "Renamed", "chest", "pectorals", nil))

	got, err := svc.Get(alice.ID, custom.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, "chest", got.Category)
}

func TestDeleteExercisePermissions(t *testing.T) {
	db := newTestDB(t)
	svc := NewExerciseService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	custom := createCustomExercise(t, db, alice.ID, "Cable Fly Variant")
	shared := createDefaultExercise(t, db, "Bench Press")

	// Non-owners and non-admins cannot delete.
	assert.ErrorIs(t, svc.Delete(bob.ID, models.RoleUser, custom.ID), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(alice.ID, models.RoleUser, shared.ID), ErrForbidden)

	// Owner deletes their custom exercise, admin deletes a default.
	require.NoError(t, svc.Delete(alice.ID, models.RoleUser, custom.ID))
	require.NoError(t, svc.Delete(bob.ID, models.RoleAdmin, shared.ID))

	assert.ErrorIs(t, svc.Delete(alice.ID, models.RoleAdmin, custom.ID), ErrExerciseNotFound)
}

func TestDeleteExerciseBlockedByLoggedSets(t *testing.T) {
	db := newTestDB(t)
	svc := NewExerciseService(db)
	workouts := NewWorkoutService(db, records.NewLedger())
	alice := createTestUser(t, db, "alice")
	custom := createCustomExercise(t, db, alice.ID, "Cable Fly Variant")
	session := createTestSession(t, db, alice.ID, time.Now().UTC())

	_, err := workouts.LogSet(alice.ID, session.ID, custom.ID, 1, 10, 20, nil)
	require.NoError(t, err)

	err = svc.Delete(alice.ID, models.RoleUser, custom.ID)
	assert.ErrorIs(t, err, ErrRestricted)

	// Records were not touched by the failed delete.
	var recordCount int64
	require.NoError(t, db.Model(&models.RecordEntry{}).
		Where("exercise_id = ?", custom.ID).Count(&recordCount).Error)
	assert.Equal(t, int64(4), recordCount)

	// Once the referencing set is gone the delete succeeds and takes the
	// ledger entries with it.
	require.NoError(t, db.Where("exercise_id = ?", custom.ID).Delete(&models.LoggedSet{}).Error)
	require.NoError(t, svc.Delete(alice.ID, models.RoleUser, custom.ID))

	require.NoError(t, db.Model(&models.RecordEntry{}).
		Where("exercise_id = ?", custom.ID).Count(&recordCount).Error)
	assert.Equal(t, int64(0), recordCount)
}

func TestSeedDefaultExercisesIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedDefaultExercises(db))
	var first int64
	require.NoError(t, db.Model(&models.Exercise{}).Where("is_default = ?", true).Count(&first).Error)
	assert.Greater(t, first, int64(0))

	require.NoError(t, SeedDefaultExercises(db))
	var second int64
	require.NoError(t, db.Model(&models.Exercise{}).Where("is_default = ?", true).Count(&second).Error)
	assert.Equal(t, first, second)
}
