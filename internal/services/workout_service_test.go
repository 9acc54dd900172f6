package services

import (
	"testing"
	"time"

	"github.com/atasoydev/liftledger/internal/models"
	"github.com/atasoydev/liftledger/internal/records"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWorkoutService(t *testing.T) (*WorkoutService, *testFixture) {
	t.Helper()
	db := newTestDB(t)
	svc := NewWorkoutService(db, records.NewLedger())
	user := createTestUser(t, db, "lifter")
	exercise := createDefaultExercise(t, db, "Bench Press")
	session := createTestSession(t, db, user.ID, time.Now().UTC())
	return svc, &testFixture{db: db, user: user, exercise: exercise, session: session}
}

type testFixture struct {
	db       *gorm.DB
	user     *models.User
	exercise *models.Exercise
	session  *models.WorkoutSession
}

func TestLogSetFirstSetAchievesAllRecords(t *testing.T) {
	svc, fx := newWorkoutService(t)

	set, err := svc.LogSet(fx.user.ID, fx.session.ID, fx.exercise.ID, 1, 5, 100, nil)
	require.NoError(t, err)

	assert.True(t, set.PRMaxWeight)
	assert.True(t, set.PRMaxReps)
	assert.True(t, set.PREstOneRepMax)
	assert.True(t, set.PRMaxVolume)

	var entries []models.RecordEntry
	require.NoError(t, fx.db.Where("user_id = ? AND exercise_id = ?", fx.user.ID, fx.exercise.ID).
		Find(&entries).Error)
	require.Len(t, entries, 4)

	best := map[string]float64{}
	for _, e := range entries {
		best[e.RecordType] = e.BestValue
	}
	assert.Equal(t, 100.0, best["max_weight"])
	assert.Equal(t, 5.0, best["max_reps"])
	assert.InDelta(t, 116.6667, best["estimated_one_rep_max"], 0.001)
	assert.Equal(t, 500.0, best["max_volume"])
}

func TestLogSetRepeatedSetAchievesNothing(t *testing.T) {
	svc, fx := newWorkoutService(t)

	_, err := svc.LogSet(fx.user.ID, fx.session.ID, fx.exercise.ID, 1, 5, 100, nil)
	require.NoError(t, err)

	set, err := svc.LogSet(fx.user.ID, fx.session.ID, fx.exercise.ID, 2, 5, 100, nil)
	require.NoError(t, err)
	assert.False(t, set.HasPR())

	// Ledger values are unchanged.
	var entry models.RecordEntry
	require.NoError(t, fx.db.Where("user_id = ? AND exercise_id = ? AND record_type = ?",
		fx.user.ID, fx.exercise.ID, "max_weight").First(&entry).Error)
	assert.Equal(t, 100.0, entry.BestValue)
}

func TestLogSetPartialRecordAdvance(t *testing.T) {
	svc, fx := newWorkoutService(t)

	_, err := svc.LogSet(fx.user.ID, fx.session.ID, fx.exercise.ID, 1, 5, 100, nil)
	require.NoError(t, err)

	// 110x3: heavier bar and higher estimate, but fewer reps and less volume.
	set, err := svc.LogSet(fx.user.ID, fx.session.ID, fx.exercise.ID, 2, 3, 110, nil)
	require.NoError(t, err)

	assert.True(t, set.PRMaxWeight)
	assert.False(t, set.PRMaxReps)
	assert.True(t, set.PREstOneRepMax)
	assert.False(t, set.PRMaxVolume)

	var entry models.RecordEntry
	require.NoError(t, fx.db.Where("user_id = ? AND exercise_id = ? AND record_type = ?",
		fx.user.ID, fx.exercise.ID, "estimated_one_rep_max").First(&entry).Error)
	assert.InDelta(t, 121.0, entry.BestValue, 0.001)
}

func TestLogSetZeroRepsNeverAchieves(t *testing.T) {
	svc, fx := newWorkoutService(t)

	set, err := svc.LogSet(fx.user.ID, fx.session.ID, fx.exercise.ID, 1, 0, 140, nil)
	require.NoError(t, err)
	assert.False(t, set.HasPR())

	var count int64
	require.NoError(t, fx.db.Model(&models.RecordEntry{}).
		Where("user_id = ?", fx.user.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestLogSetRecordsPerExercise(t *testing.T) {
	svc, fx := newWorkoutService(t)
	squat := createDefaultExercise(t, fx.db, "Squat")

	_, err := svc.LogSet(fx.user.ID, fx.session.ID, fx.exercise.ID, 1, 5, 100, nil)
	require.NoError(t, err)

	// A lighter squat set is still a first for that exercise.
	set, err := svc.LogSet(fx.user.ID, fx.session.ID, squat.ID, 1, 5, 60, nil)
	require.NoError(t, err)
	assert.True(t, set.PRMaxWeight)
	assert.True(t, set.PRMaxVolume)

	var count int64
	require.NoError(t, fx.db.Model(&models.RecordEntry{}).
		Where("user_id = ?", fx.user.ID).Count(&count).Error)
	assert.Equal(t, int64(8), count)
}

func TestLogSetValidation(t *testing.T) {
	svc, fx := newWorkoutService(t)
	badRPE := 11

	cases := []struct {
		name   string
		reps   int
		weight float64
		rpe    *int
	}{
		{"negative reps", -1, 100, nil},
		{"negative weight", 5, -20, nil},
		{"rpe out of range", 5, 100, &badRPE},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.LogSet(fx.user.ID, fx.session.ID, fx.exercise.ID, 1, tc.reps, tc.weight, tc.rpe)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// Nothing was persisted by the rejected submissions.
	var count int64
	require.NoError(t, fx.db.Model(&models.LoggedSet{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestLogSetRejectsForeignSession(t *testing.T) {
	svc, fx := newWorkoutService(t)
	other := createTestUser(t, fx.db, "someone-else")

	_, err := svc.LogSet(other.ID, fx.session.ID, fx.exercise.ID, 1, 5, 100, nil)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestLogSetRejectsInvisibleExercise(t *testing.T) {
	svc, fx := newWorkoutService(t)
	other := createTestUser(t, fx.db, "someone-else")
	private := createCustomExercise(t, fx.db, other.ID, "Secret Row")

	_, err := svc.LogSet(fx.user.ID, fx.session.ID, private.ID, 1, 5, 100, nil)
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	_, err = svc.LogSet(fx.user.ID, fx.session.ID, uuid.New(), 1, 5, 100, nil)
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	_, err = svc.LogSet(fx.user.ID, uuid.New(), fx.exercise.ID, 1, 5, 100, nil)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestLogSetAutoAssignsSetNumber(t *testing.T) {
	svc, fx := newWorkoutService(t)

	first, err := svc.LogSet(fx.user.ID, fx.session.ID, fx.exercise.ID, 0, 5, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.SetNumber)

	second, err := svc.LogSet(fx.user.ID, fx.session.ID, fx.exercise.ID, 0, 5, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, second.SetNumber)

	// A different exercise in the same session numbers from 1 again.
	squat := createDefaultExercise(t, fx.db, "Squat")
	third, err := svc.LogSet(fx.user.ID, fx.session.ID, squat.ID, 0, 5, 80, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, third.SetNumber)
}

func TestDeleteSessionKeepsLedger(t *testing.T) {
	svc, fx := newWorkoutService(t)

	_, err := svc.LogSet(fx.user.ID, fx.session.ID, fx.exercise.ID, 1, 5, 100, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(fx.user.ID, fx.session.ID))

	var setCount int64
	require.NoError(t, fx.db.Model(&models.LoggedSet{}).
		Where("session_id = ?", fx.session.ID).Count(&setCount).Error)
	assert.Equal(t, int64(0), setCount)

	// Records outlive their originating sets.
	var recordCount int64
	require.NoError(t, fx.db.Model(&models.RecordEntry{}).
		Where("user_id = ?", fx.user.ID).Count(&recordCount).Error)
	assert.Equal(t, int64(4), recordCount)
}

func TestDeleteSetKeepsLedger(t *testing.T) {
	svc, fx := newWorkoutService(t)

	set, err := svc.LogSet(fx.user.ID, fx.session.ID, fx.exercise.ID, 1, 5, 100, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSet(fx.user.ID, fx.session.ID, set.ID))
	assert.ErrorIs(t, svc.DeleteSet(fx.user.ID, fx.session.ID, set.ID), ErrSetNotFound)

	var recordCount int64
	require.NoError(t, fx.db.Model(&models.RecordEntry{}).
		Where("user_id = ?", fx.user.ID).Count(&recordCount).Error)
	assert.Equal(t, int64(4), recordCount)
}

func TestSessionOwnership(t *testing.T) {
	svc, fx := newWorkoutService(t)
	other := createTestUser(t, fx.db, "someone-else")

	_, err := svc.GetSession(other.ID, fx.session.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetSession(fx.user.ID, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, svc.DeleteSession(other.ID, fx.session.ID), ErrSessionNotFound)
}

func TestListSessionsPagination(t *testing.T) {
	svc, fx := newWorkoutService(t)
	for i := 0; i < 4; i++ {
		createTestSession(t, fx.db, fx.user.ID, time.Now().UTC().AddDate(0, 0, -i-1))
	}

	sessions, total, err := svc.ListSessions(fx.user.ID, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, sessions, 3)

	rest, _, err := svc.ListSessions(fx.user.ID, 3, 3)
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}

func TestUpdateSessionNotes(t *testing.T) {
	svc, fx := newWorkoutService(t)
	notes := "deload week"

	require.NoError(t, svc.UpdateSession(fx.user.ID, fx.session.ID, nil, &notes))

	updated, err := svc.GetSession(fx.user.ID, fx.session.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "deload week", *updated.Notes)

	assert.ErrorIs(t, svc.UpdateSession(fx.user.ID, uuid.New(), nil, &notes), ErrSessionNotFound)
}

func TestShareSessionLifecycle(t *testing.T) {
	svc, fx := newWorkoutService(t)

	_, err := svc.LogSet(fx.user.ID, fx.session.ID, fx.exercise.ID, 1, 5, 100, nil)
	require.NoError(t, err)

	token, err := svc.ShareSession(fx.user.ID, fx.session.ID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Sharing again returns the same token.
	again, err := svc.ShareSession(fx.user.ID, fx.session.ID)
	require.NoError(t, err)
	assert.Equal(t, token, again)

	shared, sets, err := svc.SharedSession(token)
	require.NoError(t, err)
	assert.Equal(t, fx.session.ID, shared.ID)
	require.Len(t, sets, 1)
	assert.True(t, sets[0].PRMaxWeight)

	require.NoError(t, svc.RevokeShare(fx.user.ID, fx.session.ID))
	_, _, err = svc.SharedSession(token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestShareSessionForbiddenForOthers(t *testing.T) {
	svc, fx := newWorkoutService(t)
	other := createTestUser(t, fx.db, "someone-else")

	_, err := svc.ShareSession(other.ID, fx.session.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}
