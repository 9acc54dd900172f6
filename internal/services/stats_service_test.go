package services

import (
	"testing"
	"time"

	"github.com/atasoydev/liftledger/internal/records"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestRecords(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db)
	workouts := NewWorkoutService(db, records.NewLedger())
	user := createTestUser(t, db, "lifter")
	bench := createDefaultExercise(t, db, "Bench Press")
	session := createTestSession(t, db, user.ID, time.Now().UTC())

	_, err := workouts.LogSet(user.ID, session.ID, bench.ID, 1, 5, 100, nil)
	require.NoError(t, err)

	entries, err := stats.BestRecords(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for _, e := range entries {
		assert.Equal(t, "Bench Press", e.Exercise.Name)
	}

	// Another user sees nothing.
	other := createTestUser(t, db, "other")
	entries, err = stats.BestRecords(other.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExerciseRecords(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db)
	workouts := NewWorkoutService(db, records.NewLedger())
	user := createTestUser(t, db, "lifter")
	bench := createDefaultExercise(t, db, "Bench Press")
	squat := createDefaultExercise(t, db, "Squat")
	session := createTestSession(t, db, user.ID, time.Now().UTC())

	_, err := workouts.LogSet(user.ID, session.ID, bench.ID, 1, 5, 100, nil)
	require.NoError(t, err)
	_, err = workouts.LogSet(user.ID, session.ID, squat.ID, 1, 5, 140, nil)
	require.NoError(t, err)

	entries, err := stats.ExerciseRecords(user.ID, bench.ID)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for _, e := range entries {
		assert.Equal(t, bench.ID, e.ExerciseID)
	}
}

func TestExerciseHistoryPreservesFlags(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db)
	workouts := NewWorkoutService(db, records.NewLedger())
	user := createTestUser(t, db, "lifter")
	bench := createDefaultExercise(t, db, "Bench Press")
	session := createTestSession(t, db, user.ID, time.Now().UTC())

	_, err := workouts.LogSet(user.ID, session.ID, bench.ID, 1, 5, 100, nil)
	require.NoError(t, err)
	_, err = workouts.LogSet(user.ID, session.ID, bench.ID, 2, 5, 100, nil)
	require.NoError(t, err)
	_, err = workouts.LogSet(user.ID, session.ID, bench.ID, 3, 3, 110, nil)
	require.NoError(t, err)

	history, err := stats.ExerciseHistory(user.ID, bench.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// Flags stay exactly as written at logging time, even though the third
	// set later raised two of the records.
	assert.True(t, history[0].PRMaxWeight)
	assert.True(t, history[0].PRMaxVolume)
	assert.False(t, history[1].HasPR())
	assert.True(t, history[2].PRMaxWeight)
	assert.True(t, history[2].PREstOneRepMax)
	assert.False(t, history[2].PRMaxVolume)

	limited, err := stats.ExerciseHistory(user.ID, bench.ID, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSessionVolume(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db)
	workouts := NewWorkoutService(db, records.NewLedger())
	user := createTestUser(t, db, "lifter")
	bench := createDefaultExercise(t, db, "Bench Press")
	session := createTestSession(t, db, user.ID, time.Now().UTC())

	volume, err := stats.SessionVolume(user.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, volume)

	_, err = workouts.LogSet(user.ID, session.ID, bench.ID, 1, 5, 100, nil)
	require.NoError(t, err)
	_, err = workouts.LogSet(user.ID, session.ID, bench.ID, 2, 8, 80, nil)
	require.NoError(t, err)

	volume, err = stats.SessionVolume(user.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1140.0, volume)

	other := createTestUser(t, db, "other")
	_, err = stats.SessionVolume(other.ID, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = stats.SessionVolume(user.ID, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSummary(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db)
	workouts := NewWorkoutService(db, records.NewLedger())
	user := createTestUser(t, db, "lifter")
	bench := createDefaultExercise(t, db, "Bench Press")

	now := time.Now().UTC()
	recent := createTestSession(t, db, user.ID, now.AddDate(0, 0, -2))
	createTestSession(t, db, user.ID, now.AddDate(0, 0, -14))
	createTestSession(t, db, user.ID, now.AddDate(0, 0, -60))

	_, err := workouts.LogSet(user.ID, recent.ID, bench.ID, 1, 5, 100, nil)
	require.NoError(t, err)

	summary, err := stats.Summary(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.WorkoutsThisWeek)
	assert.Equal(t, int64(2), summary.WorkoutsThisMonth)
	assert.Equal(t, int64(3), summary.TotalWorkouts)
	assert.Equal(t, 500.0, summary.VolumeThisWeek)
}
