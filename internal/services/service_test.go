package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atasoydev/liftledger/internal/config"
	"github.com/atasoydev/liftledger/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A shared-cache in-memory database disappears when its last connection
	// closes; a single connection also keeps writes serialized.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Exercise{},
		&models.WorkoutSession{},
		&models.LoggedSet{},
		&models.RecordEntry{},
		&models.UserSetting{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createDefaultExercise(t *testing.T, db *gorm.DB, name string) *models.Exercise {
	t.Helper()
	exercise := models.Exercise{
		ID:          uuid.New(),
		Name:        name,
		Category:    "chest",
		MuscleGroup: "pectorals",
		IsDefault:   true,
	}
	require.NoError(t, db.Create(&exercise).Error)
	return &exercise
}

func createCustomExercise(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string) *models.Exercise {
	t.Helper()
	exercise := models.Exercise{
		ID:          uuid.New(),
		Name:        name,
		Category:    "back",
		MuscleGroup: "lats",
		IsDefault:   false,
		UserID:      &ownerID,
	}
	require.NoError(t, db.Create(&exercise).Error)
	return &exercise
}

func createTestSession(t *testing.T, db *gorm.DB, userID uuid.UUID, date time.Time) *models.WorkoutSession {
	t.Helper()
	session := models.WorkoutSession{
		ID:     uuid.New(),
		UserID: userID,
		Date:   date,
	}
	require.NoError(t, db.Create(&session).Error)
	return &session
}
