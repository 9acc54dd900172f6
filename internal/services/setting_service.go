package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atasoydev/liftledger/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SettingService struct {
	db *gorm.DB
}

func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{db: db}
}

// Get returns the user's settings, creating an empty row on first access.
func (s *SettingService) Get(userID uuid.UUID) (*models.UserSetting, error) {
	var setting models.UserSetting
	err := s.db.Where("user_id = ?", userID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.UserSetting{
			ID:          uuid.New(),
			UserID:      userID,
			Preferences: datatypes.JSON([]byte(`{}`)),
		}
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, fmt.Errorf("failed to create settings: %w", err)
		}
		return &setting, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &setting, nil
}

// Update replaces the preferences blob. The payload must be a JSON object.
func (s *SettingService) Update(userID uuid.UUID, preferences json.RawMessage) (*models.UserSetting, error) {
	var probe map[string]interface{}
	if err := json.Unmarshal(preferences, &probe); err != nil {
		return nil, fmt.Errorf("%w: preferences must be a JSON object", ErrValidation)
	}

	setting, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	setting.Preferences = datatypes.JSON(preferences)
	if err := s.db.Model(setting).Update("preferences", setting.Preferences).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return setting, nil
}
