package handlers

import (
	"encoding/json"

	"github.com/atasoydev/liftledger/internal/middleware"
	"github.com/atasoydev/liftledger/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SettingHandler struct {
	settingService *services.SettingService
}

func NewSettingHandler(settingService *services.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// Get handles GET /settings.
func (h *SettingHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	setting, err := h.settingService.Get(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(setting)
}

// Update handles PUT /settings with a JSON preferences object body.
func (h *SettingHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	setting, err := h.settingService.Update(userID, json.RawMessage(c.Body()))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(setting)
}
