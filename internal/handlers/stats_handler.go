package handlers

import (
	"github.com/atasoydev/liftledger/internal/dto"
	"github.com/atasoydev/liftledger/internal/middleware"
	"github.com/atasoydev/liftledger/internal/models"
	"github.com/atasoydev/liftledger/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Summary handles GET /stats, the dashboard numbers.
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	summary, err := h.statsService.Summary(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(summary)
}

// Records handles GET /stats/records, all best-ever values for the user.
func (h *StatsHandler) Records(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	entries, err := h.statsService.BestRecords(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"records": recordResponses(entries)})
}

// ExerciseStats handles GET /stats/exercises/:id, ledger entries plus the
// chronological set history for one exercise.
func (h *StatsHandler) ExerciseStats(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	exerciseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid exercise ID")
	}

	entries, err := h.statsService.ExerciseRecords(userID, exerciseID)
	if err != nil {
		return serviceError(c, err)
	}

	limit := c.QueryInt("limit", 100)
	history, err := h.statsService.ExerciseHistory(userID, exerciseID, limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.ExerciseStatsResponse{
		Records: recordResponses(entries),
		History: setResponses(history),
	})
}

// SessionVolume handles GET /stats/sessions/:id/volume.
func (h *StatsHandler) SessionVolume(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}

	volume, err := h.statsService.SessionVolume(userID, sessionID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SessionVolumeResponse{SessionID: sessionID, Volume: volume})
}

func recordResponses(entries []models.RecordEntry) []dto.RecordResponse {
	resp := make([]dto.RecordResponse, len(entries))
	for i, e := range entries {
		resp[i] = dto.RecordResponse{
			ExerciseID:   e.ExerciseID,
			ExerciseName: e.Exercise.Name,
			RecordType:   e.RecordType,
			BestValue:    e.BestValue,
			AchievedAt:   e.AchievedAt,
		}
	}
	return resp
}
