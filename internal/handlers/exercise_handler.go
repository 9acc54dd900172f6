package handlers

import (
	"github.com/atasoydev/liftledger/internal/dto"
	"github.com/atasoydev/liftledger/internal/middleware"
	"github.com/atasoydev/liftledger/internal/models"
	"github.com/atasoydev/liftledger/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ExerciseHandler struct {
	exerciseService *services.ExerciseService
}

func NewExerciseHandler(exerciseService *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// List handles GET /exercises.
func (h *ExerciseHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	exercises, err := h.exerciseService.ListVisible(userID)
	if err != nil {
		return serviceError(c, err)
	}

	resp := make([]dto.ExerciseResponse, len(exercises))
	for i, e := range exercises {
		resp[i] = exerciseResponse(&e)
	}
	return c.JSON(fiber.Map{"exercises": resp, "categories": models.Categories})
}

// Get handles GET /exercises/:id.
func (h *ExerciseHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	exerciseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid exercise ID")
	}

	exercise, err := h.exerciseService.Get(userID, exerciseID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(exerciseResponse(exercise))
}

// Create handles POST /exercises.
func (h *ExerciseHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	exercise, err := h.exerciseService.Create(userID, req.Name, req.Category, req.MuscleGroup, req.Equipment)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exerciseResponse(exercise))
}

// Update handles PUT /exercises/:id.
func (h *ExerciseHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	exerciseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid exercise ID")
	}

	var req dto.UpdateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.exerciseService.Update(userID, exerciseID, req.Name, req.Category, req.MuscleGroup, req.Equipment); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Exercise updated"})
}

// Delete handles DELETE /exercises/:id. Deletion is restricted while any
// logged set references the exercise.
func (h *ExerciseHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	exerciseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid exercise ID")
	}

	if err := h.exerciseService.Delete(userID, middleware.UserRole(c), exerciseID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Exercise deleted"})
}

func exerciseResponse(e *models.Exercise) dto.ExerciseResponse {
	return dto.ExerciseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Category:    e.Category,
		MuscleGroup: e.MuscleGroup,
		Equipment:   e.Equipment,
		IsDefault:   e.IsDefault,
		CreatedAt:   e.CreatedAt,
	}
}
