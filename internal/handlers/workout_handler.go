package handlers

import (
	"time"

	"github.com/atasoydev/liftledger/internal/config"
	"github.com/atasoydev/liftledger/internal/dto"
	"github.com/atasoydev/liftledger/internal/middleware"
	"github.com/atasoydev/liftledger/internal/models"
	"github.com/atasoydev/liftledger/internal/records"
	"github.com/atasoydev/liftledger/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type WorkoutHandler struct {
	workoutService *services.WorkoutService
	cfg            *config.Config
}

func NewWorkoutHandler(workoutService *services.WorkoutService, cfg *config.Config) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, cfg: cfg}
}

// CreateSession handles POST /workouts.
func (h *WorkoutHandler) CreateSession(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return badRequest(c, "Invalid date, expected YYYY-MM-DD")
	}

	session, err := h.workoutService.CreateSession(userID, date, req.Notes)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sessionResponse(session))
}

// ListSessions handles GET /workouts with page/limit pagination.
func (h *WorkoutHandler) ListSessions(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	sessions, total, err := h.workoutService.ListSessions(userID, limit, (page-1)*limit)
	if err != nil {
		return serviceError(c, err)
	}

	resp := make([]dto.SessionResponse, len(sessions))
	for i, s := range sessions {
		resp[i] = sessionResponse(&s)
	}
	return c.JSON(dto.SessionListResponse{
		Sessions: resp,
		Total:    total,
		Page:     page,
		Limit:    limit,
	})
}

// GetSession handles GET /workouts/:id, returning the session and its sets.
func (h *WorkoutHandler) GetSession(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}

	session, err := h.workoutService.GetSession(userID, sessionID)
	if err != nil {
		return serviceError(c, err)
	}

	sets, err := h.workoutService.SessionSets(userID, sessionID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"session": sessionResponse(session),
		"sets":    setResponses(sets),
	})
}

// UpdateSession handles PUT /workouts/:id.
func (h *WorkoutHandler) UpdateSession(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return badRequest(c, "Invalid date, expected YYYY-MM-DD")
		}
		date = &parsed
	}

	if err := h.workoutService.UpdateSession(userID, sessionID, date, req.Notes); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Session updated"})
}

// DeleteSession handles DELETE /workouts/:id.
func (h *WorkoutHandler) DeleteSession(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}

	if err := h.workoutService.DeleteSession(userID, sessionID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Session deleted"})
}

// LogSet handles POST /workouts/:id/sets, the set ingestion endpoint.
func (h *WorkoutHandler) LogSet(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}

	var req dto.LogSetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.ExerciseID == uuid.Nil {
		return badRequest(c, "exercise_id is required")
	}

	set, err := h.workoutService.LogSet(userID, sessionID, req.ExerciseID, req.SetNumber, req.Reps, req.Weight, req.RPE)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(setResponse(set))
}

// DeleteSet handles DELETE /workouts/:id/sets/:setId.
func (h *WorkoutHandler) DeleteSet(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}
	setID, err := uuid.Parse(c.Params("setId"))
	if err != nil {
		return badRequest(c, "Invalid set ID")
	}

	if err := h.workoutService.DeleteSet(userID, sessionID, setID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Set deleted"})
}

// ShareSession handles POST /workouts/:id/share.
func (h *WorkoutHandler) ShareSession(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}

	token, err := h.workoutService.ShareSession(userID, sessionID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.ShareResponse{ShareURL: h.cfg.BaseURL + "/shared/" + token})
}

// RevokeShare handles DELETE /workouts/:id/share.
func (h *WorkoutHandler) RevokeShare(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}

	if err := h.workoutService.RevokeShare(userID, sessionID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Share link revoked"})
}

// ViewShared handles GET /shared/:token. Public, no auth.
func (h *WorkoutHandler) ViewShared(c *fiber.Ctx) error {
	session, sets, err := h.workoutService.SharedSession(c.Params("token"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SharedSessionResponse{
		Date:  session.Date.Format(dateLayout),
		Notes: session.Notes,
		Sets:  setResponses(sets),
	})
}

func sessionResponse(s *models.WorkoutSession) dto.SessionResponse {
	return dto.SessionResponse{
		ID:        s.ID,
		Date:      s.Date.Format(dateLayout),
		Notes:     s.Notes,
		Shared:    s.ShareToken != nil,
		CreatedAt: s.CreatedAt,
	}
}

func setResponse(s *models.LoggedSet) dto.SetResponse {
	return dto.SetResponse{
		ID:         s.ID,
		SessionID:  s.SessionID,
		ExerciseID: s.ExerciseID,
		SetNumber:  s.SetNumber,
		Reps:       s.Reps,
		Weight:     s.Weight,
		RPE:        s.RPE,
		PRFlags: map[string]bool{
			string(records.MaxWeight):          s.PRMaxWeight,
			string(records.MaxReps):            s.PRMaxReps,
			string(records.EstimatedOneRepMax): s.PREstOneRepMax,
			string(records.MaxVolume):          s.PRMaxVolume,
		},
		CreatedAt: s.CreatedAt,
	}
}

func setResponses(sets []models.LoggedSet) []dto.SetResponse {
	resp := make([]dto.SetResponse, len(sets))
	for i := range sets {
		resp[i] = setResponse(&sets[i])
	}
	return resp
}
