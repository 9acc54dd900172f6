package routes

import (
	"time"

	"github.com/atasoydev/liftledger/internal/config"
	"github.com/atasoydev/liftledger/internal/handlers"
	"github.com/atasoydev/liftledger/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	exerciseHandler *handlers.ExerciseHandler,
	workoutHandler *handlers.WorkoutHandler,
	statsHandler *handlers.StatsHandler,
	settingHandler *handlers.SettingHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public shared-workout view by token
	api.Get("/shared/:token", workoutHandler.ViewShared)

	// Auth is public, with a stricter per-IP limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)

	// Everything below requires a valid JWT
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Delete("/account", authHandler.DeleteAccount)

	protected.Get("/exercises", exerciseHandler.List)
	protected.Post("/exercises", exerciseHandler.Create)
	protected.Get("/exercises/:id", exerciseHandler.Get)
	protected.Put("/exercises/:id", exerciseHandler.Update)
	protected.Delete("/exercises/:id", exerciseHandler.Delete)

	protected.Post("/workouts", workoutHandler.CreateSession)
	protected.Get("/workouts", workoutHandler.ListSessions)
	protected.Get("/workouts/:id", workoutHandler.GetSession)
	protected.Put("/workouts/:id", workoutHandler.UpdateSession)
	protected.Delete("/workouts/:id", workoutHandler.DeleteSession)
	protected.Post("/workouts/:id/sets", workoutHandler.LogSet)
	protected.Delete("/workouts/:id/sets/:setId", workoutHandler.DeleteSet)
	protected.Post("/workouts/:id/share", workoutHandler.ShareSession)
	protected.Delete("/workouts/:id/share", workoutHandler.RevokeShare)

	protected.Get("/stats", statsHandler.Summary)
	protected.Get("/stats/records", statsHandler.Records)
	protected.Get("/stats/exercises/:id", statsHandler.ExerciseStats)
	protected.Get("/stats/sessions/:id/volume", statsHandler.SessionVolume)

	protected.Get("/settings", settingHandler.Get)
	protected.Put("/settings", settingHandler.Update)

	// Admin-only maintenance surface
	admin := protected.Group("/admin", middleware.AdminRequired(db, cfg))
	admin.Delete("/exercises/:id", exerciseHandler.Delete)
}
