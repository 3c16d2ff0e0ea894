package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/codevhq/scoring/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler, profiles *handlers.ProfileHandler, score *handlers.ScoreHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Profiles and scoring (JWT protected)
	p := v1.Group("/profiles", authMW)
	p.Get("/:id", profiles.Get)
	p.Put("/:id", profiles.Save)
	p.Post("/:id/work-experiences", profiles.AddWorkExperience)
	p.Delete("/:id/work-experiences/:entryId", profiles.DeleteWorkExperience)
	p.Post("/:id/educations", profiles.AddEducation)
	p.Delete("/:id/educations/:entryId", profiles.DeleteEducation)
	p.Get("/:id/points", score.GetPoints)
}
