package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pnikitin/recruitflow/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	process *handlers.ProcessHandler,
	schedule *handlers.ScheduleHandler,
	availability *handlers.AvailabilityHandler,
	email *handlers.EmailHandler,
	health *handlers.HealthHandler,
) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	api := app.Group("/api")

	// Resume ranking
	api.Post("/process", process.Process)

	// Scheduling
	api.Get("/availability", availability.Availability)
	api.Get("/calendar", availability.CalendarURL)
	api.Get("/interviews", availability.Interviews)
	api.Post("/schedule", schedule.Schedule)
	api.Post("/draft_email", email.Draft)
}
