package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arnicahealth/arnica_backend/internal/api/http/handler"
	"github.com/arnicahealth/arnica_backend/internal/api/http/middleware"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
) {
	sched := api.Group("/schedule", authRequired, clinicHeader, middleware.RequireRole("therapist"))

	sched.Get("/working-hours", sh.GetWorkingHours)
	sched.Put("/working-hours", sh.ReplaceWorkingHours)
}
