package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arnicahealth/arnica_backend/internal/api/http/handler"
)

func (r *Router) registerAvailabilityRoutes(
	api fiber.Router,
	ah *handler.AvailabilityHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
) {
	t := api.Group("/therapists/:mid", authRequired, clinicHeader)

	t.Get("/availability", ah.ListOpenSlots)
	t.Get("/availability/calendar", ah.Calendar)
}
