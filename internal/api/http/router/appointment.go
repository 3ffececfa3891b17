package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arnicahealth/arnica_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired, clinicHeader)

	appts.Get("/", ah.List)
	appts.Post("/", ah.Book)

	// Series routes before /:id so "series" never parses as an id.
	series := appts.Group("/series/:id")
	series.Get("/", ah.GetSeries)
	series.Patch("/", ah.RescheduleSeries)
	series.Delete("/", ah.DeleteSeries)

	a := appts.Group("/:id")
	a.Get("/", ah.GetByID)
	a.Post("/cancel", ah.Cancel)
	a.Post("/complete", ah.Complete)
}
