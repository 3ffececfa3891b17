package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arnicahealth/arnica_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
) {
	patients := api.Group("/patients", authRequired, clinicHeader)

	patients.Get("/", ph.List)
	patients.Post("/", ph.Create)

	p := patients.Group("/:id")
	p.Get("/", ph.GetByID)
	p.Patch("/", ph.Update)
	p.Delete("/", ph.Delete)
}
