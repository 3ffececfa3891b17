package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arnicahealth/arnica_backend/internal/api/http/handler"
)

func (r *Router) registerClinicRoutes(
	api fiber.Router,
	ch *handler.ClinicHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
) {
	cl := api.Group("/clinic", authRequired, clinicHeader)

	cl.Get("/", ch.Get)
	cl.Get("/members", ch.ListMembers)
}
