package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arnicahealth/arnica_backend/internal/api/http/handler"
	"github.com/arnicahealth/arnica_backend/internal/api/http/middleware"
)

func (r *Router) registerRequestRoutes(
	api fiber.Router,
	rh *handler.RequestHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
) {
	reqs := api.Group("/requests", authRequired, clinicHeader)

	reqs.Post("/", rh.Submit)
	reqs.Get("/", rh.List)

	// Only the therapist (or an admin) decides.
	decide := reqs.Group("/:id", middleware.RequireRole("therapist"))
	decide.Post("/approve", rh.Approve)
	decide.Post("/deny", rh.Deny)
}
