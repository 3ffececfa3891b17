package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/arnicahealth/arnica_backend/internal/service/clinic"
)

type ClinicHandler struct {
	svc clinic.Service
}

func NewClinicHandler(svc clinic.Service) *ClinicHandler {
	return &ClinicHandler{svc: svc}
}

func mapClinicError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, clinic.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinic.ErrMemberNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /clinic
func (h *ClinicHandler) Get(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	cl, err := h.svc.Get(c.Context(), clinicID)
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, cl)
}

// GET /clinic/members?role=therapist
func (h *ClinicHandler) ListMembers(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		Role string `query:"role"`
	}
	_ = c.Bind().Query(&q)

	var role *string
	if q.Role != "" {
		role = &q.Role
	}

	members, err := h.svc.ListMembers(c.Context(), clinicID, role)
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, members)
}
