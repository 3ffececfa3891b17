package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/arnicahealth/arnica_backend/internal/schema"
	"github.com/arnicahealth/arnica_backend/internal/service/scheduling"
)

type ScheduleHandler struct {
	svc scheduling.Service
}

func NewScheduleHandler(svc scheduling.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func mapSchedulingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrInvalidWorkingHours):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidDuration):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidDateRange):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /schedule/working-hours
//
// Returns the calling therapist's schedule, creating the default one on
// first access.
func (h *ScheduleHandler) GetWorkingHours(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	memberID, valid := memberIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing member context")
	}

	row, err := h.svc.GetWorkingHours(c.Context(), clinicID, memberID)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, row)
}

// PUT /schedule/working-hours
//
// Replaces the schedule wholesale. There is no per-day PATCH.
func (h *ScheduleHandler) ReplaceWorkingHours(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	memberID, valid := memberIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing member context")
	}

	var body struct {
		Weekly               map[string]schema.DaySpan `json:"weekly"`
		BufferMinutes        int                       `json:"buffer_minutes"`
		AllowBackToBack      bool                      `json:"allow_back_to_back"`
		MaxDailyAppointments *int                      `json:"max_daily_appointments"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Weekly == nil {
		return badRequest(c, "weekly is required")
	}

	row, err := h.svc.ReplaceWorkingHours(c.Context(), clinicID, memberID, scheduling.ReplaceWorkingHoursRequest{
		Weekly:               body.Weekly,
		BufferMinutes:        body.BufferMinutes,
		AllowBackToBack:      body.AllowBackToBack,
		MaxDailyAppointments: body.MaxDailyAppointments,
	})
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, row)
}
