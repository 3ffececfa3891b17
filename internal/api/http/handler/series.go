package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arnicahealth/arnica_backend/internal/service/appointment"
	"github.com/arnicahealth/arnica_backend/pkg/availability"
)

// GET /appointments/series/:id
//
// :id may be any member of the series, root or child.
func (h *AppointmentHandler) GetSeries(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	series, err := h.svc.LoadSeries(c.Context(), clinicID, memberID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, series)
}

// PATCH /appointments/series/:id
//
// Bulk reschedule. Partial failures come back in the body, not as an error
// status: rows that updated stay updated.
func (h *AppointmentHandler) RescheduleSeries(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	seriesID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid series id")
	}

	var body struct {
		NewTime         *string `json:"new_time"` // "HH:MM"
		DurationMinutes *int    `json:"duration_minutes"`
		Notes           *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.NewTime == nil && body.DurationMinutes == nil && body.Notes == nil {
		return badRequest(c, "nothing to update")
	}
	if body.DurationMinutes != nil && *body.DurationMinutes <= 0 {
		return badRequest(c, "duration_minutes must be positive")
	}

	req := appointment.RescheduleSeriesRequest{
		DurationMinutes: body.DurationMinutes,
		Notes:           body.Notes,
	}
	if body.NewTime != nil {
		tod, err := availability.ParseTimeOfDay(*body.NewTime)
		if err != nil {
			return badRequest(c, "new_time must be HH:MM")
		}
		req.NewTimeOfDay = &tod
	}

	res, err := h.svc.BulkReschedule(c.Context(), clinicID, seriesID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	status := fiber.StatusOK
	if len(res.Failed) > 0 {
		status = fiber.StatusMultiStatus
	}
	return c.Status(status).JSON(fiber.Map{"data": res})
}

// DELETE /appointments/series/:id
func (h *AppointmentHandler) DeleteSeries(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	seriesID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid series id")
	}

	n, err := h.svc.BulkDelete(c.Context(), clinicID, seriesID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, fiber.Map{"deleted": n})
}
