package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arnicahealth/arnica_backend/internal/service/appointment"
	"github.com/arnicahealth/arnica_backend/internal/service/scheduling"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrNotSeries):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrSlotTaken):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrAlreadyCompleted):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrAlreadyCancelled):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidRecurrence):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidDuration):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		TherapistID string `query:"therapist_id"`
		PatientID   string `query:"patient_id"`
		Status      string `query:"status"`
		From        string `query:"from"`
		To          string `query:"to"`
		Page        int    `query:"page"`
		PerPage     int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.TherapistID != "" {
		id, err := uuid.Parse(q.TherapistID)
		if err != nil {
			return badRequest(c, "invalid therapist_id")
		}
		req.TherapistID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	appts, err := h.svc.List(c.Context(), clinicID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), clinicID, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body struct {
		TherapistID       string     `json:"therapist_id"`
		PatientID         string     `json:"patient_id"`
		StartTime         time.Time  `json:"start_time"`
		DurationMinutes   int        `json:"duration_minutes"`
		Notes             *string    `json:"notes"`
		RecurrenceEndDate *time.Time `json:"recurrence_end_date"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.TherapistID == "" || body.PatientID == "" {
		return badRequest(c, "therapist_id and patient_id are required")
	}
	if body.StartTime.IsZero() {
		return badRequest(c, "start_time is required")
	}
	if body.DurationMinutes <= 0 {
		return badRequest(c, "duration_minutes must be positive")
	}

	therapistID, err := uuid.Parse(body.TherapistID)
	if err != nil {
		return badRequest(c, "invalid therapist_id")
	}
	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	appt, err := h.svc.Book(c.Context(), clinicID, appointment.BookRequest{
		TherapistID:       therapistID,
		PatientID:         patientID,
		StartTime:         body.StartTime,
		DurationMinutes:   body.DurationMinutes,
		Notes:             body.Notes,
		RecurrenceEndDate: body.RecurrenceEndDate,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// POST /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason      *string `json:"reason"`
		RequestedBy string  `json:"requested_by"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	switch body.RequestedBy {
	case "patient", "therapist", "clinic":
	default:
		return badRequest(c, "requested_by must be patient, therapist or clinic")
	}

	if err := h.svc.Cancel(c.Context(), clinicID, apptID, appointment.CancelRequest{
		Reason:      body.Reason,
		RequestedBy: body.RequestedBy,
	}); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

// POST /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Complete(c.Context(), clinicID, apptID); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}
