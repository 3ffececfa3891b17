package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arnicahealth/arnica_backend/internal/service/request"
	"github.com/arnicahealth/arnica_backend/internal/service/scheduling"
)

type RequestHandler struct {
	svc request.Service
}

func NewRequestHandler(svc request.Service) *RequestHandler {
	return &RequestHandler{svc: svc}
}

func mapRequestError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, request.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, request.ErrAlreadyDecided):
		return conflict(c, err.Error())
	case errors.Is(err, request.ErrSlotNoLongerAvailable):
		return conflict(c, err.Error())
	case errors.Is(err, request.ErrInvalidRequestedStart):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidDuration):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /requests
func (h *RequestHandler) Submit(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body struct {
		TherapistID     string    `json:"therapist_id"`
		PatientID       string    `json:"patient_id"`
		RequestedStart  time.Time `json:"requested_start"`
		DurationMinutes int       `json:"duration_minutes"`
		PatientNote     *string   `json:"patient_note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.TherapistID == "" || body.PatientID == "" {
		return badRequest(c, "therapist_id and patient_id are required")
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

	row, err := h.svc.Submit(c.Context(), clinicID, request.SubmitRequest{
		TherapistID:     therapistID,
		PatientID:       patientID,
		RequestedStart:  body.RequestedStart,
		DurationMinutes: body.DurationMinutes,
		PatientNote:     body.PatientNote,
	})
	if err != nil {
		return mapRequestError(c, err)
	}

	return created(c, row)
}

// GET /requests
func (h *RequestHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		TherapistID string `query:"therapist_id"`
		PatientID   string `query:"patient_id"`
		Status      string `query:"status"`
		Page        int    `query:"page"`
		PerPage     int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := request.ListRequest{
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

	rows, err := h.svc.List(c.Context(), clinicID, req)
	if err != nil {
		return mapRequestError(c, err)
	}

	return ok(c, rows)
}

// POST /requests/:id/approve
func (h *RequestHandler) Approve(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	reqID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	var body struct {
		TherapistNote *string `json:"therapist_note"`
	}
	_ = c.Bind().JSON(&body)

	row, err := h.svc.Approve(c.Context(), clinicID, reqID, body.TherapistNote)
	if err != nil {
		return mapRequestError(c, err)
	}

	return ok(c, row)
}

// POST /requests/:id/deny
func (h *RequestHandler) Deny(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	reqID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	var body struct {
		TherapistNote *string `json:"therapist_note"`
	}
	_ = c.Bind().JSON(&body)

	row, err := h.svc.Deny(c.Context(), clinicID, reqID, body.TherapistNote)
	if err != nil {
		return mapRequestError(c, err)
	}

	return ok(c, row)
}
