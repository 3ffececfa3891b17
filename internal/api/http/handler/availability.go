package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arnicahealth/arnica_backend/internal/service/scheduling"
	"github.com/arnicahealth/arnica_backend/pkg/availability"
)

type AvailabilityHandler struct {
	svc scheduling.Service
}

func NewAvailabilityHandler(svc scheduling.Service) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

const dateLayout = "2006-01-02"

type slotResponse struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
}

func toSlotResponses(slots []availability.Slot) []slotResponse {
	out := make([]slotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, slotResponse{
			StartTime:       s.Start,
			EndTime:         s.End(),
			DurationMinutes: int(s.Duration.Minutes()),
		})
	}
	return out
}

// GET /therapists/:mid/availability?date=YYYY-MM-DD&duration_minutes=60
func (h *AvailabilityHandler) ListOpenSlots(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	therapistID, err := uuid.Parse(c.Params("mid"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	var q struct {
		Date            string `query:"date"`
		DurationMinutes int    `query:"duration_minutes"`
	}
	_ = c.Bind().Query(&q)

	date, err := time.Parse(dateLayout, q.Date)
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}
	if q.DurationMinutes <= 0 {
		return badRequest(c, "duration_minutes must be positive")
	}

	slots, err := h.svc.ListOpenSlots(c.Context(), clinicID, therapistID, date,
		time.Duration(q.DurationMinutes)*time.Minute)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, fiber.Map{
		"date":  q.Date,
		"open":  len(slots) > 0,
		"slots": toSlotResponses(slots),
	})
}

// GET /therapists/:mid/availability/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD&duration_minutes=60
func (h *AvailabilityHandler) Calendar(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	therapistID, err := uuid.Parse(c.Params("mid"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	var q struct {
		From            string `query:"from"`
		To              string `query:"to"`
		DurationMinutes int    `query:"duration_minutes"`
	}
	_ = c.Bind().Query(&q)

	from, err := time.Parse(dateLayout, q.From)
	if err != nil {
		return badRequest(c, "from must be YYYY-MM-DD")
	}
	to, err := time.Parse(dateLayout, q.To)
	if err != nil {
		return badRequest(c, "to must be YYYY-MM-DD")
	}
	if q.DurationMinutes <= 0 {
		return badRequest(c, "duration_minutes must be positive")
	}
	// Bound the scan so a careless range cannot hammer the resolver.
	if to.Sub(from) > 92*24*time.Hour {
		return badRequest(c, "range must not exceed 92 days")
	}

	dates, err := h.svc.OpenDates(c.Context(), clinicID, therapistID, from, to,
		time.Duration(q.DurationMinutes)*time.Minute)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(dateLayout))
	}

	return ok(c, fiber.Map{"open_dates": out})
}
