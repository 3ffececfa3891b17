package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/arnicahealth/arnica_backend/internal/service/appointment"
	"github.com/arnicahealth/arnica_backend/internal/service/request"
	"github.com/arnicahealth/arnica_backend/internal/service/scheduling"
)

func statusFor(t *testing.T, mapper func(fiber.Ctx, error) error, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error { return mapper(c, err) })

	resp, terr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if terr != nil {
		t.Fatalf("test request: %v", terr)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestMapAppointmentError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", appointment.ErrNotFound, fiber.StatusNotFound},
		{"not a series", appointment.ErrNotSeries, fiber.StatusNotFound},
		{"slot taken", appointment.ErrSlotTaken, fiber.StatusConflict},
		{"already completed", appointment.ErrAlreadyCompleted, fiber.StatusConflict},
		{"invalid recurrence", appointment.ErrInvalidRecurrence, fiber.StatusBadRequest},
		{"invalid duration through booking", fmt.Errorf("check interval: %w", scheduling.ErrInvalidDuration), fiber.StatusBadRequest},
		{"opaque", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(t, mapAppointmentError, tt.err); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMapRequestError(t *testing.T) {
	// An oversized duration fails inside the booking delegate, so it
	// reaches the mapper wrapped twice.
	oversized := fmt.Errorf("book approved request: %w",
		fmt.Errorf("check interval: %w", scheduling.ErrInvalidDuration))

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", request.ErrNotFound, fiber.StatusNotFound},
		{"already decided", request.ErrAlreadyDecided, fiber.StatusConflict},
		{"slot no longer available", request.ErrSlotNoLongerAvailable, fiber.StatusConflict},
		{"requested start in the past", request.ErrInvalidRequestedStart, fiber.StatusBadRequest},
		{"invalid duration through approval", oversized, fiber.StatusBadRequest},
		{"opaque", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(t, mapRequestError, tt.err); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}
