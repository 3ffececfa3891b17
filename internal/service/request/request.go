package request

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/arnicahealth/arnica_backend/internal/repo"
	entreq "github.com/arnicahealth/arnica_backend/internal/repo/appointmentrequest"
	"github.com/arnicahealth/arnica_backend/internal/service/appointment"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SubmitRequest struct {
	TherapistID     uuid.UUID
	PatientID       uuid.UUID
	RequestedStart  time.Time
	DurationMinutes int
	PatientNote     *string
}

type ListRequest struct {
	TherapistID *uuid.UUID
	PatientID   *uuid.UUID
	Status      *string
	Page        int
	PerPage     int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Submit(ctx context.Context, clinicID uuid.UUID, req SubmitRequest) (*repo.AppointmentRequest, error)
	List(ctx context.Context, clinicID uuid.UUID, req ListRequest) ([]*repo.AppointmentRequest, error)
	GetByID(ctx context.Context, clinicID, reqID uuid.UUID) (*repo.AppointmentRequest, error)

	// Approve re-validates the requested interval against current
	// availability before spawning the appointment: the slot that was open
	// at submission time may be gone by decision time.
	Approve(ctx context.Context, clinicID, reqID uuid.UUID, therapistNote *string) (*repo.AppointmentRequest, error)
	Deny(ctx context.Context, clinicID, reqID uuid.UUID, therapistNote *string) (*repo.AppointmentRequest, error)
}

type requestService struct {
	db    *repo.Client
	nc    *nats.Conn
	appts appointment.Service
}

func New(db *repo.Client, nc *nats.Conn, appts appointment.Service) Service {
	return &requestService{db: db, nc: nc, appts: appts}
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

func (s *requestService) Submit(ctx context.Context, clinicID uuid.UUID, req SubmitRequest) (*repo.AppointmentRequest, error) {
	if !req.RequestedStart.After(time.Now()) {
		return nil, ErrInvalidRequestedStart
	}

	row, err := s.db.AppointmentRequest.Create().
		SetClinicID(clinicID).
		SetTherapistID(req.TherapistID).
		SetPatientID(req.PatientID).
		SetRequestedStart(req.RequestedStart).
		SetDurationMinutes(req.DurationMinutes).
		SetNillablePatientNote(req.PatientNote).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment request: %w", err)
	}
	return row, nil
}

func (s *requestService) List(ctx context.Context, clinicID uuid.UUID, req ListRequest) ([]*repo.AppointmentRequest, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.AppointmentRequest.Query().
		Where(entreq.ClinicID(clinicID))

	if req.TherapistID != nil {
		q = q.Where(entreq.TherapistID(*req.TherapistID))
	}
	if req.PatientID != nil {
		q = q.Where(entreq.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entreq.StatusEQ(entreq.Status(*req.Status)))
	}

	rows, err := q.
		Order(entreq.ByRequestedStart(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointment requests: %w", err)
	}
	return rows, nil
}

func (s *requestService) GetByID(ctx context.Context, clinicID, reqID uuid.UUID) (*repo.AppointmentRequest, error) {
	row, err := s.db.AppointmentRequest.Query().
		Where(entreq.ID(reqID), entreq.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment request: %w", err)
	}
	return row, nil
}

func (s *requestService) Approve(ctx context.Context, clinicID, reqID uuid.UUID, therapistNote *string) (*repo.AppointmentRequest, error) {
	row, err := s.GetByID(ctx, clinicID, reqID)
	if err != nil {
		return nil, err
	}
	if row.Status != entreq.StatusPending {
		return nil, ErrAlreadyDecided
	}

	appt, err := s.appts.Book(ctx, clinicID, appointment.BookRequest{
		TherapistID:     row.TherapistID,
		PatientID:       row.PatientID,
		StartTime:       row.RequestedStart,
		DurationMinutes: row.DurationMinutes,
	})
	if err != nil {
		if errors.Is(err, appointment.ErrSlotTaken) {
			return nil, ErrSlotNoLongerAvailable
		}
		return nil, fmt.Errorf("book approved request: %w", err)
	}

	updated, err := s.db.AppointmentRequest.UpdateOne(row).
		SetStatus(entreq.StatusApproved).
		SetAppointmentID(appt.ID).
		SetNillableTherapistNote(therapistNote).
		SetDecidedAt(time.Now()).
		Save(ctx)
	if err != nil {
		// The appointment is already committed at this point. Leave it in
		// place and name it, so an operator can reconcile the pending row.
		slog.Error("request: appointment booked but request row not marked approved",
			"request_id", row.ID, "appointment_id", appt.ID, "err", err)
		return nil, fmt.Errorf("mark request approved: %w", err)
	}

	s.publish(fmt.Sprintf("arnica.request.approved.%s", updated.ID), updated.ID)

	return updated, nil
}

func (s *requestService) Deny(ctx context.Context, clinicID, reqID uuid.UUID, therapistNote *string) (*repo.AppointmentRequest, error) {
	row, err := s.GetByID(ctx, clinicID, reqID)
	if err != nil {
		return nil, err
	}
	if row.Status != entreq.StatusPending {
		return nil, ErrAlreadyDecided
	}

	updated, err := s.db.AppointmentRequest.UpdateOne(row).
		SetStatus(entreq.StatusDenied).
		SetNillableTherapistNote(therapistNote).
		SetDecidedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark request denied: %w", err)
	}

	s.publish(fmt.Sprintf("arnica.request.denied.%s", updated.ID), updated.ID)

	return updated, nil
}

func (s *requestService) publish(subject string, id uuid.UUID) {
	if s.nc != nil {
		_ = s.nc.Publish(subject, []byte(id.String()))
	}
}
