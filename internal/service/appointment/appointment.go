package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/arnicahealth/arnica_backend/internal/repo"
	entappt "github.com/arnicahealth/arnica_backend/internal/repo/appointment"
	"github.com/arnicahealth/arnica_backend/internal/service/scheduling"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	TherapistID *uuid.UUID
	PatientID   *uuid.UUID
	Status      *string
	From        *time.Time
	To          *time.Time
	Page        int
	PerPage     int
}

type BookRequest struct {
	TherapistID       uuid.UUID
	PatientID         uuid.UUID
	StartTime         time.Time
	DurationMinutes   int
	Notes             *string
	RecurrenceEndDate *time.Time
}

type CancelRequest struct {
	Reason      *string
	RequestedBy string // "patient" | "therapist" | "clinic"
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, clinicID uuid.UUID, req ListRequest) ([]*repo.Appointment, error)
	GetByID(ctx context.Context, clinicID, apptID uuid.UUID) (*repo.Appointment, error)
	Book(ctx context.Context, clinicID uuid.UUID, req BookRequest) (*repo.Appointment, error)
	Cancel(ctx context.Context, clinicID, apptID uuid.UUID, req CancelRequest) error
	Complete(ctx context.Context, clinicID, apptID uuid.UUID) error

	SeriesEditor
}

type appointmentService struct {
	db    *repo.Client
	nc    *nats.Conn
	sched scheduling.Service
}

func New(db *repo.Client, nc *nats.Conn, sched scheduling.Service) Service {
	return &appointmentService{db: db, nc: nc, sched: sched}
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func (s *appointmentService) List(ctx context.Context, clinicID uuid.UUID, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query().
		Where(entappt.ClinicID(clinicID))

	if req.TherapistID != nil {
		q = q.Where(entappt.TherapistID(*req.TherapistID))
	}
	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.StartTimeLT(*req.To))
	}

	q = q.Order(entappt.ByStartTime(sql.OrderDesc()))

	appts, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) GetByID(ctx context.Context, clinicID, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID), entappt.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

func (s *appointmentService) Book(ctx context.Context, clinicID uuid.UUID, req BookRequest) (*repo.Appointment, error) {
	duration := time.Duration(req.DurationMinutes) * time.Minute

	// Commit-time gate: the slot the client saw may have been taken since.
	free, err := s.sched.CheckInterval(ctx, clinicID, req.TherapistID, req.StartTime, duration)
	if err != nil {
		return nil, fmt.Errorf("check interval: %w", err)
	}
	if !free {
		return nil, ErrSlotTaken
	}

	if req.RecurrenceEndDate != nil && !req.RecurrenceEndDate.After(req.StartTime) {
		return nil, ErrInvalidRecurrence
	}

	c := s.db.Appointment.Create().
		SetClinicID(clinicID).
		SetTherapistID(req.TherapistID).
		SetPatientID(req.PatientID).
		SetStartTime(req.StartTime).
		SetDurationMinutes(req.DurationMinutes).
		SetNillableNotes(req.Notes).
		SetNillableRecurrenceEndDate(req.RecurrenceEndDate)

	root, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	// Weekly children up to and including the recurrence end date, every one
	// carrying the root id. Children are not conflict-checked at creation;
	// the series editor reports conflicts when they matter.
	if req.RecurrenceEndDate != nil {
		for t := req.StartTime.AddDate(0, 0, 7); !t.After(*req.RecurrenceEndDate); t = t.AddDate(0, 0, 7) {
			_, err := s.db.Appointment.Create().
				SetClinicID(clinicID).
				SetTherapistID(req.TherapistID).
				SetPatientID(req.PatientID).
				SetStartTime(t).
				SetDurationMinutes(req.DurationMinutes).
				SetNillableNotes(req.Notes).
				SetParentAppointmentID(root.ID).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("create series occurrence: %w", err)
			}
		}
	}

	s.publish(fmt.Sprintf("arnica.appointment.created.%s", root.ID), root.ID)

	return root, nil
}

func (s *appointmentService) Cancel(ctx context.Context, clinicID, apptID uuid.UUID, req CancelRequest) error {
	appt, err := s.GetByID(ctx, clinicID, apptID)
	if err != nil {
		return err
	}

	if appt.Status == entappt.StatusCancelled {
		return ErrAlreadyCancelled
	}
	if appt.Status == entappt.StatusCompleted {
		return ErrAlreadyCompleted
	}

	upd := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCancelled).
		SetCancelledAt(time.Now()).
		SetCancelRequestedBy(entappt.CancelRequestedBy(req.RequestedBy))

	if req.Reason != nil {
		upd = upd.SetCancellationReason(*req.Reason)
	}

	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	s.publish(fmt.Sprintf("arnica.appointment.cancelled.%s", appt.ID), appt.ID)

	return nil
}

func (s *appointmentService) Complete(ctx context.Context, clinicID, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, clinicID, apptID)
	if err != nil {
		return err
	}

	if appt.Status == entappt.StatusCompleted {
		return ErrAlreadyCompleted
	}
	if appt.Status == entappt.StatusCancelled {
		return ErrAlreadyCancelled
	}

	return s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
}

func (s *appointmentService) publish(subject string, id uuid.UUID) {
	if s.nc != nil {
		_ = s.nc.Publish(subject, []byte(id.String()))
	}
}
