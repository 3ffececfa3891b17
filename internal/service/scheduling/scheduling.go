package scheduling

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arnicahealth/arnica_backend/config"
	"github.com/arnicahealth/arnica_backend/internal/repo"
	entappt "github.com/arnicahealth/arnica_backend/internal/repo/appointment"
	entpolicy "github.com/arnicahealth/arnica_backend/internal/repo/workinghourspolicy"
	"github.com/arnicahealth/arnica_backend/internal/schema"
	"github.com/arnicahealth/arnica_backend/pkg/availability"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ReplaceWorkingHoursRequest struct {
	Weekly               map[string]schema.DaySpan
	BufferMinutes        int
	AllowBackToBack      bool
	MaxDailyAppointments *int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Working hours management
	GetWorkingHours(ctx context.Context, clinicID, therapistID uuid.UUID) (*repo.WorkingHoursPolicy, error)
	ReplaceWorkingHours(ctx context.Context, clinicID, therapistID uuid.UUID, req ReplaceWorkingHoursRequest) (*repo.WorkingHoursPolicy, error)

	// Availability resolution
	ListOpenSlots(ctx context.Context, clinicID, therapistID uuid.UUID, date time.Time, duration time.Duration) ([]availability.Slot, error)
	IsDateOpen(ctx context.Context, clinicID, therapistID uuid.UUID, date time.Time, duration time.Duration) (bool, error)
	OpenDates(ctx context.Context, clinicID, therapistID uuid.UUID, from, to time.Time, duration time.Duration) ([]time.Time, error)

	// CheckInterval is the commit-time gate: booking and request approval
	// call it immediately before the insert.
	CheckInterval(ctx context.Context, clinicID, therapistID uuid.UUID, start time.Time, duration time.Duration) (bool, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type schedulingService struct {
	db  *repo.Client
	cfg config.SchedulingConfig
}

func New(db *repo.Client, cfg config.SchedulingConfig) Service {
	return &schedulingService{db: db, cfg: cfg}
}

// ---------------------------------------------------------------------------
// Working hours
// ---------------------------------------------------------------------------

func (s *schedulingService) GetWorkingHours(ctx context.Context, clinicID, therapistID uuid.UUID) (*repo.WorkingHoursPolicy, error) {
	row, err := s.db.WorkingHoursPolicy.Query().
		Where(entpolicy.ClinicID(clinicID), entpolicy.TherapistID(therapistID)).
		Only(ctx)
	if err == nil {
		return row, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get working hours: %w", err)
	}

	// First request for this therapist: persist the default schedule.
	row, err = s.db.WorkingHoursPolicy.Create().
		SetClinicID(clinicID).
		SetTherapistID(therapistID).
		SetWeekly(defaultWeekly()).
		SetBufferMinutes(0).
		SetAllowBackToBack(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create default working hours: %w", err)
	}
	return row, nil
}

func (s *schedulingService) ReplaceWorkingHours(ctx context.Context, clinicID, therapistID uuid.UUID, req ReplaceWorkingHoursRequest) (*repo.WorkingHoursPolicy, error) {
	if err := validateWeekly(req.Weekly, req.BufferMinutes); err != nil {
		return nil, err
	}

	existing, err := s.db.WorkingHoursPolicy.Query().
		Where(entpolicy.ClinicID(clinicID), entpolicy.TherapistID(therapistID)).
		Only(ctx)
	if err != nil {
		if !repo.IsNotFound(err) {
			return nil, fmt.Errorf("get working hours: %w", err)
		}
		c := s.db.WorkingHoursPolicy.Create().
			SetClinicID(clinicID).
			SetTherapistID(therapistID).
			SetWeekly(req.Weekly).
			SetBufferMinutes(req.BufferMinutes).
			SetAllowBackToBack(req.AllowBackToBack).
			SetNillableMaxDailyAppointments(req.MaxDailyAppointments)
		row, cErr := c.Save(ctx)
		if cErr != nil {
			return nil, fmt.Errorf("create working hours: %w", cErr)
		}
		return row, nil
	}

	// Replace wholesale; the weekly map is never patched per-day.
	upd := s.db.WorkingHoursPolicy.UpdateOne(existing).
		SetWeekly(req.Weekly).
		SetBufferMinutes(req.BufferMinutes).
		SetAllowBackToBack(req.AllowBackToBack)
	if req.MaxDailyAppointments != nil {
		upd = upd.SetMaxDailyAppointments(*req.MaxDailyAppointments)
	} else {
		upd = upd.ClearMaxDailyAppointments()
	}

	row, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update working hours: %w", err)
	}
	return row, nil
}

// ---------------------------------------------------------------------------
// Availability
// ---------------------------------------------------------------------------

// loadPolicy resolves the therapist's policy for slot math. A therapist with
// no policy row, or one whose stored row no longer parses, resolves to
// (nil, false): callers treat that as fully closed rather than erroring,
// since surfacing bookable time that might not exist is the worse failure.
func (s *schedulingService) loadPolicy(ctx context.Context, clinicID, therapistID uuid.UUID) (*availability.Policy, bool) {
	row, err := s.db.WorkingHoursPolicy.Query().
		Where(entpolicy.ClinicID(clinicID), entpolicy.TherapistID(therapistID)).
		Only(ctx)
	if err != nil {
		if !repo.IsNotFound(err) {
			slog.Error("scheduling: load working hours failed", "therapist_id", therapistID, "err", err)
		}
		return nil, false
	}

	p, err := toPolicy(row)
	if err != nil {
		slog.Error("scheduling: stored working hours invalid", "therapist_id", therapistID, "err", err)
		return nil, false
	}
	return &p, true
}

// fetchWindow is how far either side of the query date existing appointments
// are loaded from. Clamps upward to cover the longest session, never
// downward: under-fetching would surface slots that are actually taken near
// the window edges.
func (s *schedulingService) fetchWindow() time.Duration {
	days := s.cfg.FetchWindowDays
	if days < 1 {
		days = 1
	}
	w := time.Duration(days) * 24 * time.Hour
	if ms := time.Duration(s.cfg.MaxSessionMinutes) * time.Minute; w < ms {
		w = ms
	}
	return w
}

func (s *schedulingService) granularity() time.Duration {
	if s.cfg.GranularityMinutes <= 0 {
		return availability.DefaultGranularity
	}
	return time.Duration(s.cfg.GranularityMinutes) * time.Minute
}

// loadBusy returns the therapist's non-cancelled appointments around the
// given day as engine bookings.
func (s *schedulingService) loadBusy(ctx context.Context, clinicID, therapistID uuid.UUID, dayStart time.Time) ([]availability.Booking, error) {
	w := s.fetchWindow()
	rows, err := s.db.Appointment.Query().
		Where(
			entappt.ClinicID(clinicID),
			entappt.TherapistID(therapistID),
			entappt.StatusNEQ(entappt.StatusCancelled),
			entappt.StartTimeGTE(dayStart.Add(-w)),
			entappt.StartTimeLT(dayStart.Add(24*time.Hour).Add(w)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}

	busy := make([]availability.Booking, 0, len(rows))
	for _, r := range rows {
		busy = append(busy, availability.Booking{
			Start:    r.StartTime,
			Duration: time.Duration(r.DurationMinutes) * time.Minute,
		})
	}
	return busy, nil
}

func (s *schedulingService) ListOpenSlots(ctx context.Context, clinicID, therapistID uuid.UUID, date time.Time, duration time.Duration) ([]availability.Slot, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if max := time.Duration(s.cfg.MaxSessionMinutes) * time.Minute; max > 0 && duration > max {
		return nil, ErrInvalidDuration
	}

	p, ok := s.loadPolicy(ctx, clinicID, therapistID)
	if !ok {
		return []availability.Slot{}, nil
	}

	busy, err := s.loadBusy(ctx, clinicID, therapistID, date)
	if err != nil {
		return nil, err
	}

	return availability.OpenSlots(date, *p, busy, s.granularity(), duration), nil
}

func (s *schedulingService) IsDateOpen(ctx context.Context, clinicID, therapistID uuid.UUID, date time.Time, duration time.Duration) (bool, error) {
	// Deliberately the same computation as ListOpenSlots: one algorithm,
	// so the calendar can never disagree with the slot list.
	slots, err := s.ListOpenSlots(ctx, clinicID, therapistID, date, duration)
	if err != nil {
		return false, err
	}
	return len(slots) > 0, nil
}

func (s *schedulingService) OpenDates(ctx context.Context, clinicID, therapistID uuid.UUID, from, to time.Time, duration time.Duration) ([]time.Time, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	open := make([]time.Time, 0)
	for d := from; !d.After(to); d = d.Add(24 * time.Hour) {
		ok, err := s.IsDateOpen(ctx, clinicID, therapistID, d, duration)
		if err != nil {
			return nil, err
		}
		if ok {
			open = append(open, d)
		}
	}
	return open, nil
}

func (s *schedulingService) CheckInterval(ctx context.Context, clinicID, therapistID uuid.UUID, start time.Time, duration time.Duration) (bool, error) {
	if duration <= 0 {
		return false, ErrInvalidDuration
	}

	p, ok := s.loadPolicy(ctx, clinicID, therapistID)
	if !ok {
		return false, nil
	}

	busy, err := s.loadBusy(ctx, clinicID, therapistID, start.Truncate(24*time.Hour))
	if err != nil {
		return false, err
	}

	return availability.IntervalFree(*p, busy, start, duration), nil
}
