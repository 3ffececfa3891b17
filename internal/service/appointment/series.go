package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arnicahealth/arnica_backend/internal/repo"
	entappt "github.com/arnicahealth/arnica_backend/internal/repo/appointment"
	"github.com/arnicahealth/arnica_backend/pkg/availability"
)

// ---------------------------------------------------------------------------
// Recurring series editing
// ---------------------------------------------------------------------------

type RescheduleSeriesRequest struct {
	NewTimeOfDay    *availability.TimeOfDay
	DurationMinutes *int
	Notes           *string
}

type BulkFailure struct {
	ID     uuid.UUID `json:"id"`
	Reason string    `json:"reason"`
}

// BulkResult reports a series edit that may have partially succeeded.
// There is no rollback: occurrences updated before a failure stay updated.
type BulkResult struct {
	Updated int           `json:"updated"`
	Failed  []BulkFailure `json:"failed"`
}

type SeriesEditor interface {
	// LoadSeries resolves the whole series from any member, root or child.
	LoadSeries(ctx context.Context, clinicID, anyMemberID uuid.UUID) ([]*repo.Appointment, error)
	BulkReschedule(ctx context.Context, clinicID, seriesID uuid.UUID, req RescheduleSeriesRequest) (*BulkResult, error)
	BulkDelete(ctx context.Context, clinicID, seriesID uuid.UUID) (int, error)
}

func (s *appointmentService) LoadSeries(ctx context.Context, clinicID, anyMemberID uuid.UUID) ([]*repo.Appointment, error) {
	member, err := s.GetByID(ctx, clinicID, anyMemberID)
	if err != nil {
		return nil, err
	}

	rootID := member.ID
	if member.ParentAppointmentID != nil {
		rootID = *member.ParentAppointmentID
	}

	series, err := s.db.Appointment.Query().
		Where(
			entappt.ClinicID(clinicID),
			entappt.Or(
				entappt.ID(rootID),
				entappt.ParentAppointmentID(rootID),
			),
		).
		Order(entappt.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load series: %w", err)
	}

	if len(series) < 2 {
		return nil, ErrNotSeries
	}
	return series, nil
}

// BulkReschedule retimes every occurrence of a series to a new time of day
// and/or duration, keeping each occurrence on its own date. Updates are
// per-row; a row that fails is reported and skipped, the rest proceed.
// Occurrences are not re-checked against availability here.
func (s *appointmentService) BulkReschedule(ctx context.Context, clinicID, seriesID uuid.UUID, req RescheduleSeriesRequest) (*BulkResult, error) {
	series, err := s.LoadSeries(ctx, clinicID, seriesID)
	if err != nil {
		return nil, err
	}

	res := &BulkResult{Failed: []BulkFailure{}}
	for _, occ := range series {
		upd := s.db.Appointment.UpdateOne(occ)

		if req.NewTimeOfDay != nil {
			upd = upd.SetStartTime(availability.AtTimeOfDay(occ.StartTime, *req.NewTimeOfDay))
		}
		if req.DurationMinutes != nil {
			upd = upd.SetDurationMinutes(*req.DurationMinutes)
		}
		if req.Notes != nil {
			upd = upd.SetNotes(*req.Notes)
		}

		if err := upd.Exec(ctx); err != nil {
			res.Failed = append(res.Failed, BulkFailure{ID: occ.ID, Reason: err.Error()})
			continue
		}
		res.Updated++
	}

	s.publish(fmt.Sprintf("arnica.series.rescheduled.%s", seriesID), seriesID)

	return res, nil
}

func (s *appointmentService) BulkDelete(ctx context.Context, clinicID, seriesID uuid.UUID) (int, error) {
	series, err := s.LoadSeries(ctx, clinicID, seriesID)
	if err != nil {
		return 0, err
	}

	ids := make([]uuid.UUID, 0, len(series))
	for _, occ := range series {
		ids = append(ids, occ.ID)
	}

	n, err := s.db.Appointment.Delete().
		Where(entappt.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return n, fmt.Errorf("delete series: %w", err)
	}

	s.publish(fmt.Sprintf("arnica.series.deleted.%s", seriesID), seriesID)

	return n, nil
}
