package request

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/arnicahealth/arnica_backend/internal/repo"
	entreq "github.com/arnicahealth/arnica_backend/internal/repo/appointmentrequest"
	"github.com/arnicahealth/arnica_backend/internal/repo/enttest"
	"github.com/arnicahealth/arnica_backend/internal/service/appointment"
)

// fakeAppointments stands in for the booking service. Only Book is used by
// the request service; the embedded nil interface panics on anything else.
type fakeAppointments struct {
	appointment.Service
	db      *repo.Client
	bookErr error
}

func (f *fakeAppointments) Book(ctx context.Context, clinicID uuid.UUID, req appointment.BookRequest) (*repo.Appointment, error) {
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	return f.db.Appointment.Create().
		SetClinicID(clinicID).
		SetTherapistID(req.TherapistID).
		SetPatientID(req.PatientID).
		SetStartTime(req.StartTime).
		SetDurationMinutes(req.DurationMinutes).
		Save(ctx)
}

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func seedPending(t *testing.T, client *repo.Client, clinicID uuid.UUID) *repo.AppointmentRequest {
	t.Helper()
	row, err := client.AppointmentRequest.Create().
		SetClinicID(clinicID).
		SetTherapistID(uuid.New()).
		SetPatientID(uuid.New()).
		SetRequestedStart(time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)).
		SetDurationMinutes(50).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed request: %v", err)
	}
	return row
}

func TestApproveSlotGone(t *testing.T) {
	client := newTestClient(t)
	clinicID := uuid.New()
	row := seedPending(t, client, clinicID)

	svc := New(client, nil, &fakeAppointments{db: client, bookErr: appointment.ErrSlotTaken})

	_, err := svc.Approve(context.Background(), clinicID, row.ID, nil)
	if !errors.Is(err, ErrSlotNoLongerAvailable) {
		t.Fatalf("err = %v, want ErrSlotNoLongerAvailable", err)
	}

	reloaded, err := client.AppointmentRequest.Get(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if reloaded.Status != entreq.StatusPending {
		t.Errorf("status = %s, want pending", reloaded.Status)
	}
	if reloaded.DecidedAt != nil {
		t.Errorf("decided_at set on an undecided request")
	}
}

func TestApproveRequestUpdateFailure(t *testing.T) {
	client := newTestClient(t)
	clinicID := uuid.New()
	row := seedPending(t, client, clinicID)

	// Booking succeeds, marking the request approved does not. The
	// appointment must survive and the request must stay pending so the
	// decision can be retried or reconciled.
	client.AppointmentRequest.Use(func(next repo.Mutator) repo.Mutator {
		return repo.MutateFunc(func(ctx context.Context, m repo.Mutation) (repo.Value, error) {
			if m.Op().Is(repo.OpUpdateOne) {
				return nil, errors.New("storage rejected update")
			}
			return next.Mutate(ctx, m)
		})
	})

	svc := New(client, nil, &fakeAppointments{db: client})

	_, err := svc.Approve(context.Background(), clinicID, row.ID, nil)
	if err == nil {
		t.Fatal("Approve succeeded despite the request update failing")
	}

	n, err := client.Appointment.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count appointments: %v", err)
	}
	if n != 1 {
		t.Errorf("appointments = %d, want the booked one to survive", n)
	}

	reloaded, err := client.AppointmentRequest.Get(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if reloaded.Status != entreq.StatusPending {
		t.Errorf("status = %s, want pending", reloaded.Status)
	}
}

func TestApproveAlreadyDecided(t *testing.T) {
	client := newTestClient(t)
	clinicID := uuid.New()
	row := seedPending(t, client, clinicID)

	if _, err := client.AppointmentRequest.UpdateOne(row).
		SetStatus(entreq.StatusDenied).
		SetDecidedAt(time.Now()).
		Save(context.Background()); err != nil {
		t.Fatalf("mark denied: %v", err)
	}

	svc := New(client, nil, &fakeAppointments{db: client})

	_, err := svc.Approve(context.Background(), clinicID, row.ID, nil)
	if !errors.Is(err, ErrAlreadyDecided) {
		t.Fatalf("err = %v, want ErrAlreadyDecided", err)
	}
}
