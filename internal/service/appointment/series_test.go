package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/arnicahealth/arnica_backend/internal/repo"
	"github.com/arnicahealth/arnica_backend/internal/repo/enttest"
	"github.com/arnicahealth/arnica_backend/pkg/availability"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

// seedWeeklySeries creates a root plus n-1 children, one week apart.
func seedWeeklySeries(t *testing.T, client *repo.Client, clinicID uuid.UUID, n int) []*repo.Appointment {
	t.Helper()
	ctx := context.Background()
	therapistID := uuid.New()
	patientID := uuid.New()
	start := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	root, err := client.Appointment.Create().
		SetClinicID(clinicID).
		SetTherapistID(therapistID).
		SetPatientID(patientID).
		SetStartTime(start).
		SetDurationMinutes(50).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed root: %v", err)
	}

	rows := []*repo.Appointment{root}
	for i := 1; i < n; i++ {
		child, err := client.Appointment.Create().
			SetClinicID(clinicID).
			SetTherapistID(therapistID).
			SetPatientID(patientID).
			SetStartTime(start.AddDate(0, 0, 7*i)).
			SetDurationMinutes(50).
			SetParentAppointmentID(root.ID).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed child %d: %v", i, err)
		}
		rows = append(rows, child)
	}
	return rows
}

func TestBulkReschedulePartialFailure(t *testing.T) {
	client := newTestClient(t)
	clinicID := uuid.New()
	series := seedWeeklySeries(t, client, clinicID, 4)
	failID := series[2].ID

	// Reject the update of exactly one occurrence. The edit has no
	// rollback, so the other three must land at the new time and the
	// rejected one must be reported with its id and reason.
	client.Appointment.Use(func(next repo.Mutator) repo.Mutator {
		return repo.MutateFunc(func(ctx context.Context, m repo.Mutation) (repo.Value, error) {
			if am, ok := m.(*repo.AppointmentMutation); ok && m.Op().Is(repo.OpUpdateOne) {
				if id, exists := am.ID(); exists && id == failID {
					return nil, errors.New("storage rejected update")
				}
			}
			return next.Mutate(ctx, m)
		})
	})

	svc := &appointmentService{db: client}
	tod := availability.TimeOfDay{Hour: 11, Minute: 30}

	res, err := svc.BulkReschedule(context.Background(), clinicID, series[1].ID, RescheduleSeriesRequest{NewTimeOfDay: &tod})
	if err != nil {
		t.Fatalf("BulkReschedule: %v", err)
	}

	if res.Updated != 3 {
		t.Errorf("Updated = %d, want 3", res.Updated)
	}
	if len(res.Failed) != 1 {
		t.Fatalf("len(Failed) = %d, want 1", len(res.Failed))
	}
	if res.Failed[0].ID != failID {
		t.Errorf("Failed[0].ID = %s, want %s", res.Failed[0].ID, failID)
	}
	if !strings.Contains(res.Failed[0].Reason, "storage rejected update") {
		t.Errorf("Failed[0].Reason = %q, want the storage error", res.Failed[0].Reason)
	}

	for i, occ := range series {
		got, err := client.Appointment.Get(context.Background(), occ.ID)
		if err != nil {
			t.Fatalf("reload occurrence %d: %v", i, err)
		}
		want := availability.AtTimeOfDay(occ.StartTime, tod)
		if occ.ID == failID {
			want = occ.StartTime
		}
		if !got.StartTime.Equal(want) {
			t.Errorf("occurrence %d: start = %v, want %v", i, got.StartTime, want)
		}
	}
}

func TestBulkRescheduleStandalone(t *testing.T) {
	client := newTestClient(t)
	clinicID := uuid.New()

	standalone, err := client.Appointment.Create().
		SetClinicID(clinicID).
		SetTherapistID(uuid.New()).
		SetPatientID(uuid.New()).
		SetStartTime(time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)).
		SetDurationMinutes(50).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed standalone: %v", err)
	}

	svc := &appointmentService{db: client}
	tod := availability.TimeOfDay{Hour: 11, Minute: 0}

	_, err = svc.BulkReschedule(context.Background(), clinicID, standalone.ID, RescheduleSeriesRequest{NewTimeOfDay: &tod})
	if !errors.Is(err, ErrNotSeries) {
		t.Fatalf("err = %v, want ErrNotSeries", err)
	}
}

func TestLoadSeriesFromChild(t *testing.T) {
	client := newTestClient(t)
	clinicID := uuid.New()
	series := seedWeeklySeries(t, client, clinicID, 3)

	svc := &appointmentService{db: client}

	got, err := svc.LoadSeries(context.Background(), clinicID, series[2].ID)
	if err != nil {
		t.Fatalf("LoadSeries: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != series[0].ID {
		t.Errorf("first row = %s, want the series root %s", got[0].ID, series[0].ID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].StartTime.Before(got[i-1].StartTime) {
			t.Errorf("rows not ordered by start time at index %d", i)
		}
	}
}
