package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"github.com/arnicahealth/arnica_backend/config"
	"github.com/arnicahealth/arnica_backend/internal/repo"
	entappt "github.com/arnicahealth/arnica_backend/internal/repo/appointment"
	entreq "github.com/arnicahealth/arnica_backend/internal/repo/appointmentrequest"
	"github.com/arnicahealth/arnica_backend/internal/service/notification"
	"github.com/arnicahealth/arnica_backend/pkg/email"
	"github.com/arnicahealth/arnica_backend/pkg/sms"
)

// WorkerModule registers the NATS event workers and the reminder cron.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	NC       *nats.Conn
	DB       *repo.Client
	Redis    *redis.Client
	NotifSvc notification.Service
	Email    *email.Client
	SMS      *sms.Client
}

func RegisterWorkers(p WorkerParams) {
	c := cron.New()

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startAppointmentWorker(p)
			startRequestWorker(p)
			if err := startReminderCron(c, p); err != nil {
				return err
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// NATS drain handled by ProvideNatsClient
			<-c.Stop().Done()
			return nil
		},
	})
}

// idFromSubject pulls the trailing UUID out of subjects shaped like
// "arnica.appointment.created.<id>".
func idFromSubject(subject string) (uuid.UUID, bool) {
	parts := strings.Split(subject, ".")
	if len(parts) < 4 {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(parts[len(parts)-1])
	return id, err == nil
}

// ---------------------------------------------------------------------------
// appointment_worker
// ---------------------------------------------------------------------------

func startAppointmentWorker(p WorkerParams) {
	_, err := p.NC.Subscribe("arnica.appointment.created.*", func(msg *nats.Msg) {
		apptID, ok := idFromSubject(msg.Subject)
		if !ok {
			return
		}
		handleAppointmentEvent(p, apptID, "appointment_created")
	})
	if err != nil {
		slog.Error("appointment_worker: subscribe created failed", "err", err)
	}

	_, err = p.NC.Subscribe("arnica.appointment.cancelled.*", func(msg *nats.Msg) {
		apptID, ok := idFromSubject(msg.Subject)
		if !ok {
			return
		}
		handleAppointmentEvent(p, apptID, "appointment_cancelled")
	})
	if err != nil {
		slog.Error("appointment_worker: subscribe cancelled failed", "err", err)
	}
}

func handleAppointmentEvent(p WorkerParams, apptID uuid.UUID, eventType string) {
	ctx := context.Background()

	appt, err := p.DB.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		slog.Warn("appointment_worker: appointment not found", "id", apptID, "err", err)
		return
	}

	pat, therapist, clin := loadParticipants(ctx, p.DB, appt.ClinicID, appt.PatientID, appt.TherapistID)

	// In-app notification for the therapist
	if therapist != nil {
		title := "New appointment booked"
		if eventType == "appointment_cancelled" {
			title = "Appointment cancelled"
		}
		_, err = p.NotifSvc.Create(ctx, notification.CreateRequest{
			RecipientID: therapist.UserID,
			Type:        eventType,
			Title:       title,
			Data: map[string]any{
				"appointment_id": appt.ID.String(),
				"start_time":     appt.StartTime.Format(time.RFC3339),
			},
		})
		if err != nil {
			slog.Warn("appointment_worker: create notification failed", "err", err)
		}
	}

	if pat == nil || therapist == nil || clin == nil {
		return
	}

	// Best-effort patient email; delivery failure never propagates.
	if pat.Email != nil {
		data := email.AppointmentEmailData{
			PatientName:   pat.FirstName,
			PatientEmail:  *pat.Email,
			TherapistName: therapist.FullName,
			ClinicName:    clin.Name,
			StartTime:     appt.StartTime,
			Duration:      time.Duration(appt.DurationMinutes) * time.Minute,
		}

		var msg email.Message
		if eventType == "appointment_cancelled" {
			if appt.CancellationReason != nil {
				data.Reason = *appt.CancellationReason
			}
			msg = email.BuildAppointmentCancellationEmail(data)
		} else {
			msg = email.BuildAppointmentConfirmationEmail(data)
		}
		if err := p.Email.Send(ctx, msg); err != nil {
			slog.Warn("appointment_worker: email failed", "appointment_id", appt.ID, "err", err)
		}
	}
}

// ---------------------------------------------------------------------------
// request_worker
// ---------------------------------------------------------------------------

func startRequestWorker(p WorkerParams) {
	_, err := p.NC.Subscribe("arnica.request.approved.*", func(msg *nats.Msg) {
		reqID, ok := idFromSubject(msg.Subject)
		if !ok {
			return
		}
		handleRequestEvent(p, reqID, true)
	})
	if err != nil {
		slog.Error("request_worker: subscribe approved failed", "err", err)
	}

	_, err = p.NC.Subscribe("arnica.request.denied.*", func(msg *nats.Msg) {
		reqID, ok := idFromSubject(msg.Subject)
		if !ok {
			return
		}
		handleRequestEvent(p, reqID, false)
	})
	if err != nil {
		slog.Error("request_worker: subscribe denied failed", "err", err)
	}
}

func handleRequestEvent(p WorkerParams, reqID uuid.UUID, approved bool) {
	ctx := context.Background()

	req, err := p.DB.AppointmentRequest.Query().
		Where(entreq.ID(reqID)).
		Only(ctx)
	if err != nil {
		slog.Warn("request_worker: request not found", "id", reqID, "err", err)
		return
	}

	pat, therapist, clin := loadParticipants(ctx, p.DB, req.ClinicID, req.PatientID, req.TherapistID)
	if pat == nil || therapist == nil || clin == nil {
		return
	}

	if pat.Email != nil {
		data := email.RequestEmailData{
			PatientName:   pat.FirstName,
			PatientEmail:  *pat.Email,
			TherapistName: therapist.FullName,
			ClinicName:    clin.Name,
			RequestedTime: req.RequestedStart,
		}
		if req.TherapistNote != nil {
			data.TherapistNote = *req.TherapistNote
		}

		var msg email.Message
		if approved {
			msg = email.BuildRequestApprovedEmail(data)
		} else {
			msg = email.BuildRequestDeniedEmail(data)
		}
		if err := p.Email.Send(ctx, msg); err != nil {
			slog.Warn("request_worker: email failed", "request_id", req.ID, "err", err)
		}
	}
}

// ---------------------------------------------------------------------------
// reminder cron
// ---------------------------------------------------------------------------

func startReminderCron(c *cron.Cron, p WorkerParams) error {
	spec := p.Cfg.Scheduling.ReminderCron
	if spec == "" {
		spec = "0 * * * *"
	}

	if _, err := c.AddFunc(spec, func() { runReminderSweep(p) }); err != nil {
		return fmt.Errorf("reminder cron: %w", err)
	}

	c.Start()
	slog.Info("reminder cron started", "spec", spec)
	return nil
}

func runReminderSweep(p WorkerParams) {
	ctx := context.Background()
	lead := time.Duration(p.Cfg.Scheduling.ReminderLeadHours) * time.Hour
	if lead <= 0 {
		lead = 24 * time.Hour
	}

	now := time.Now()
	appts, err := p.DB.Appointment.Query().
		Where(
			entappt.StatusEQ(entappt.StatusScheduled),
			entappt.StartTimeGTE(now),
			entappt.StartTimeLT(now.Add(lead)),
		).
		All(ctx)
	if err != nil {
		slog.Error("reminder: query failed", "err", err)
		return
	}

	for _, appt := range appts {
		// One reminder per appointment; the Redis key outlives the lead
		// window so restarts don't re-send.
		key := "reminder:" + appt.ID.String()
		set, err := p.Redis.SetNX(ctx, key, 1, 2*lead+24*time.Hour).Result()
		if err != nil {
			slog.Warn("reminder: dedup check failed", "appointment_id", appt.ID, "err", err)
			continue
		}
		if !set {
			continue
		}

		sendReminder(ctx, p, appt)
	}
}

func sendReminder(ctx context.Context, p WorkerParams, appt *repo.Appointment) {
	pat, therapist, clin := loadParticipants(ctx, p.DB, appt.ClinicID, appt.PatientID, appt.TherapistID)
	if pat == nil || therapist == nil || clin == nil {
		return
	}

	if pat.Email != nil {
		msg := email.BuildAppointmentReminderEmail(email.AppointmentEmailData{
			PatientName:   pat.FirstName,
			PatientEmail:  *pat.Email,
			TherapistName: therapist.FullName,
			ClinicName:    clin.Name,
			StartTime:     appt.StartTime,
			Duration:      time.Duration(appt.DurationMinutes) * time.Minute,
		})
		if err := p.Email.Send(ctx, msg); err != nil {
			slog.Warn("reminder: email failed", "appointment_id", appt.ID, "err", err)
		}
	}

	if pat.Phone != nil && p.SMS.IsEnabled() {
		body := fmt.Sprintf("Reminder: your appointment with %s at %s is on %s.",
			therapist.FullName, clin.Name, appt.StartTime.Format("Jan 2 at 15:04"))
		if err := p.SMS.Send(ctx, *pat.Phone, body); err != nil {
			slog.Warn("reminder: sms failed", "appointment_id", appt.ID, "err", err)
		}
	}
}

// ---------------------------------------------------------------------------
// shared lookups
// ---------------------------------------------------------------------------

func loadParticipants(ctx context.Context, db *repo.Client, clinicID, patientID, therapistID uuid.UUID) (*repo.Patient, *repo.ClinicMember, *repo.Clinic) {
	pat, err := db.Patient.Get(ctx, patientID)
	if err != nil {
		slog.Warn("worker: patient not found", "id", patientID, "err", err)
		pat = nil
	}

	therapist, err := db.ClinicMember.Get(ctx, therapistID)
	if err != nil {
		slog.Warn("worker: therapist not found", "id", therapistID, "err", err)
		therapist = nil
	}

	clin, err := db.Clinic.Get(ctx, clinicID)
	if err != nil {
		slog.Warn("worker: clinic not found", "id", clinicID, "err", err)
		clin = nil
	}

	return pat, therapist, clin
}
