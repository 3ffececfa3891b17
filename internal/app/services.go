package app

import (
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/arnicahealth/arnica_backend/config"
	"github.com/arnicahealth/arnica_backend/internal/repo"
	"github.com/arnicahealth/arnica_backend/internal/service/appointment"
	"github.com/arnicahealth/arnica_backend/internal/service/clinic"
	"github.com/arnicahealth/arnica_backend/internal/service/notification"
	"github.com/arnicahealth/arnica_backend/internal/service/patient"
	"github.com/arnicahealth/arnica_backend/internal/service/request"
	"github.com/arnicahealth/arnica_backend/internal/service/scheduling"
	pasetotoken "github.com/arnicahealth/arnica_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideClinicService,
		ProvidePatientService,
		ProvideSchedulingService,
		ProvideAppointmentService,
		ProvideRequestService,
		ProvideNotificationService,
		ProvidePasetoManager,
	),
)

func ProvideClinicService(db *repo.Client) clinic.Service {
	return clinic.New(db)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvideSchedulingService(db *repo.Client, cfg *config.Config) scheduling.Service {
	return scheduling.New(db, cfg.Scheduling)
}

func ProvideAppointmentService(db *repo.Client, nc *nats.Conn, sched scheduling.Service) appointment.Service {
	return appointment.New(db, nc, sched)
}

func ProvideRequestService(db *repo.Client, nc *nats.Conn, appts appointment.Service) request.Service {
	return request.New(db, nc, appts)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
