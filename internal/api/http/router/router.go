package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/arnicahealth/arnica_backend/config"
	"github.com/arnicahealth/arnica_backend/internal/api/http/handler"
	"github.com/arnicahealth/arnica_backend/internal/api/http/middleware"
	"github.com/arnicahealth/arnica_backend/internal/service/appointment"
	"github.com/arnicahealth/arnica_backend/internal/service/clinic"
	"github.com/arnicahealth/arnica_backend/internal/service/notification"
	"github.com/arnicahealth/arnica_backend/internal/service/patient"
	"github.com/arnicahealth/arnica_backend/internal/service/request"
	"github.com/arnicahealth/arnica_backend/internal/service/scheduling"
	pasetotoken "github.com/arnicahealth/arnica_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	ClinicSvc       clinic.Service
	PatientSvc      patient.Service
	SchedulingSvc   scheduling.Service
	AppointmentSvc  appointment.Service
	RequestSvc      request.Service
	NotificationSvc notification.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	clinicHeader := middleware.ClinicHeader(r.p.ClinicSvc)

	// 3. Initialize Handlers
	clinicH := handler.NewClinicHandler(r.p.ClinicSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	availabilityH := handler.NewAvailabilityHandler(r.p.SchedulingSvc)
	scheduleH := handler.NewScheduleHandler(r.p.SchedulingSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	requestH := handler.NewRequestHandler(r.p.RequestSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerClinicRoutes(api, clinicH, authRequired, clinicHeader)
	r.registerPatientRoutes(api, patientH, authRequired, clinicHeader)
	r.registerAvailabilityRoutes(api, availabilityH, authRequired, clinicHeader)
	r.registerScheduleRoutes(api, scheduleH, authRequired, clinicHeader)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, clinicHeader)
	r.registerRequestRoutes(api, requestH, authRequired, clinicHeader)
	r.registerNotificationRoutes(api, notificationH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
