package router

import (
	"database/sql"
	"net/http"

	"maternal-care-api/internal/adapters/notify/fanout"
	mem "maternal-care-api/internal/adapters/storage/memory"
	pg "maternal-care-api/internal/adapters/storage/postgres"
	_ "maternal-care-api/internal/docs"
	"maternal-care-api/internal/domain/assessments"
	"maternal-care-api/internal/domain/careteam"
	"maternal-care-api/internal/domain/emergency"
	"maternal-care-api/internal/middleware"
	"maternal-care-api/internal/platform/logger"
	"maternal-care-api/internal/ports/auth"
	"maternal-care-api/internal/ports/notify"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: nil => logger no-op.
	Logger logger.Logger

	// Opcional: nil => las alertas SOS solo se registran en el log.
	Notifier notify.Notifier
}

// Services agrupa los servicios de dominio ya cableados. El binario los
// reutiliza para el feed MQTT, así HTTP y dispositivos comparten estado.
type Services struct {
	CareTeam    *careteam.Service
	Emergency   *emergency.Service
	Assessments *assessments.Service
}

func NewServices(opts Options) *Services {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	var (
		teamRepo    careteam.Repository
		contactRepo emergency.ContactRepository
		alertRepo   emergency.AlertRepository
		assessRepo  assessments.Repository
	)

	if opts.DB != nil {
		teamRepo = pg.NewCareTeamRepo(opts.DB)
		contactRepo = pg.NewContactsRepo(opts.DB)
		alertRepo = pg.NewAlertsRepo(opts.DB)
		assessRepo = pg.NewAssessmentsRepo(opts.DB)
	} else {
		teamRepo = mem.NewCareTeamRepo()
		contactRepo = mem.NewContactRepo()
		alertRepo = mem.NewAlertRepo()
		assessRepo = mem.NewAssessmentRepo()
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = fanout.NewLogNotifier(log)
	}

	teamSvc := careteam.NewService(teamRepo)
	emergencySvc := emergency.NewService(contactRepo, alertRepo, notifier, log)
	// HIGH => SOS automático vía emergency
	assessSvc := assessments.NewService(assessRepo, emergencySvc, log)

	return &Services{
		CareTeam:    teamSvc,
		Emergency:   emergencySvc,
		Assessments: assessSvc,
	}
}

func NewRouter(opts Options) http.Handler {
	return Mount(NewServices(opts), opts)
}

// Mount arma el router HTTP sobre servicios ya construidos.
func Mount(svcs *Services, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	careteam.RegisterRoutes(r, svcs.CareTeam)
	assessments.RegisterRoutes(r, svcs.Assessments, svcs.CareTeam)
	emergency.RegisterRoutes(r, svcs.Emergency, svcs.CareTeam)

	return r
}
