package router

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-shop-api/docs"
	mem "pet-shop-api/internal/adapters/storage/memory"
	pg "pet-shop-api/internal/adapters/storage/postgres"
	"pet-shop-api/internal/domain/appointments"
	"pet-shop-api/internal/domain/catalog"
	"pet-shop-api/internal/domain/grooming"
	"pet-shop-api/internal/domain/medical"
	"pet-shop-api/internal/domain/pets"
	"pet-shop-api/internal/domain/products"
	"pet-shop-api/internal/domain/profile"
	"pet-shop-api/internal/domain/users"
	"pet-shop-api/internal/domain/vaccinations"
	"pet-shop-api/internal/middleware"
	"pet-shop-api/internal/platform/httpx"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/ports/auth"
)

type Options struct {
	// DevAuth => además del Bearer se aceptan X-Debug-User-ID / X-Debug-Role.
	AuthVerifier auth.AuthVerifier
	DevAuth      bool

	// Tokens firma los tokens de /auth/register y /auth/login.
	Tokens users.TokenIssuer

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger    logger.Logger
	RateLimit middleware.RateLimitConfig
}

// App es el router armado más los servicios que main necesita al arrancar.
type App struct {
	Handler http.Handler
	Users   *users.Service
}

type repos struct {
	users        users.Repository
	pets         pets.Repository
	medical      medical.Repository
	vaccinations vaccinations.Repository
	grooming     grooming.Repository
	catalog      catalog.Repository
	products     products.Repository
	appointments appointments.Repository
}

func memoryRepos() repos {
	u := mem.NewUsersRepo()
	a := mem.NewAppointmentsRepo()
	return repos{
		users:        u,
		pets:         mem.NewPetsRepo(u),
		medical:      mem.NewMedicalRepo(),
		vaccinations: mem.NewVaccinationsRepo(),
		grooming:     mem.NewGroomingRepo(),
		catalog:      mem.NewCatalogRepo(a),
		products:     mem.NewProductsRepo(),
		appointments: a,
	}
}

func postgresRepos(db *sql.DB) repos {
	return repos{
		users:        pg.NewUsersRepo(db),
		pets:         pg.NewPetsRepo(db),
		medical:      pg.NewMedicalRepo(db),
		vaccinations: pg.NewVaccinationsRepo(db),
		grooming:     pg.NewGroomingRepo(db),
		catalog:      pg.NewCatalogRepo(db),
		products:     pg.NewProductsRepo(db),
		appointments: pg.NewAppointmentsRepo(db),
	}
}

func NewRouter(opts Options) http.Handler {
	return Build(opts).Handler
}

func Build(opts Options) App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewHTTPMetrics(reg)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLog(log))
	r.Use(metrics.Middleware)
	r.Use(middleware.RateLimit(opts.RateLimit, log))

	verifier := opts.AuthVerifier
	if verifier == nil {
		verifier = rejectAll{}
	}
	r.Use(middleware.AuthContext(verifier, opts.DevAuth))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var rp repos
	if opts.DB != nil {
		rp = postgresRepos(opts.DB)
	} else {
		rp = memoryRepos()
	}

	// Services por módulo
	usersSvc := users.NewService(rp.users, opts.Tokens, log.With(map[string]any{"module": "users"}))
	petsSvc := pets.NewService(rp.pets, log.With(map[string]any{"module": "pets"}))
	medicalSvc := medical.NewService(rp.medical, petsSvc, log.With(map[string]any{"module": "medical"}))
	vaccinationsSvc := vaccinations.NewService(rp.vaccinations, petsSvc, log.With(map[string]any{"module": "vaccinations"}))
	groomingSvc := grooming.NewService(rp.grooming, petsSvc, log.With(map[string]any{"module": "grooming"}))
	catalogSvc := catalog.NewService(rp.catalog, log.With(map[string]any{"module": "catalog"}))
	productsSvc := products.NewService(rp.products, log.With(map[string]any{"module": "products"}))
	appointmentsSvc := appointments.NewService(rp.appointments, petsSvc, catalogSvc, log.With(map[string]any{"module": "appointments"}))
	profileSvc := profile.NewService(profile.Readers{
		Pets:         rp.pets,
		Medical:      rp.medical,
		Vaccinations: rp.vaccinations,
		Grooming:     rp.grooming,
		Appointments: rp.appointments,
	}, profile.DefaultLimits, log.With(map[string]any{"module": "profile"}))

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	pets.RegisterRoutes(r, petsSvc)
	profile.RegisterRoutes(r, profileSvc)
	medical.RegisterRoutes(r, medicalSvc)
	vaccinations.RegisterRoutes(r, vaccinationsSvc)
	grooming.RegisterRoutes(r, groomingSvc)
	catalog.RegisterRoutes(r, catalogSvc)
	products.RegisterRoutes(r, productsSvc)
	appointments.RegisterRoutes(r, appointmentsSvc)

	return App{Handler: r, Users: usersSvc}
}

// rejectAll se usa cuando no hay verifier: ningún token es válido.
type rejectAll struct{}

func (rejectAll) Verify(context.Context, string) (auth.Claims, error) {
	return auth.Claims{}, errors.New("no token verifier configured")
}
