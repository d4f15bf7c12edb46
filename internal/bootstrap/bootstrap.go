package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/karmachari/portal/internal/app/controllers"
	appMigrations "github.com/karmachari/portal/internal/app/migrations"
	appRepos "github.com/karmachari/portal/internal/app/repositories"
	appRoutes "github.com/karmachari/portal/internal/app/routes"
	appServices "github.com/karmachari/portal/internal/app/services"
	"github.com/karmachari/portal/internal/config"
	"github.com/karmachari/portal/internal/db"
	appMiddleware "github.com/karmachari/portal/internal/middleware"
	pkgAuth "github.com/karmachari/portal/internal/pkg/auth"
	"github.com/karmachari/portal/internal/pkg/filestorage"
	"github.com/karmachari/portal/internal/pkg/helpers"
	"github.com/karmachari/portal/internal/pkg/logger"
	"github.com/karmachari/portal/internal/pkg/session"
	"github.com/karmachari/portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService      appServices.StudentService
	OfficialService     appServices.OfficialService
	EmployerService     appServices.EmployerService
	VacancyService      appServices.VacancyService
	SchoolService       appServices.SchoolService
	ApplicationService  appServices.ApplicationService
	RegistrationService appServices.RegistrationService
	AuthService         appServices.AuthService
	Controllers         appRoutes.Controllers
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	SessionStore        *session.Store
	FileStorage         *filestorage.LocalStorage
	Metrics             *prometheus.Registry
	DBPool              *pgxpool.Pool
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds default data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Str("path", cfg.Database.MigrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, cfg.Database.MigrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, appRepos.NewOfficialRepository(dbPool), cfg, lgr); err != nil {
		// A missing admin account does not stop the portal from serving
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// SetupSessionStore connects to Redis for session revocation.
// Redis being unreachable at boot is logged; JWTAuth reports failures per request.
func SetupSessionStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) *session.Store {
	store := session.NewStore(session.NewRedisClient(session.RedisConfig{
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}))

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		lgr.Warn().Err(err).Str("address", cfg.Redis.Address).Msg("Session store unreachable")
	} else {
		lgr.Info().Str("address", cfg.Redis.Address).Msg("Session store connected")
	}
	return store
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, sessions *session.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		DBPool:       dbPool,
		SessionStore: sessions,
		Logger:       lgr,
	}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	repos := deps.Repos
	deps.StudentService = appServices.NewStudentService(repos.StudentRepository, deps.FileStorage, deps.JWTService, logger.Component("students"))
	deps.OfficialService = appServices.NewOfficialService(repos.OfficialRepository, deps.JWTService, logger.Component("officials"))
	deps.EmployerService = appServices.NewEmployerService(repos.EmployerRepository, deps.FileStorage, deps.JWTService, logger.Component("employers"))
	deps.VacancyService = appServices.NewVacancyService(repos.VacancyRepository, logger.Component("vacancies"))
	deps.SchoolService = appServices.NewSchoolService(repos.SchoolRepository, deps.FileStorage, deps.JWTService, logger.Component("schools"))
	deps.ApplicationService = appServices.NewApplicationService(
		repos.ApplicationRepository,
		repos.StudentRepository,
		repos.VacancyRepository,
		logger.Component("applications"),
	)
	deps.RegistrationService = appServices.NewRegistrationService(
		repos.ALORepository,
		repos.DLORepository,
		repos.CompanyRepository,
		repos.CommissionRepository,
		deps.FileStorage,
		logger.Component("registrations"),
	)
	deps.AuthService = appServices.NewAuthService(sessions, logger.Component("auth"))

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, sessions)

	deps.Controllers = appRoutes.Controllers{
		Student:      appControllers.NewStudentController(deps.StudentService, deps.ApplicationService),
		Official:     appControllers.NewOfficialController(deps.OfficialService),
		Employer:     appControllers.NewEmployerController(deps.EmployerService),
		Vacancy:      appControllers.NewVacancyController(deps.VacancyService),
		School:       appControllers.NewSchoolController(deps.SchoolService),
		Application:  appControllers.NewApplicationController(deps.ApplicationService),
		Registration: appControllers.NewRegistrationController(deps.RegistrationService),
		Auth:         appControllers.NewAuthController(deps.AuthService),
	}

	deps.Metrics = prometheus.NewRegistry()
	deps.Metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(logger.Component("http")))
	router.Use(appMiddleware.NewMetrics(deps.Metrics).Handler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(appMiddleware.BodyLimit(cfg.Server.MaxUploadMB << 20))
	router.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := gin.H{"database": "ok", "sessions": "ok"}
		status := http.StatusOK
		if err := deps.DBPool.Ping(ctx); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := deps.SessionStore.Ping(ctx); err != nil {
			checks["sessions"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": http.StatusText(status), "checks": checks})
	})

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
