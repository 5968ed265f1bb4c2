package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/acadservice/internal/app/controllers"
	appMigrations "github.com/yigit/acadservice/internal/app/migrations"
	"github.com/yigit/acadservice/internal/app/models/dto"
	appRepos "github.com/yigit/acadservice/internal/app/repositories"
	appRoutes "github.com/yigit/acadservice/internal/app/routes"
	appServices "github.com/yigit/acadservice/internal/app/services"
	"github.com/yigit/acadservice/internal/config"
	"github.com/yigit/acadservice/internal/db"
	appMiddleware "github.com/yigit/acadservice/internal/middleware"
	"github.com/yigit/acadservice/internal/pkg/logger"
	"github.com/yigit/acadservice/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AcademicService    appServices.AcademicService
	AcademicController *appControllers.AcademicController
	HealthController   *appControllers.HealthController
	Repos              *appRepos.Repositories
	Metrics            *appMiddleware.Metrics
	RateLimiter        *appMiddleware.RateLimiter
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := ConfigureLogger(cfg)
	lgr.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Str("logFile", cfg.Logging.File).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// ConfigureLogger applies the logging section of cfg to the global logger
func ConfigureLogger(cfg *config.Config) zerolog.Logger {
	return logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
		File:   cfg.Logging.File,
	})
}

// SetupDatabase creates the connection pool and, when enabled, applies the
// embedded schema. An unreachable database is logged but does not stop
// startup; requests fail with 503 until it comes back.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().
		Str("host", cfg.Database.Host).
		Str("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Establishing database connection...")

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to create database pool")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database connection error")
		return database, nil
	}
	lgr.Info().Msg("Connected to PostgreSQL")

	if cfg.Database.AutoMigrate {
		lgr.Info().Msg("Running database migrations...")
		fsys, dir := appMigrations.Embedded()
		if err := appMigrations.NewMigrator(database.Pool, lgr).Migrate(context.Background(), fsys, dir); err != nil {
			lgr.Error().Err(err).Msg("Database migration error")
			database.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")
	}

	if cfg.Database.SeedDemo {
		if err := seed.CreateDemoData(context.Background(), database.Pool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()
	deps.AcademicService = appServices.NewAcademicService(database.Pool, deps.Repos.StudentRepository, lgr)

	deps.AcademicController = appControllers.NewAcademicController(deps.AcademicService)
	deps.HealthController = appControllers.NewHealthController(database)

	if cfg.Metrics.Enabled {
		deps.Metrics = appMiddleware.NewMetrics()
		deps.Metrics.Registry().MustRegister(db.PoolCollectors(database.Pool)...)
	}
	if cfg.RateLimit.RPS > 0 {
		deps.RateLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	return deps
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
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins))

	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET("/metrics", deps.Metrics.Handler())
	}
	if deps.RateLimiter != nil {
		router.Use(deps.RateLimiter.Middleware())
	}

	if !cfg.IsProduction() {
		appRoutes.SetupSwagger(router)
	}

	appRoutes.SetupRouter(router, deps.AcademicController, deps.HealthController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found"),
		))
	})

	return router
}
