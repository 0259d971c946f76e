package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/gestionski/skistation/internal/app/controllers"
	appMigrations "github.com/gestionski/skistation/internal/app/migrations"
	appRepos "github.com/gestionski/skistation/internal/app/repositories"
	"github.com/gestionski/skistation/internal/app/repositories/memory"
	appRoutes "github.com/gestionski/skistation/internal/app/routes"
	appServices "github.com/gestionski/skistation/internal/app/services"
	"github.com/gestionski/skistation/internal/config"
	"github.com/gestionski/skistation/internal/db"
	appMiddleware "github.com/gestionski/skistation/internal/middleware"
	"github.com/gestionski/skistation/internal/pkg/logger"
	"github.com/gestionski/skistation/internal/pkg/validation"
	"github.com/gestionski/skistation/internal/seed"
)

// ConfigPathEnv overrides the default configs/config.yaml location
const ConfigPathEnv = "CONFIG_PATH"

// Dependencies holds all the application dependencies
type Dependencies struct {
	InstructorService    appServices.InstructorService
	InstructorController *appControllers.InstructorController
	Repos                *appRepos.Repositories
	Clock                func() time.Time
	Logger               zerolog.Logger
}

// Storage is the selected persistence backend plus its release hook
type Storage struct {
	Repos *appRepos.Repositories
	close func()
}

// Close releases the backend's resources
func (s *Storage) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := os.Getenv(ConfigPathEnv)
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the configured backend, migrates it and seeds the course catalogue.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (*Storage, error) {
	var storage *Storage

	switch cfg.Database.Driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory storage; data is lost on restart")
		store := memory.NewStore()
		storage = &Storage{Repos: &appRepos.Repositories{
			InstructorRepository: store,
			CourseRepository:     store,
			Health:               store,
		}}

	default:
		database, err := SetupDatabase(cfg, lgr)
		if err != nil {
			return nil, err
		}
		storage = &Storage{Repos: appRepos.NewRepositories(database), close: database.Close}
	}

	if cfg.App.SeedCourses {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := seed.CreateDefaultData(ctx, storage.Repos.CourseRepository, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return storage, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes services and controllers on top of the repositories.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	loc := cfg.Location()
	clock := func() time.Time { return time.Now().In(loc) }

	if err := validation.RegisterWithGin(clock); err != nil {
		lgr.Error().Err(err).Msg("Failed to register request validation rules")
		return nil, err
	}

	deps := &Dependencies{
		Repos:  repos,
		Clock:  clock,
		Logger: lgr,
	}

	deps.InstructorService = appServices.NewInstructorService(repos.InstructorRepository, repos.CourseRepository, clock)
	deps.InstructorController = appControllers.NewInstructorController(deps.InstructorService, clock)

	lgr.Info().Str("timezone", loc.String()).Msg("Dependencies built")
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
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger())

	if cfg.RateLimit.Enabled {
		router.Use(appMiddleware.RateLimit(appMiddleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)))
		lgr.Info().Float64("rps", cfg.RateLimit.RPS).Int("burst", cfg.RateLimit.Burst).Msg("Rate limiting enabled")
	}

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.InstructorController, deps.Repos.Health)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
