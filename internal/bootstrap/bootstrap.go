package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/anupamk/vidyalaya/internal/app/controllers"
	appMigrations "github.com/anupamk/vidyalaya/internal/app/migrations"
	appRepos "github.com/anupamk/vidyalaya/internal/app/repositories"
	appRoutes "github.com/anupamk/vidyalaya/internal/app/routes"
	appServices "github.com/anupamk/vidyalaya/internal/app/services"
	"github.com/anupamk/vidyalaya/internal/config"
	"github.com/anupamk/vidyalaya/internal/db"
	appMiddleware "github.com/anupamk/vidyalaya/internal/middleware"
	pkgAuth "github.com/anupamk/vidyalaya/internal/pkg/auth"
	"github.com/anupamk/vidyalaya/internal/pkg/filestorage"
	"github.com/anupamk/vidyalaya/internal/pkg/helpers"
	"github.com/anupamk/vidyalaya/internal/pkg/logger"
	"github.com/anupamk/vidyalaya/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	NoticeService     appServices.NoticeService
	FacultyService    appServices.FacultyService
	GalleryService    appServices.GalleryService
	BackupService     appServices.BackupService
	AuthController    *appControllers.AuthController
	NoticeController  *appControllers.NoticeController
	FacultyController *appControllers.FacultyController
	GalleryController *appControllers.GalleryController
	BackupController  *appControllers.BackupController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	FileStorage       *filestorage.LocalStorage
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the initial admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, cfg, lgr); err != nil {
		// A missing seed admin does not stop the read-only surface.
		lgr.Error().Err(err).Msg("Failed to seed admin account, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The asset base URL must match the static file serving path.
	assetBaseURL := cfg.Storage.AssetBaseURL
	if assetBaseURL == "" {
		assetBaseURL = "http://localhost:" + cfg.Server.Port + "/uploads"
	}
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.AssetPath, assetBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 12*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.NoticeService = appServices.NewNoticeService(deps.Repos.NoticeRepository)
	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository, deps.FileStorage)
	deps.GalleryService = appServices.NewGalleryService(deps.Repos.GalleryRepository, deps.FileStorage)
	deps.BackupService = appServices.NewBackupService(
		deps.Repos.NoticeRepository,
		deps.Repos.FacultyRepository,
		deps.Repos.GalleryRepository,
		cfg.Storage.BackupPath,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.NoticeController = appControllers.NewNoticeController(deps.NoticeService)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.GalleryController = appControllers.NewGalleryController(deps.GalleryService)
	deps.BackupController = appControllers.NewBackupController(deps.BackupService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.NoticeController,
		deps.FacultyController,
		deps.GalleryController,
		deps.BackupController,
		deps.AuthMiddleware,
	)

	return router
}
