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
	"github.com/redis/go-redis/v9"

	appControllers "github.com/campuslink/backend/internal/app/controllers"
	appMigrations "github.com/campuslink/backend/internal/app/migrations"
	appRepos "github.com/campuslink/backend/internal/app/repositories"
	appRoutes "github.com/campuslink/backend/internal/app/routes"
	appServices "github.com/campuslink/backend/internal/app/services"
	"github.com/campuslink/backend/internal/config"
	"github.com/campuslink/backend/internal/db"
	appMiddleware "github.com/campuslink/backend/internal/middleware"
	"github.com/campuslink/backend/internal/pkg/logger"
	"github.com/campuslink/backend/internal/pkg/ratelimit"
	"github.com/campuslink/backend/internal/seed"
)

// Dependencies holds all the wired application components.
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services
	Limiter  ratelimit.Limiter

	PostController    *appControllers.PostController
	CommentController *appControllers.CommentController
	LikeController    *appControllers.LikeController
	ClubController    *appControllers.ClubController
	EventController   *appControllers.EventController
	UserController    *appControllers.UserController

	IdentityMiddleware *appMiddleware.IdentityMiddleware
}

// LoadConfigAndSetupLogger loads .env and the yaml configuration, then
// configures the global logger from it.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	// A missing .env is fine; the environment may be set by the deployment.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found")
	}

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	logger.Info().Str("level", cfg.Logging.Level).Str("format", cfg.Logging.Format).Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase establishes the connection pool, runs migrations, and seeds
// the admin account.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	pool := database.Pool
	logger.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		pool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := appMigrations.NewMigrator(database).MigrateFromDirectory(migrationsDir); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := seed.CreateDefaultData(ctx, pool, cfg); err != nil {
		logger.Error().Err(err).Msg("Failed to seed default data, proceeding anyway")
	}

	return pool, nil
}

// BuildDependencies wires repositories, the rate limiter, services,
// controllers, and middleware.
func BuildDependencies(cfg *config.Config, pool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(pool)

	limiter, err := buildLimiter(cfg)
	if err != nil {
		return nil, err
	}
	deps.Limiter = limiter

	deps.Services = appServices.NewServices(deps.Repos, limiter)

	deps.PostController = appControllers.NewPostController(deps.Services.PostService)
	deps.CommentController = appControllers.NewCommentController(deps.Services.CommentService)
	deps.LikeController = appControllers.NewLikeController(deps.Services.LikeService)
	deps.ClubController = appControllers.NewClubController(deps.Services.ClubService)
	deps.EventController = appControllers.NewEventController(deps.Services.EventService)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService)

	deps.IdentityMiddleware = appMiddleware.NewIdentityMiddleware(cfg.Auth.TokenSecret)

	return deps, nil
}

// buildLimiter selects the rate limit backend from configuration.
func buildLimiter(cfg *config.Config) (ratelimit.Limiter, error) {
	limit := cfg.RateLimit.Requests
	window := cfg.RateLimitWindow()

	if cfg.RateLimit.Store == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		logger.Info().Str("addr", cfg.Redis.Addr).Int("limit", limit).Dur("window", window).Msg("Redis rate limiter configured")
		return ratelimit.NewRedisLimiter(client, limit, window), nil
	}

	logger.Info().Int("limit", limit).Dur("window", window).Msg("In-memory rate limiter configured")
	return ratelimit.NewMemoryLimiter(limit, window, ratelimit.SystemClock), nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.PostController,
		deps.CommentController,
		deps.LikeController,
		deps.ClubController,
		deps.EventController,
		deps.UserController,
		deps.IdentityMiddleware,
	)

	return router
}
