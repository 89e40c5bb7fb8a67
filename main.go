package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"melodee/internal/config"
	"melodee/internal/database"
	"melodee/internal/handlers"
	"melodee/internal/health"
	"melodee/internal/jobs"
	"melodee/internal/logging"
	"melodee/internal/metrics"
	"melodee/internal/middleware"
	"melodee/internal/services"
	"melodee/internal/tracing"
)

// Version of the application
var Version = "1.0.0"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logging.InitGlobalLogger(logging.LogLevel(cfg.Logging.Level), cfg.Logging.Format)
	log.Info().Str("version", Version).Msg("starting melodee")

	tracer, err := tracing.NewTracer("melodee", cfg.Tracing.Endpoint, cfg.Tracing.Enabled)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	appMetrics := metrics.InitializeMetrics()

	dbLog := logging.WithComponent("database")
	manager, err := database.NewDatabaseManager(&cfg.Database, &dbLog)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	db := manager.GetGormDB()

	ctx, _, finish := tracing.WithTracingContext(context.Background(), "schema.migrate",
		tracing.MigrationTracingAttrs("up", 0)...)
	applied, err := database.NewMigrator(db, &dbLog).WithMetrics(appMetrics).Up(ctx)
	if err != nil {
		tracing.SetSpanError(ctx, err)
		finish()
		log.Fatal().Err(err).Msg("schema migration failed")
	}
	finish()
	log.Info().Int("applied", applied).Msg("schema is current")

	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, continuing without cache and jobs")
			redisClient = nil
		}
		cancel()
	}

	settings := services.NewSettingsService(db, redisClient, logging.WithComponent("settings")).WithMetrics(appMetrics)
	repo := services.NewRepository(db, settings)
	auth := services.NewAuthService(db)

	app := fiber.New(fiber.Config{
		ServerHeader: "Melodee",
		AppName:      "Melodee v" + Version,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	})

	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(logging.FiberMiddleware(logging.WithComponent("http")))
	app.Use(middleware.MetricsMiddleware())
	app.Use(middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig()))

	health.NewChecker(manager.GetSQLDB(), redisClient, appMetrics).RegisterRoutes(app)
	app.Get("/metrics", metricsHandler())

	handlers.RegisterRoutes(app, handlers.RouterDeps{
		DB:       db,
		Repo:     repo,
		Settings: settings,
		Auth:     auth,
		Logger:   logging.WithComponent("handlers"),
	})

	var (
		scheduler   *jobs.Scheduler
		asynqServer *asynq.Server
	)
	if redisClient != nil {
		redisOpt := asynq.RedisClientOpt{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}

		asynqServer = asynq.NewServer(redisOpt, asynq.Config{
			Concurrency: 2,
			Queues:      map[string]int{jobs.MaintenanceQueue: 1},
		})
		handler := jobs.NewHandlers(db, logging.WithComponent("jobs"))
		go func() {
			if err := asynqServer.Run(handler.Mux()); err != nil {
				log.Error().Err(err).Msg("job worker stopped")
			}
		}()

		scheduler = jobs.NewScheduler(asynq.NewClient(redisOpt), settings, logging.WithComponent("scheduler"))
		if err := scheduler.Start(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("failed to start job scheduler")
		}
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		log.Info().Msg("shutting down")

		if scheduler != nil {
			scheduler.Stop()
		}
		if asynqServer != nil {
			asynqServer.Shutdown()
		}
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("error during server shutdown")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error during tracer shutdown")
		}
		if err := manager.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("listening")
	if err := app.Listen(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}

func metricsHandler() fiber.Handler {
	h := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c *fiber.Ctx) error {
		h(c.Context())
		return nil
	}
}
