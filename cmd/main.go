package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-activity-timeline/internal/config"
	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
	"github.com/KasumiMercury/primind-activity-timeline/internal/handler"
	"github.com/KasumiMercury/primind-activity-timeline/internal/health"
	"github.com/KasumiMercury/primind-activity-timeline/internal/infra/activityapi"
	"github.com/KasumiMercury/primind-activity-timeline/internal/infra/activitystore"
	"github.com/KasumiMercury/primind-activity-timeline/internal/infra/layoutrecorder"
	"github.com/KasumiMercury/primind-activity-timeline/internal/infra/snapshot"
	"github.com/KasumiMercury/primind-activity-timeline/internal/observability/logging"
	"github.com/KasumiMercury/primind-activity-timeline/internal/observability/metrics"
	"github.com/KasumiMercury/primind-activity-timeline/internal/observability/middleware"
	"github.com/KasumiMercury/primind-activity-timeline/internal/service/activity"
	"github.com/KasumiMercury/primind-activity-timeline/internal/service/gantt"
)

// Version is set via ldflags at build time
var Version = "dev"

const serviceModule = logging.Module("activity-timeline")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	layoutMetrics, err := metrics.NewLayoutMetrics()
	if err != nil {
		slog.Error("failed to initialize layout metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB locally, BigQuery on gcloud builds
	layoutRecorder, err := layoutrecorder.NewRecorder(ctx, layoutrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize layout result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := layoutRecorder.Close(); err != nil {
			slog.Warn("failed to close layout result recorder", slog.String("error", err.Error()))
		}
	}()

	healthChecker := health.NewChecker(Version)

	source, closeSource, err := initActivitySource(cfg.Source, healthChecker)
	if err != nil {
		slog.Error("failed to initialize activity source",
			slog.String("source", string(cfg.Source.Kind)),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer closeSource()

	var snapshotCache domain.SnapshotCache
	if cfg.Snapshot.Enabled() {
		redisClient, err := connectRedis(ctx, cfg.Redis)
		if err != nil {
			return 1
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()

		snapshotCache = snapshot.NewCache(redisClient)
		healthChecker.WithRedis(redisClient)
	} else {
		slog.Info("activity snapshot cache disabled")
	}

	engine := gantt.NewEngine(gantt.Options{
		DefaultPadDays:     cfg.Layout.DefaultPadDays,
		MinVisibleDuration: cfg.Layout.MinVisibleDuration,
	}, time.Now)

	timelineService := activity.NewService(
		source,
		snapshotCache,
		engine,
		layoutRecorder,
		layoutMetrics,
		activity.Options{
			SourceName:      string(cfg.Source.Kind),
			SnapshotTTL:     cfg.Snapshot.TTL,
			DefaultDuration: cfg.Layout.DefaultDuration,
		},
	)
	timelineHandler := handler.NewTimelineHandler(timelineService, cfg.Source.FetchLimit)

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      serviceModule,
		TracerName:  "github.com/KasumiMercury/primind-activity-timeline/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	timelineHandler.Register(r.Group("/api/v1"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("source", string(cfg.Source.Kind)),
			slog.Int("fetch_limit", cfg.Source.FetchLimit),
			slog.Duration("snapshot_ttl", cfg.Snapshot.TTL),
			slog.Int("pad_days", cfg.Layout.DefaultPadDays),
			slog.Duration("min_visible", cfg.Layout.MinVisibleDuration),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		if err := layoutRecorder.Flush(shutdownCtx); err != nil {
			slog.Warn("failed to flush layout results", slog.String("error", err.Error()))
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

// initActivitySource builds the configured source and registers its
// readiness check. The returned func releases it.
func initActivitySource(cfg *config.SourceConfig, checker *health.Checker) (domain.ActivitySource, func(), error) {
	switch cfg.Kind {
	case config.SourceKindSQL:
		db, err := activitystore.OpenDB(cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		checker.WithDatabase(sqlDB)

		slog.Info("activity source initialized",
			slog.String("type", "sql"),
		)

		return activitystore.NewStore(db), func() {
			if err := sqlDB.Close(); err != nil {
				slog.Warn("failed to close activity database", slog.String("error", err.Error()))
			}
		}, nil

	default:
		slog.Info("activity source initialized",
			slog.String("type", "http"),
			slog.String("url", cfg.APIURL),
		)
		return activityapi.NewClient(cfg.APIURL, cfg.APIToken), func() {}, nil
	}
}

func connectRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(opts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		_ = redisClient.Close()
		return nil, err
	}

	slog.Info("redis connected",
		slog.String("addr", cfg.Addr),
	)

	return redisClient, nil
}
