// @title LI Dashboard Service
// @version 1.0
// @description Cached dashboard datasets and filter recomputation for the active processes and overdue inspections pages.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	adminHttp "li-dashboard-service/internal/admin/adapters/http/fiber"
	adminUsecase "li-dashboard-service/internal/admin/core/usecase"

	activeHttp "li-dashboard-service/internal/activeprocesses/adapters/http/fiber"
	activeQueries "li-dashboard-service/internal/activeprocesses/adapters/postgres"
	activeUsecase "li-dashboard-service/internal/activeprocesses/core/usecase"

	overdueHttp "li-dashboard-service/internal/overdueinspections/adapters/http/fiber"
	overdueQueries "li-dashboard-service/internal/overdueinspections/adapters/postgres"
	overdueUsecase "li-dashboard-service/internal/overdueinspections/core/usecase"

	"li-dashboard-service/internal/config"
	"li-dashboard-service/internal/datasetcache"
	datasource "li-dashboard-service/internal/datasource/postgres"
	"li-dashboard-service/internal/logging"
	"li-dashboard-service/internal/metrics"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "li-dashboard-service/docs"
)

const (
	activeProcessesCache    = "active-processes"
	overdueInspectionsCache = "overdue-inspections"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})

	loc, err := cfg.Dashboard.Location()
	if err != nil {
		logging.Fatal().Err(err).Str("timezone", cfg.Dashboard.Timezone).Msg("failed to load timezone")
	}

	// DB connection
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to open postgres")
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		logging.Fatal().Err(err).Msg("failed to ping postgres")
	}

	// Data sources, one breaker per page
	breaker := datasource.BreakerConfig{
		MaxRequests:  cfg.Breaker.MaxRequests,
		Interval:     cfg.Breaker.Interval,
		Timeout:      cfg.Breaker.Timeout,
		MinRequests:  cfg.Breaker.MinRequests,
		FailureRatio: cfg.Breaker.FailureRatio,
	}
	sqlDB := datasource.NewSQLDB(db)
	activeSource := datasource.NewSource(activeProcessesCache, sqlDB, activeQueries.Queries(), breaker)
	overdueSource := datasource.NewSource(overdueInspectionsCache, sqlDB, overdueQueries.Queries(), breaker)

	// Caches
	activeCache := datasetcache.New(activeSource, cfg.Cache.Timeout,
		datasetcache.WithName(activeProcessesCache),
		datasetcache.WithLogger(logging.Logger()),
	)
	overdueCache := datasetcache.New(overdueSource, cfg.Cache.Timeout,
		datasetcache.WithName(overdueInspectionsCache),
		datasetcache.WithLogger(logging.Logger()),
	)

	// Usecases. Active processes show the stored refresh time as is; only
	// overdue inspections convert it to the dashboard timezone.
	activeOptionsUC := activeUsecase.NewGetOptionsUseCase(activeCache, nil)
	activeChartUC := activeUsecase.NewGetChartUseCase(activeCache, nil)
	activeTableUC := activeUsecase.NewGetTableUseCase(activeCache, nil)

	overdueOptionsUC := overdueUsecase.NewGetOptionsUseCase(overdueCache, loc)
	overdueCountsUC := overdueUsecase.NewGetCountsUseCase(overdueCache, loc)
	overdueTableUC := overdueUsecase.NewGetTableUseCase(overdueCache, loc)

	flushUC := adminUsecase.NewFlushCachesUseCase(activeCache, overdueCache)
	refreshUC := adminUsecase.NewRefreshDatasetsUseCase(activeCache, overdueCache)
	healthUC := adminUsecase.NewCheckHealthUseCase(db)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:     "li-dashboard-service",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Use(recover.New())
	app.Use(logging.Middleware())
	app.Use(metrics.Middleware())

	activeHttp.NewActiveProcessesHandler(activeOptionsUC, activeChartUC, activeTableUC).RegisterRoutes(app)
	overdueHttp.NewOverdueInspectionsHandler(overdueOptionsUC, overdueCountsUC, overdueTableUC).RegisterRoutes(app)
	adminHttp.NewAdminHandler(flushUC, refreshUC, healthUC).RegisterRoutes(app)

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		if err := app.Listen(addr); err != nil {
			logging.Error().Err(err).Msg("fiber stopped")
		}
	}()

	logging.Info().Str("addr", addr).Dur("cache_timeout", cfg.Cache.Timeout).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logging.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logging.Error().Err(err).Msg("fiber shutdown error")
	}

	logging.Info().Msg("server exiting")
}
