package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/angelmondragon/pantrycost-backend/api/routes"
	"github.com/angelmondragon/pantrycost-backend/internal/ingredients"
	"github.com/angelmondragon/pantrycost-backend/internal/orders"
	"github.com/angelmondragon/pantrycost-backend/internal/recipes"
	"github.com/angelmondragon/pantrycost-backend/pkg/config"
	"github.com/angelmondragon/pantrycost-backend/pkg/db"
	"github.com/angelmondragon/pantrycost-backend/pkg/logger"
	"github.com/angelmondragon/pantrycost-backend/pkg/metrics"
	"github.com/angelmondragon/pantrycost-backend/pkg/migrate"
	"github.com/angelmondragon/pantrycost-backend/pkg/redis"
)

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Environment: cfg.App.Env,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return fmt.Errorf("bootstrap database: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close database: %w", closeErr))
		}
	}()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return fmt.Errorf("run dev migrations: %w", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return fmt.Errorf("bootstrap redis: %w", err)
		}
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				err = multierr.Append(err, fmt.Errorf("close redis: %w", closeErr))
			}
		}()
	} else {
		logg.Warn(ctx, "redis not configured, idempotency keys are ignored")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	txMetrics := metrics.NewTxMetrics(registry)

	ingredientRepo := ingredients.NewRepository(dbClient.DB())
	ingredientService, err := ingredients.NewService(ingredientRepo)
	if err != nil {
		return fmt.Errorf("create ingredient service: %w", err)
	}
	recipeService, err := recipes.NewService(recipes.NewRepository(dbClient.DB()), dbClient, ingredientRepo, txMetrics)
	if err != nil {
		return fmt.Errorf("create recipe service: %w", err)
	}
	orderService, err := orders.NewService(orders.NewRepository(dbClient.DB()), dbClient, txMetrics)
	if err != nil {
		return fmt.Errorf("create order service: %w", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	logCtx := logg.WithField(ctx, "addr", addr)

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			registry,
			metrics.NewHTTPMetrics(registry),
			ingredientService,
			recipeService,
			orderService,
		),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(logCtx, "starting api server")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logg.Info(logCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
