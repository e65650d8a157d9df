package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/remaimber-it/mcquiz/internal/api"
	"github.com/remaimber-it/mcquiz/internal/infrastructure/config"
	"github.com/remaimber-it/mcquiz/internal/infrastructure/logging"
	"github.com/remaimber-it/mcquiz/internal/seed"
	"github.com/remaimber-it/mcquiz/internal/store"

	_ "github.com/remaimber-it/mcquiz/docs" // generated swagger docs
)

// @title           mcquiz API
// @version         1.0
// @description     Question sets for the multiple-choice quiz client: store, list, export and serve quiz documents.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger, closeLog := logging.New(cfg.Log, os.Stdout)
	defer closeLog()

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.SeedDir != "" {
		seeder := seed.NewSeeder(db, logger, cfg.SeedWorkers)
		result, err := seeder.Run(context.Background(), cfg.SeedDir)
		if err != nil {
			logger.Warn("seeding finished with errors", "error", err)
		}
		logger.Info("seeding done",
			"imported", len(result.Imported),
			"skipped", len(result.Skipped),
			"failed", len(result.Failed),
		)
	}

	handler := api.NewHandler(db, logger, cfg.DefaultSetID)
	metrics := api.NewMetrics()
	limiter := api.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → Metrics → RateLimit → CORS → mux ─
	chain := api.Logging(logger)(
		metrics.Middleware(
			limiter.Middleware(
				api.CORS(cfg.CORSOrigin)(mux),
			),
		),
	)

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           chain,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
