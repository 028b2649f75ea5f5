package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-demo/internal/clock"
	"github.com/BruksfildServices01/agenda-demo/internal/config"
	domain "github.com/BruksfildServices01/agenda-demo/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-demo/internal/infra/booking"
	"github.com/BruksfildServices01/agenda-demo/internal/logger"
	"github.com/BruksfildServices01/agenda-demo/internal/metrics"
	"github.com/BruksfildServices01/agenda-demo/internal/routes"
)

func main() {

	cfg := config.Load()

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rules := domain.Rules{
		StartHour:      cfg.Schedule.StartHour,
		EndHour:        cfg.Schedule.EndHour,
		SessionMinutes: cfg.Schedule.SessionMinutes,
	}
	if !rules.Valid() {
		lg.Warn("schedule is misconfigured, availability will be empty",
			zap.Int("start_hour", rules.StartHour),
			zap.Int("end_hour", rules.EndHour),
			zap.Int("session_minutes", rules.SessionMinutes),
		)
	}

	r, err := routes.NewRouter(cfg, routes.Deps{
		Logger:  lg,
		Metrics: metrics.NewCollector("agenda"),
		Clock:   clock.System{},
		Booker:  booking.NewDemoBooker(),
	})
	if err != nil {
		lg.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	lg.Info("demo server starting",
		zap.String("addr", srv.Addr),
		zap.String("env", cfg.Env),
		zap.Int("start_hour", rules.StartHour),
		zap.Int("end_hour", rules.EndHour),
		zap.Int("session_minutes", rules.SessionMinutes),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	lg.Info("server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Error("server forced to shutdown", zap.Error(err))
		return
	}

	lg.Info("server stopped gracefully")
}
