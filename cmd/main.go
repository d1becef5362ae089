package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Fyyur/internal/api"
	"Fyyur/internal/config"
	"Fyyur/internal/database"
	"Fyyur/internal/middleware"
	"Fyyur/internal/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// newLogger builds the process logger. Outside debug mode entries are also
// appended to cfg.File.
func newLogger(cfg config.LogConfig, debug bool) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if debug || cfg.File == "" {
		return logger, nil, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, f))
	return logger, f, nil
}

func main() {
	// 1. config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 2. logger
	logger, logFile, err := newLogger(cfg.Log, cfg.IsDebug())
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info("config loaded")

	// 3. database: create it if missing, then migrate
	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatalf("migrate schema: %v", err)
	}
	logger.Info("schema up to date")

	// 4. tracing (no-op unless enabled)
	tp, err := tracing.NewProvider(cfg.Tracing, logger)
	if err != nil {
		logger.Fatalf("init tracing: %v", err)
	}

	// 5. gin
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger))

	if len(cfg.Server.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost},
			AllowHeaders: []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			MaxAge:       12 * time.Hour,
		}))
	}

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics := middleware.NewMetrics()
		if err := metrics.Register(reg); err != nil {
			logger.Fatalf("register metrics: %v", err)
		}
		r.Use(metrics.Handler())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	// pprof only in debug mode
	if cfg.IsDebug() {
		pprof.Register(r)
	}
	logger.Infof("gin mode: %s", cfg.Server.Mode)

	// 6. pages
	if err := api.RegisterRoutes(r, db, logger, cfg.Server.SessionSecret); err != nil {
		logger.Fatalf("register routes: %v", err)
	}

	// 7. serve until SIGINT/SIGTERM
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           tp.Wrap(r),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("listening on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("server shutdown")
	}
	if err := tp.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("tracer shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
