package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"skillmatrix/internal/api"
	"skillmatrix/internal/config"
	"skillmatrix/internal/db"
	"skillmatrix/internal/metrics"
	"skillmatrix/internal/services"
	"skillmatrix/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("configuration failed")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	database, err := db.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.WithError(err).Warn("database close failed")
		}
	}()
	if err := db.EnsureSchema(ctx, database); err != nil {
		log.WithError(err).Fatal("schema bootstrap failed")
	}

	st := store.New(database)
	m := metrics.New()

	importSvc := services.NewImportService(st, log)
	importSvc.Metrics = m

	server := &api.Server{
		Database:       database,
		Imports:        importSvc,
		Exports:        services.NewExportService(st),
		Metrics:        m,
		Log:            log,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewRouter(server),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}
}
