package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agreement_backend/internal/agreement"
	"agreement_backend/internal/datawarehouse"
	apphttp "agreement_backend/internal/http"
	"agreement_backend/internal/http/router"
	"agreement_backend/platform/config"
	"agreement_backend/platform/logger"
	"agreement_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Shared validator instance for dependency injection
	val := validator.New()

	// Data warehouse reader client, the upstream source of agreement records
	dwrClient := datawarehouse.NewHTTPClient(datawarehouse.Config{
		BaseURL:        cfg.DataWarehouseURL,
		Token:          cfg.DataWarehouseToken,
		MunicipalityID: cfg.MunicipalityID,
		Timeout:        cfg.DataWarehouseTimeout,
	})
	log.Info("data warehouse reader client initialized", "url", cfg.DataWarehouseURL, "municipalityId", cfg.MunicipalityID)

	agreementModule := agreement.NewModule(dwrClient, val, log)

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			agreementModule,
		},
	}

	engine := router.New(app)

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: engine}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
