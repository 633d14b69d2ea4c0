package main

import (
	"log"

	"omnikassa-status/internal/core/config"
	"omnikassa-status/internal/core/logger"
	"omnikassa-status/internal/core/server"
	statusadapter "omnikassa-status/internal/features/status/adapters"
	statushandler "omnikassa-status/internal/features/status/handler"

	"go.uber.org/zap"
)

// @title Omnikassa Status API
// @version 1.0
// @description This API reports whether an Omnikassa order has completed, using the notification token sent by the gateway.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	proxySettings := cfg.Proxy.Settings()
	omnikassa := statusadapter.NewOmnikassaAdapter(cfg.Omnikassa, proxySettings)
	l.Info("Omnikassa status endpoint configured",
		zap.String("endpoint", omnikassa.EndpointURL()),
		zap.Duration("timeout", cfg.Omnikassa.Timeout()),
		zap.Bool("proxy_enabled", proxySettings.HasProxy()),
		zap.String("proxy_addr", proxySettings.HostPort()),
	)

	statusHdl := statushandler.NewStatusHandler(omnikassa)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/health", statusHdl.Health)
	srv.App.Get("/status", statusHdl.GetStatus)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
