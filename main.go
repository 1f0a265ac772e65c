package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"trial-explorer/config"
	"trial-explorer/dashboard"
	"trial-explorer/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	// Initialize dashboard service and router
	ds := dashboard.NewDashboardService(cfg)
	r := dashboard.NewRouter(ds)

	// Start server
	addr := ":" + cfg.Port
	log.Info("Starting trial explorer", "addr", addr, "registry", cfg.RegistryURL, "news", cfg.NewsURL)
	if err := r.Run(addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
