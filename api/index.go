package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trial-explorer/config"
	"trial-explorer/dashboard"
	"trial-explorer/logger"
)

var router *gin.Engine

func init() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
	} else {
		gin.SetMode(cfg.GinMode)
	}
	router = dashboard.NewRouter(dashboard.NewDashboardService(cfg))
}

// Handler is the entry point for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	router.ServeHTTP(w, r)
}
